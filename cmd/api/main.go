package main

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/maderoluz/biochimeneas-backend/internal/cart"
	"github.com/maderoluz/biochimeneas-backend/internal/catalog"
	"github.com/maderoluz/biochimeneas-backend/internal/category"
	"github.com/maderoluz/biochimeneas-backend/internal/config"
	"github.com/maderoluz/biochimeneas-backend/internal/contact"
	"github.com/maderoluz/biochimeneas-backend/internal/content"
	"github.com/maderoluz/biochimeneas-backend/internal/facet"
	"github.com/maderoluz/biochimeneas-backend/internal/logger"
	"github.com/maderoluz/biochimeneas-backend/internal/metrics"
	"github.com/maderoluz/biochimeneas-backend/internal/middleware"
	"github.com/maderoluz/biochimeneas-backend/internal/variant"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	metrics.Init(cfg.MetricsPrefix)
	log := logger.Get()
	defer log.Sync()

	app := fiber.New()
	setupCORS(app)
	app.Use(middleware.Observe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	cartRepo := cart.NewPostgresRepository(db)
	if err := cartRepo.EnsureSchema(); err != nil {
		panic(err)
	}

	// catalog repo backs the product endpoints and feeds the facet, variant
	// and cart services
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, cfg.DefaultCategoryID)
	catalogHandler := catalog.NewHandler(catalogService)

	categoryRepo := category.NewPostgresRepository(db)
	categoryHandler := category.NewHandler(category.NewService(categoryRepo))

	facetHandler := facet.NewHandler(facet.NewService(catalogRepo, categoryRepo))
	variantHandler := variant.NewHandler(variant.NewService(catalogRepo))

	contentHandler := content.NewHandler()
	contactHandler := contact.NewHandler()

	// register specific endpoints before the parameterized product and
	// category routes to avoid route param collision
	facetHandler.RegisterPublicRoutes(app)
	variantHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	contentHandler.RegisterPublicRoutes(app)
	contactHandler.RegisterPublicRoutes(app)

	cartService := cart.NewService(cartRepo, catalogRepo)
	cartHandler := cart.NewHandler(cartService, cfg.CartTokenSecret)
	cartHandler.RegisterProtectedRoutes(app)

	log.Info("starting server", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}
