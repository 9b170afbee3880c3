package catalog

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/maderoluz/biochimeneas-backend/internal/metrics"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Get("/api/v1/products/featured", h.featuredProducts)
	// register the static segment before the parameterized product route to
	// avoid route param collision
	app.Get("/api/v1/product/:sku/related", h.relatedProducts)
	app.Get("/api/v1/product/:sku", h.getProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	sel := selectionFromQuery(c)
	categoryID := 0
	if v := c.Query("category"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid category id"})
		}
		categoryID = id
	}

	metrics.CatalogSearchCounter.Inc()
	return c.JSON(h.service.List(sel, categoryID))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	sku := c.Params("sku")
	p, err := h.service.Get(sku)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	metrics.ProductViewsCounter.WithLabelValues(sku).Inc()
	return c.JSON(p)
}

func (h *Handler) featuredProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.Featured())
}

func (h *Handler) relatedProducts(c *fiber.Ctx) error {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return c.JSON(h.service.Related(c.Params("sku"), limit))
}

// selectionFromQuery builds a filter selection from listing query params:
// min/max price bounds, repeated `brand` params, repeated `attr_<id>`
// params, free-text `q` and `sort`. Absent or malformed params keep their
// defaults.
func selectionFromQuery(c *fiber.Ctx) Selection {
	sel := DefaultSelection()

	if v := c.Query("min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			sel.PriceMin = f
		}
	}
	if v := c.Query("max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			sel.PriceMax = f
		}
	}
	sel.SetQuery(c.Query("q"))
	sel.SetSort(c.Query("sort"))

	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		switch {
		case k == "brand":
			sel.Brands = append(sel.Brands, string(value))
		case strings.HasPrefix(k, "attr_"):
			id, err := strconv.Atoi(strings.TrimPrefix(k, "attr_"))
			if err != nil {
				return
			}
			sel.Attributes[id] = append(sel.Attributes[id], string(value))
		}
	})
	return sel
}
