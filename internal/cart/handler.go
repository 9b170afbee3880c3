package cart

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"go.uber.org/zap"

	"github.com/maderoluz/biochimeneas-backend/internal/logger"
	"github.com/maderoluz/biochimeneas-backend/internal/metrics"
)

type Handler struct {
	service *Service
	secret  string
}

func NewHandler(service *Service, secret string) *Handler {
	return &Handler{service: service, secret: secret}
}

// RegisterProtectedRoutes mounts the cart endpoints behind the cart-token
// ware. Requests without an Authorization header skip the ware entirely; the
// handlers mint a fresh cart id for them and hand the token back in the
// response.
func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	ware := jwtware.New(jwtware.Config{
		SigningKey: []byte(h.secret),
		ContextKey: "cart",
		Filter: func(c *fiber.Ctx) bool {
			return c.Get(fiber.HeaderAuthorization) == ""
		},
	})

	app.Get("/api/v1/cart", ware, h.getCart)
	app.Post("/api/v1/cart/items", ware, h.addItem)
	app.Put("/api/v1/cart/items/:sku", ware, h.setQuantity)
	app.Delete("/api/v1/cart/items/:sku", ware, h.removeItem)
	app.Delete("/api/v1/cart", ware, h.clearCart)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	cartID := h.cartID(c)
	lines, err := h.service.Get(cartID)
	if err != nil {
		logger.Get().Error("cart read failed", zap.String("cartId", cartID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	metrics.CartOperationsCounter.WithLabelValues("get").Inc()
	return h.respond(c, cartID, lines)
}

type addItemRequest struct {
	SKU string `json:"sku"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if req.SKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fiber.Map{"sku": "sku is required"}})
	}

	cartID := h.cartID(c)
	lines, err := h.service.Add(cartID, req.SKU)
	if err != nil {
		if err == ErrProductNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		logger.Get().Error("cart add failed", zap.String("cartId", cartID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	metrics.CartOperationsCounter.WithLabelValues("add").Inc()
	return h.respond(c, cartID, lines)
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) setQuantity(c *fiber.Ctx) error {
	var req setQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	cartID := h.cartID(c)
	lines, err := h.service.SetQuantity(cartID, c.Params("sku"), req.Quantity)
	if err != nil {
		logger.Get().Error("cart update failed", zap.String("cartId", cartID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	metrics.CartOperationsCounter.WithLabelValues("set-quantity").Inc()
	return h.respond(c, cartID, lines)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	cartID := h.cartID(c)
	lines, err := h.service.Remove(cartID, c.Params("sku"))
	if err != nil {
		logger.Get().Error("cart remove failed", zap.String("cartId", cartID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	metrics.CartOperationsCounter.WithLabelValues("remove").Inc()
	return h.respond(c, cartID, lines)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	cartID := h.cartID(c)
	if err := h.service.Clear(cartID); err != nil {
		logger.Get().Error("cart clear failed", zap.String("cartId", cartID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	metrics.CartOperationsCounter.WithLabelValues("clear").Inc()
	return h.respond(c, cartID, []Line{})
}

// cartID returns the id from the presented token, or a fresh one when the
// request carried none.
func (h *Handler) cartID(c *fiber.Ctx) string {
	if id := CartIDFromCtx(c); id != "" {
		return id
	}
	return NewCartID()
}

func (h *Handler) respond(c *fiber.Ctx, cartID string, lines []Line) error {
	token, err := IssueToken(h.secret, cartID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if lines == nil {
		lines = []Line{}
	}
	return c.JSON(fiber.Map{
		"cartToken":  token,
		"items":      lines,
		"totalItems": TotalItems(lines),
		"totalPrice": TotalPrice(lines),
	})
}
