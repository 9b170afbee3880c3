package variant

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/maderoluz/biochimeneas-backend/internal/catalog"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/product/:sku/variants", h.getPicker)
	app.Post("/api/v1/product/:sku/variants/resolve", h.resolve)
}

func (h *Handler) getPicker(c *fiber.Ctx) error {
	picker, err := h.service.Picker(c.Params("sku"))
	if err != nil {
		if err == catalog.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(picker)
}

type resolveRequest struct {
	// attribute ids arrive as JSON object keys, hence strings
	Selections map[string]string `json:"selections"`
}

func (h *Handler) resolve(c *fiber.Ctx) error {
	var req resolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	selections := make(map[int]string, len(req.Selections))
	for key, value := range req.Selections {
		id, err := strconv.Atoi(key)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid attribute id: " + key})
		}
		selections[id] = value
	}
	if len(selections) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "no attributes selected"})
	}

	resolution, err := h.service.Resolve(c.Params("sku"), selections)
	if err != nil {
		if err == catalog.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if !resolution.Matched {
		return c.Status(fiber.StatusNotFound).JSON(resolution)
	}
	return c.JSON(resolution)
}
