package content

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/content/faq", h.getFAQ)
	app.Get("/api/v1/content/distributors", h.getDistributors)
	app.Get("/api/v1/content/about", h.getAbout)
}

func (h *Handler) getFAQ(c *fiber.Ctx) error {
	return c.JSON(FAQEntries())
}

func (h *Handler) getDistributors(c *fiber.Ctx) error {
	return c.JSON(Distributors())
}

func (h *Handler) getAbout(c *fiber.Ctx) error {
	return c.JSON(About())
}
