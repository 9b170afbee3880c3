package contact

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/maderoluz/biochimeneas-backend/internal/logger"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/contact", h.postContact)
	app.Post("/api/v1/newsletter", h.postNewsletter)
}

func (h *Handler) postContact(c *fiber.Ctx) error {
	var msg Message
	if err := c.BodyParser(&msg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if errs := msg.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	logger.Get().Info("contact message received",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
	)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Mensaje enviado"})
}

func (h *Handler) postNewsletter(c *fiber.Ctx) error {
	var sub Subscription
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if errs := sub.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	logger.Get().Info("newsletter subscription", zap.String("email", sub.Email))
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Suscripción registrada"})
}
