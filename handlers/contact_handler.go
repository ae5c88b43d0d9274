package handlers

import (
	"fmt"
	"html"

	"github.com/gofiber/fiber/v2"
	config "github.com/qzonme/qzonme-backend/configs"
	"github.com/qzonme/qzonme-backend/notifications"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func SubmitContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	recipient := config.Config("CONTACT_RECIPIENT")
	if recipient == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Contact form is not configured"})
	}

	subject := fmt.Sprintf("Contact form message from %s", req.Name)
	body := fmt.Sprintf(
		"<h2>New contact form message</h2><p><b>From:</b> %s (%s)</p><p>%s</p>",
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(req.Message),
	)

	if err := notifications.SendEmailWithReplyTo("", recipient, req.Email, subject, body); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to deliver message"})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Message sent"})
}
