package handlers

import (
	"cardcopy/internal/services/contact"
	"cardcopy/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contact contact.Service
}

func NewContactHandler(contactService contact.Service) *ContactHandler {
	return &ContactHandler{contact: contactService}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var sub contact.Submission
	if err := c.BodyParser(&sub); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	record, err := h.contact.Submit(c.UserContext(), sub)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Thanks for reaching out", fiber.Map{"id": record.ID})
}
