package handlers

import (
	"cardcopy/internal/models"
	"cardcopy/internal/services/content"
	"cardcopy/internal/utils/response"
	"cardcopy/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ContentHandler struct {
	content content.Service
}

func NewContentHandler(contentService content.Service) *ContentHandler {
	return &ContentHandler{content: contentService}
}

// Generate handles POST /api/generate-content. It answers with
// {"variations": [...]} holding exactly four strings, or {"error": "..."}.
func (h *ContentHandler) Generate(c *fiber.Ctx) error {
	var sel models.Selection
	if err := c.BodyParser(&sel); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.ValidateSelection(sel); err != nil {
		return handleServiceError(c, err)
	}

	variations, err := h.content.Generate(c.UserContext(), content.Request{Selection: sel})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"variations": variations})
}
