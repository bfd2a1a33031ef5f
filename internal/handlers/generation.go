package handlers

import (
	"cardcopy/internal/models"
	"cardcopy/internal/services/generation"
	"cardcopy/internal/utils/pagination"
	"cardcopy/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GenerationHandler struct {
	generation generation.Service
}

func NewGenerationHandler(generationService generation.Service) *GenerationHandler {
	return &GenerationHandler{generation: generationService}
}

func (h *GenerationHandler) Create(c *fiber.Ctx) error {
	var sel models.Selection
	if err := c.BodyParser(&sel); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	result, err := h.generation.Generate(c.UserContext(), sel)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Content generated successfully", result)
}

func (h *GenerationHandler) Regenerate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid input ID")
	}

	result, err := h.generation.Regenerate(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Created(c, "Content regenerated successfully", result)
}

func (h *GenerationHandler) List(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	inputs, total, err := h.generation.Recent(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return response.ServerError(c, "Failed to fetch generation history")
	}
	p.Total = total
	return c.JSON(pagination.Response(p, inputs))
}

func (h *GenerationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid input ID")
	}

	input, err := h.generation.Get(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Generation retrieved successfully", input)
}
