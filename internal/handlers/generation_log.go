package handlers

import (
	"strconv"

	"cardcopy/internal/repositories"
	"cardcopy/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const maxLogLimit = 200

type GenerationLogHandler struct {
	logs repositories.GenerationLogRepository
}

func NewGenerationLogHandler(logs repositories.GenerationLogRepository) *GenerationLogHandler {
	return &GenerationLogHandler{logs: logs}
}

// List handles GET /api/generation-logs?limit=N, newest first.
func (h *GenerationLogHandler) List(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}

	logs, err := h.logs.ListRecent(c.UserContext(), limit)
	if err != nil {
		return response.ServerError(c, "Failed to fetch generation logs")
	}
	return response.Success(c, "Generation logs retrieved successfully", logs)
}
