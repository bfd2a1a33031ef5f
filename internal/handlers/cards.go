package handlers

import (
	"errors"

	apperrors "cardcopy/internal/errors"
	"cardcopy/internal/models"
	"cardcopy/internal/services/catalog"
	"cardcopy/internal/utils/pagination"
	"cardcopy/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// searchNotice is shown instead of results when the catalog cannot be reached.
const searchNotice = "Card search is temporarily unavailable. Please try again."

type CardHandler struct {
	catalog catalog.Service
	log     *zap.Logger
}

func NewCardHandler(catalogService catalog.Service, log *zap.Logger) *CardHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CardHandler{catalog: catalogService, log: log}
}

// Search handles GET /api/cards/search?q=. A catalog failure is not fatal:
// the response is still 200 with no cards and a notice.
func (h *CardHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")

	cards, err := h.catalog.Search(c.UserContext(), query)
	if err != nil {
		if errors.Is(err, apperrors.ErrCatalogUnavailable) {
			h.log.Warn("card search failed", zap.String("query", query), zap.Error(err))
			return c.JSON(fiber.Map{
				"cards":  []models.CreditCard{},
				"notice": searchNotice,
			})
		}
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"cards": cards})
}

// List handles GET /api/cards, the cards stored by earlier searches.
func (h *CardHandler) List(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	cards, total, err := h.catalog.Cached(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return response.ServerError(c, "Failed to fetch cards")
	}
	p.Total = total
	return c.JSON(pagination.Response(p, cards))
}

func (h *CardHandler) Get(c *fiber.Ctx) error {
	card, err := h.catalog.Card(c.UserContext(), c.Params("slug"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return response.Success(c, "Card retrieved successfully", card)
}
