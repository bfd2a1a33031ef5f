package handlers

import (
	"errors"

	apperrors "cardcopy/internal/errors"
	"cardcopy/internal/utils/response"
	"cardcopy/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// handleServiceError maps domain errors to HTTP responses.
func handleServiceError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return response.ValidationError(c, apperrors.ErrValidation.Message, verr.Fields)
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return response.BadRequest(c, apperrors.ErrValidation.Message)
	case errors.Is(err, apperrors.ErrInputNotFound):
		return response.NotFound(c, apperrors.ErrInputNotFound.Message)
	case errors.Is(err, apperrors.ErrCardNotFound):
		return response.NotFound(c, apperrors.ErrCardNotFound.Message)
	case errors.Is(err, apperrors.ErrGenerationFailed):
		return response.ServerError(c, "Failed to generate content")
	case errors.Is(err, apperrors.ErrMissingCredential):
		return response.ServerError(c, apperrors.ErrMissingCredential.Message)
	case errors.Is(err, apperrors.ErrUpstream):
		return response.BadGateway(c, apperrors.ErrUpstream.Message)
	default:
		return response.ServerError(c, "Internal server error")
	}
}
