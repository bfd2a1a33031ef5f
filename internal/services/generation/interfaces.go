package generation

import (
	"context"

	"cardcopy/internal/models"

	"github.com/google/uuid"
)

// Result is what the workflow displays after a successful run.
type Result struct {
	InputID    uuid.UUID         `json:"inputId"`
	Selection  models.Selection  `json:"selection"`
	Variations []string          `json:"variations"`
	Outputs    []models.AIOutput `json:"outputs"`
}

// Service runs the generate and regenerate workflow and exposes history.
type Service interface {
	Generate(ctx context.Context, sel models.Selection) (*Result, error)
	Regenerate(ctx context.Context, inputID uuid.UUID) (*Result, error)
	Recent(ctx context.Context, limit, offset int) ([]models.UserInput, int64, error)
	Get(ctx context.Context, inputID uuid.UUID) (*models.UserInput, error)
}
