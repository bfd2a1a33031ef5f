package content

import (
	"context"

	"cardcopy/internal/models"

	"github.com/google/uuid"
)

// TextGenerationClient abstracts the generative text API so providers can
// be swapped or mocked.
type TextGenerationClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Provider() string
	Model() string
}

// Request carries the fields the proxy turns into a prompt. InputID links
// the generation log entry to a recorded input when there is one.
type Request struct {
	models.Selection
	InputID *uuid.UUID `json:"-"`
}

// Service defines the content proxy.
type Service interface {
	Generate(ctx context.Context, req Request) ([]string, error)
}
