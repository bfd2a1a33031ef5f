package content

import (
	"context"

	apperrors "cardcopy/internal/errors"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// ProviderConfig selects and configures a text generation provider.
type ProviderConfig struct {
	Provider      string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
}

// NewTextGenerationClient builds the configured provider. It returns
// ErrMissingCredential when the provider's API key is empty; callers may
// still start and let the proxy fail each request.
func NewTextGenerationClient(ctx context.Context, cfg ProviderConfig) (TextGenerationClient, error) {
	switch cfg.Provider {
	case ProviderGemini, "":
		client, err := NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderOpenAI:
		client, err := NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderMock:
		return MockClient{}, nil
	default:
		return nil, apperrors.ErrUnknownProvider.WithMessage("unsupported text generation provider: " + cfg.Provider)
	}
}
