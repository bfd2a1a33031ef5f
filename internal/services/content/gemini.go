package content

import (
	"context"
	"errors"
	"fmt"

	apperrors "cardcopy/internal/errors"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClient calls the Generative Language API through the genai SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds the client. baseURL overrides the API endpoint
// when set.
func NewGeminiClient(ctx context.Context, apiKey, model, baseURL string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingCredential
	}
	if model == "" {
		model = defaultGeminiModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.9),
		MaxOutputTokens: 1024,
	})
	if err != nil {
		return "", classifyGeminiError(err)
	}
	return resp.Text(), nil
}

func (g *GeminiClient) Provider() string { return ProviderGemini }

func (g *GeminiClient) Model() string { return g.model }

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apperrors.ErrUpstream.Wrap(fmt.Errorf("gemini status %d: %s", apiErr.Code, apiErr.Message))
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apperrors.ErrUpstream.Wrap(fmt.Errorf("gemini status %d: %s", apiErrPtr.Code, apiErrPtr.Message))
	}
	return apperrors.ErrUpstream.Wrap(err)
}
