package content

import (
	"context"
	"errors"
	"fmt"

	apperrors "cardcopy/internal/errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIClient implements TextGenerationClient for OpenAI-compatible
// chat completion endpoints.
type OpenAIClient struct {
	client openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingCredential
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIClient{client: openai.NewClient(opts...), model: model}, nil
}

func (o *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You write short promotional copy for credit cards. Answer with a numbered list only."),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", apperrors.ErrUpstream.Wrap(fmt.Errorf("openai status %d: %w", apiErr.StatusCode, err))
		}
		return "", apperrors.ErrUpstream.Wrap(err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.ErrUpstream.Wrap(errors.New("openai: empty choices"))
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAIClient) Provider() string { return ProviderOpenAI }

func (o *OpenAIClient) Model() string { return o.model }
