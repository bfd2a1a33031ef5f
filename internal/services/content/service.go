package content

import (
	"context"
	"errors"
	"time"

	apperrors "cardcopy/internal/errors"
	"cardcopy/internal/models"
	"cardcopy/internal/repositories"

	"go.uber.org/zap"
)

type service struct {
	client  TextGenerationClient
	logs    repositories.GenerationLogRepository
	timeout time.Duration
	log     *zap.Logger
	now     func() time.Time
}

// NewService returns the content proxy. A nil client means no credential was
// configured and every call fails with ErrMissingCredential. logs may be nil.
func NewService(client TextGenerationClient, logs repositories.GenerationLogRepository, timeout time.Duration, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		client:  client,
		logs:    logs,
		timeout: timeout,
		log:     log,
		now:     time.Now,
	}
}

func (s *service) Generate(ctx context.Context, req Request) ([]string, error) {
	prompt := BuildPrompt(req)

	if s.client == nil {
		s.record(ctx, req, prompt, "", "", 0, apperrors.ErrMissingCredential)
		return nil, apperrors.ErrMissingCredential
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := s.now()
	raw, err := s.client.Complete(callCtx, prompt)
	elapsed := s.now().Sub(start)

	if err != nil {
		var domainErr *apperrors.DomainError
		if !errors.As(err, &domainErr) {
			err = apperrors.ErrUpstream.Wrap(err)
		}
		s.log.Warn("content generation failed",
			zap.String("provider", s.client.Provider()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		s.record(ctx, req, prompt, s.client.Provider(), s.client.Model(), elapsed, err)
		return nil, err
	}

	variations := SplitVariations(raw, req)
	s.record(ctx, req, prompt, s.client.Provider(), s.client.Model(), elapsed, nil)
	s.log.Debug("content generated",
		zap.String("provider", s.client.Provider()),
		zap.Duration("elapsed", elapsed))
	return variations, nil
}

// record writes the generation log entry. Failures are logged and dropped.
func (s *service) record(ctx context.Context, req Request, prompt, provider, model string, elapsed time.Duration, cause error) {
	if s.logs == nil {
		return
	}
	entry := &models.GenerationLog{
		InputID:        req.InputID,
		Prompt:         prompt,
		Status:         models.GenerationStatusSuccess,
		ResponseTimeMs: elapsed.Milliseconds(),
		Provider:       provider,
		Model:          model,
	}
	if cause != nil {
		msg := cause.Error()
		entry.Status = models.GenerationStatusFailed
		entry.ErrorMessage = &msg
	}
	if err := s.logs.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.log.Warn("failed to write generation log", zap.Error(err))
	}
}
