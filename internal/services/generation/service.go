package generation

import (
	"context"
	"errors"

	apperrors "cardcopy/internal/errors"
	"cardcopy/internal/models"
	"cardcopy/internal/repositories"
	"cardcopy/internal/services/content"
	"cardcopy/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type service struct {
	inputs  repositories.UserInputRepository
	outputs repositories.AIOutputRepository
	content content.Service
	log     *zap.Logger
}

func NewService(
	inputs repositories.UserInputRepository,
	outputs repositories.AIOutputRepository,
	contentService content.Service,
	log *zap.Logger,
) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		inputs:  inputs,
		outputs: outputs,
		content: contentService,
		log:     log,
	}
}

// run tracks the state of one workflow execution.
type run struct {
	state State
	log   *zap.Logger
}

func (r *run) enter(s State) {
	r.log.Debug("generation state", zap.Stringer("from", r.state), zap.Stringer("to", s))
	r.state = s
}

func (r *run) fail(err error) error {
	r.log.Debug("generation state", zap.Stringer("from", r.state), zap.Stringer("to", StateFailed), zap.Error(err))
	r.state = StateFailed
	return err
}

func (s *service) Generate(ctx context.Context, sel models.Selection) (*Result, error) {
	return s.execute(ctx, sel)
}

// Regenerate re-runs the workflow with the fields captured by an existing
// input. It records a new input and a new batch; the old rows stay as they are.
func (s *service) Regenerate(ctx context.Context, inputID uuid.UUID) (*Result, error) {
	prev, err := s.inputs.FindByID(ctx, inputID)
	if err != nil {
		if errors.Is(err, repositories.ErrInputNotFound) {
			return nil, apperrors.ErrInputNotFound
		}
		return nil, apperrors.ErrGenerationFailed.Wrap(err)
	}
	return s.execute(ctx, prev.Selection())
}

func (s *service) execute(ctx context.Context, sel models.Selection) (*Result, error) {
	r := &run{state: StateIdle, log: s.log.With(zap.String("card", sel.CardName))}

	r.enter(StateValidating)
	if err := validation.ValidateSelection(sel); err != nil {
		return nil, r.fail(err)
	}

	r.enter(StateRecordingInput)
	input := models.NewUserInput(sel)
	if err := s.inputs.Create(ctx, input); err != nil {
		s.log.Error("failed to record input", zap.Error(err))
		return nil, r.fail(apperrors.ErrGenerationFailed.Wrap(err))
	}

	r.enter(StateRequestingContent)
	variations, err := s.content.Generate(ctx, content.Request{Selection: sel, InputID: &input.ID})
	if err != nil {
		s.log.Warn("content request failed", zap.String("input_id", input.ID.String()), zap.Error(err))
		return nil, r.fail(apperrors.ErrGenerationFailed.Wrap(err))
	}

	r.enter(StateRecordingOutputs)
	outputs, err := s.recordOutputs(ctx, input.ID, variations)
	if err != nil {
		s.log.Error("failed to record outputs", zap.String("input_id", input.ID.String()), zap.Error(err))
		return nil, r.fail(apperrors.ErrGenerationFailed.Wrap(err))
	}

	r.enter(StateDisplaying)
	return &Result{
		InputID:    input.ID,
		Selection:  sel,
		Variations: variations,
		Outputs:    outputs,
	}, nil
}

// recordOutputs inserts one row per variation concurrently. Rows inserted
// before a failure are left in place.
func (s *service) recordOutputs(ctx context.Context, inputID uuid.UUID, variations []string) ([]models.AIOutput, error) {
	outputs := make([]models.AIOutput, len(variations))
	g, gctx := errgroup.WithContext(ctx)
	for i, text := range variations {
		outputs[i] = models.AIOutput{
			InputID:         inputID,
			VariationNumber: i + 1,
			Content:         text,
		}
		out := &outputs[i]
		g.Go(func() error {
			return s.outputs.Create(gctx, out)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func (s *service) Recent(ctx context.Context, limit, offset int) ([]models.UserInput, int64, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.inputs.ListRecent(ctx, limit, offset)
}

func (s *service) Get(ctx context.Context, inputID uuid.UUID) (*models.UserInput, error) {
	input, err := s.inputs.FindByID(ctx, inputID)
	if err != nil {
		if errors.Is(err, repositories.ErrInputNotFound) {
			return nil, apperrors.ErrInputNotFound
		}
		return nil, err
	}
	return input, nil
}
