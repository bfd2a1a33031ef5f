package contact

import (
	"context"
	"errors"
	"testing"

	apperrors "cardcopy/internal/errors"
	"cardcopy/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, submission *models.ContactSubmission) error {
	args := m.Called(ctx, submission)
	if args.Error(0) == nil {
		submission.ID = uuid.New()
	}
	return args.Error(0)
}

func TestSubmit_NormalizesAndStores(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.ContactSubmission) bool {
		return s.Name == "Asha" && s.Email == "asha@example.com" && s.Message == "Hello"
	})).Return(nil)

	svc := NewService(repo, nil)
	record, err := svc.Submit(context.Background(), Submission{
		Name:    "  Asha ",
		Email:   " Asha@Example.com ",
		Message: "Hello\n",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, record.ID)
	repo.AssertExpectations(t)
}

func TestSubmit_Invalid(t *testing.T) {
	repo := new(MockContactRepo)
	svc := NewService(repo, nil)

	_, err := svc.Submit(context.Background(), Submission{Name: "Asha", Email: "nope", Message: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_StoreFailure(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := NewService(repo, nil)
	_, err := svc.Submit(context.Background(), Submission{Name: "Asha", Email: "asha@example.com", Message: "hi"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
}
