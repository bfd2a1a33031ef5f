package contact

import (
	"context"
	"fmt"
	"strings"

	"cardcopy/internal/models"
	"cardcopy/internal/repositories"
	"cardcopy/internal/validation"

	"go.uber.org/zap"
)

// Submission is the contact form payload.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type Service interface {
	Submit(ctx context.Context, sub Submission) (*models.ContactSubmission, error)
}

type service struct {
	repo repositories.ContactRepository
	log  *zap.Logger
}

func NewService(repo repositories.ContactRepository, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{repo: repo, log: log}
}

func (s *service) Submit(ctx context.Context, sub Submission) (*models.ContactSubmission, error) {
	name := strings.TrimSpace(sub.Name)
	email := strings.ToLower(strings.TrimSpace(sub.Email))
	message := strings.TrimSpace(sub.Message)

	if err := validation.ValidateContact(name, email, message); err != nil {
		return nil, err
	}

	record := &models.ContactSubmission{Name: name, Email: email, Message: message}
	if err := s.repo.Create(ctx, record); err != nil {
		s.log.Error("failed to store contact submission", zap.Error(err))
		return nil, fmt.Errorf("failed to store contact submission: %w", err)
	}
	s.log.Info("contact submission received", zap.String("id", record.ID.String()))
	return record, nil
}
