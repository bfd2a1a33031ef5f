package repositories

import (
	"context"
	"errors"
	"fmt"

	"cardcopy/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInputNotFound = errors.New("user input not found")
)

// UserInputRepository records generation requests.
type UserInputRepository interface {
	Create(ctx context.Context, input *models.UserInput) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.UserInput, error)
	ListRecent(ctx context.Context, limit, offset int) ([]models.UserInput, int64, error)
}

type userInputRepository struct {
	db *gorm.DB
}

func NewUserInputRepository(db *gorm.DB) UserInputRepository {
	return &userInputRepository{db: db}
}

func (r *userInputRepository) Create(ctx context.Context, input *models.UserInput) error {
	return r.db.WithContext(ctx).Omit("Outputs").Create(input).Error
}

// FindByID loads an input with every batch generated for it, ordered by
// creation time and variation number.
func (r *userInputRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.UserInput, error) {
	var input models.UserInput
	err := r.db.WithContext(ctx).
		Preload("Outputs", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, variation_number ASC")
		}).
		First(&input, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInputNotFound
		}
		return nil, fmt.Errorf("failed to get input: %w", err)
	}
	return &input, nil
}

func (r *userInputRepository) ListRecent(ctx context.Context, limit, offset int) ([]models.UserInput, int64, error) {
	var inputs []models.UserInput
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.UserInput{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inputs: %w", err)
	}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&inputs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list inputs: %w", err)
	}
	return inputs, total, nil
}
