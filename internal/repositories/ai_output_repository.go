package repositories

import (
	"context"
	"fmt"

	"cardcopy/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AIOutputRepository stores generated variations.
type AIOutputRepository interface {
	Create(ctx context.Context, output *models.AIOutput) error
	FindByInputID(ctx context.Context, inputID uuid.UUID) ([]models.AIOutput, error)
}

type aiOutputRepository struct {
	db *gorm.DB
}

func NewAIOutputRepository(db *gorm.DB) AIOutputRepository {
	return &aiOutputRepository{db: db}
}

func (r *aiOutputRepository) Create(ctx context.Context, output *models.AIOutput) error {
	return r.db.WithContext(ctx).Create(output).Error
}

func (r *aiOutputRepository) FindByInputID(ctx context.Context, inputID uuid.UUID) ([]models.AIOutput, error) {
	var outputs []models.AIOutput
	err := r.db.WithContext(ctx).
		Where("input_id = ?", inputID).
		Order("variation_number ASC").
		Find(&outputs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get outputs: %w", err)
	}
	return outputs, nil
}
