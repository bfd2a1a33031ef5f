package repositories

import (
	"context"
	"fmt"

	"cardcopy/internal/models"

	"gorm.io/gorm"
)

type GenerationLogRepository interface {
	Create(ctx context.Context, entry *models.GenerationLog) error
	ListRecent(ctx context.Context, limit int) ([]models.GenerationLog, error)
}

type generationLogRepository struct {
	db *gorm.DB
}

func NewGenerationLogRepository(db *gorm.DB) GenerationLogRepository {
	return &generationLogRepository{db: db}
}

func (r *generationLogRepository) Create(ctx context.Context, entry *models.GenerationLog) error {
	return r.db.WithContext(ctx).Omit("Input").Create(entry).Error
}

func (r *generationLogRepository) ListRecent(ctx context.Context, limit int) ([]models.GenerationLog, error) {
	var logs []models.GenerationLog
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list generation logs: %w", err)
	}
	return logs, nil
}
