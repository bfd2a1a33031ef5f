package repositories

import (
	"context"
	"errors"
	"fmt"

	"cardcopy/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCardNotFound = errors.New("credit card not found")
)

// CardCacheRepository stores the cards returned by catalog searches.
type CardCacheRepository interface {
	Upsert(ctx context.Context, cards []models.CreditCard) error
	GetBySlug(ctx context.Context, slug string) (*models.CreditCard, error)
	FindBySlugs(ctx context.Context, slugs []string) ([]models.CreditCard, error)
	List(ctx context.Context, limit, offset int) ([]models.CreditCard, int64, error)
}

type cardCacheRepository struct {
	db *gorm.DB
}

func NewCardCacheRepository(db *gorm.DB) CardCacheRepository {
	return &cardCacheRepository{db: db}
}

func (r *cardCacheRepository) Upsert(ctx context.Context, cards []models.CreditCard) error {
	if len(cards) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "bank_name", "description", "rewards",
			"joining_fee", "annual_fee", "card_network", "metadata", "updated_at",
		}),
	}).Create(&cards).Error
	if err != nil {
		return fmt.Errorf("failed to cache cards: %w", err)
	}
	return nil
}

func (r *cardCacheRepository) GetBySlug(ctx context.Context, slug string) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

func (r *cardCacheRepository) FindBySlugs(ctx context.Context, slugs []string) ([]models.CreditCard, error) {
	var cards []models.CreditCard
	if len(slugs) == 0 {
		return cards, nil
	}
	if err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get cards: %w", err)
	}
	return cards, nil
}

func (r *cardCacheRepository) List(ctx context.Context, limit, offset int) ([]models.CreditCard, int64, error) {
	var cards []models.CreditCard
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.CreditCard{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cards: %w", err)
	}
	err := r.db.WithContext(ctx).Order("name ASC").Limit(limit).Offset(offset).Find(&cards).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, total, nil
}
