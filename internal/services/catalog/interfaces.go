package catalog

import (
	"context"

	"cardcopy/internal/models"
)

// CardCatalogClient fetches the full, unfiltered card catalog.
type CardCatalogClient interface {
	Lookup(ctx context.Context) ([]models.CatalogCard, error)
}

// CatalogCache keeps a recent copy of the catalog between searches, plus
// the stored cards looked up by slug.
type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]models.CatalogCard, bool, error)
	CacheCatalog(ctx context.Context, cards []models.CatalogCard) error
	InvalidateCatalog(ctx context.Context) error
	GetCard(ctx context.Context, slug string) (*models.CreditCard, bool, error)
	CacheCard(ctx context.Context, card *models.CreditCard) error
}

// Service defines card search operations
type Service interface {
	Search(ctx context.Context, query string) ([]models.CreditCard, error)
	Card(ctx context.Context, slug string) (*models.CreditCard, error)
	Cached(ctx context.Context, limit, offset int) ([]models.CreditCard, int64, error)
	Refresh(ctx context.Context) error
}
