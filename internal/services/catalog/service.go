// Package catalog implements card search against the external card catalog.
package catalog

import (
	"context"
	"errors"
	"strings"

	apperrors "cardcopy/internal/errors"
	"cardcopy/internal/models"
	"cardcopy/internal/repositories"

	"go.uber.org/zap"
)

// MaxSearchResults caps the number of cards a search returns.
const MaxSearchResults = 5

type service struct {
	client CardCatalogClient
	cache  CatalogCache
	cards  repositories.CardCacheRepository
	log    *zap.Logger
}

// NewService wires card search. cache and cards may be nil, in which case
// every search hits the catalog and nothing is persisted.
func NewService(client CardCatalogClient, cache CatalogCache, cards repositories.CardCacheRepository, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{client: client, cache: cache, cards: cards, log: log}
}

func (s *service) Search(ctx context.Context, query string) ([]models.CreditCard, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.CreditCard{}, nil
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		s.log.Warn("Card catalog lookup failed", zap.String("query", query), zap.Error(err))
		return []models.CreditCard{}, apperrors.ErrCatalogUnavailable.Wrap(err)
	}

	results := make([]models.CreditCard, 0, MaxSearchResults)
	for _, card := range catalog {
		if !card.Matches(q) {
			continue
		}
		results = append(results, card.ToCreditCard())
		if len(results) == MaxSearchResults {
			break
		}
	}

	s.remember(ctx, results)
	return results, nil
}

func (s *service) loadCatalog(ctx context.Context) ([]models.CatalogCard, error) {
	if s.cache != nil {
		cards, found, err := s.cache.GetCatalog(ctx)
		if err != nil {
			s.log.Debug("Catalog cache read failed", zap.Error(err))
		} else if found {
			return cards, nil
		}
	}

	cards, err := s.client.Lookup(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheCatalog(ctx, cards); err != nil {
			s.log.Debug("Catalog cache write failed", zap.Error(err))
		}
	}
	return cards, nil
}

// remember upserts the matched cards into cards_cache and copies the stored
// identifiers back onto results. Failures only cost the identifiers.
func (s *service) remember(ctx context.Context, results []models.CreditCard) {
	if s.cards == nil || len(results) == 0 {
		return
	}

	seen := make(map[string]bool, len(results))
	batch := make([]models.CreditCard, 0, len(results))
	slugs := make([]string, 0, len(results))
	for _, card := range results {
		if card.Slug == "" || seen[card.Slug] {
			continue
		}
		seen[card.Slug] = true
		batch = append(batch, card)
		slugs = append(slugs, card.Slug)
	}

	if err := s.cards.Upsert(ctx, batch); err != nil {
		s.log.Warn("Failed to cache searched cards", zap.Error(err))
		return
	}

	stored, err := s.cards.FindBySlugs(ctx, slugs)
	if err != nil {
		s.log.Warn("Failed to load cached cards", zap.Error(err))
		return
	}
	ids := make(map[string]models.CreditCard, len(stored))
	for i, card := range stored {
		ids[card.Slug] = card
		s.cacheCard(ctx, &stored[i])
	}
	for i := range results {
		if card, ok := ids[results[i].Slug]; ok {
			results[i].ID = card.ID
			results[i].CreatedAt = card.CreatedAt
			results[i].UpdatedAt = card.UpdatedAt
		}
	}
}

// Card returns a previously searched card, from Redis when it holds the
// slug and from cards_cache otherwise.
func (s *service) Card(ctx context.Context, slug string) (*models.CreditCard, error) {
	if s.cache != nil {
		card, found, err := s.cache.GetCard(ctx, slug)
		if err != nil {
			s.log.Debug("Card cache read failed", zap.String("slug", slug), zap.Error(err))
		} else if found {
			return card, nil
		}
	}

	if s.cards == nil {
		return nil, apperrors.ErrCardNotFound
	}
	card, err := s.cards.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, err
	}
	s.cacheCard(ctx, card)
	return card, nil
}

func (s *service) cacheCard(ctx context.Context, card *models.CreditCard) {
	if s.cache == nil {
		return
	}
	if err := s.cache.CacheCard(ctx, card); err != nil {
		s.log.Debug("Card cache write failed", zap.String("slug", card.Slug), zap.Error(err))
	}
}

// Cached lists the cards stored by earlier searches, ordered by name.
func (s *service) Cached(ctx context.Context, limit, offset int) ([]models.CreditCard, int64, error) {
	if s.cards == nil {
		return []models.CreditCard{}, 0, nil
	}
	return s.cards.List(ctx, limit, offset)
}

// Refresh drops the cached catalog so the next search fetches it again.
func (s *service) Refresh(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.InvalidateCatalog(ctx)
}
