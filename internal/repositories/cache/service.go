package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cardcopy/internal/models"
	"cardcopy/internal/utils/cache"

	"github.com/redis/go-redis/v9"
)

// CacheService stores JSON-encoded values in Redis with a default TTL.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Get decodes the value at key into dest. It reports false without error
// when the key does not exist.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Catalog caching
func (s *CacheService) CacheCatalog(ctx context.Context, cards []models.CatalogCard) error {
	return s.Set(ctx, catalogKey(), cards)
}

func (s *CacheService) GetCatalog(ctx context.Context) ([]models.CatalogCard, bool, error) {
	var cards []models.CatalogCard
	found, err := s.Get(ctx, catalogKey(), &cards)
	if err != nil || !found {
		return nil, false, err
	}
	return cards, true, nil
}

func (s *CacheService) InvalidateCatalog(ctx context.Context) error {
	return s.Delete(ctx, catalogKey())
}

func catalogKey() string {
	return cache.GenerateKey(cache.EntityCatalog, cache.KeyList, "all")
}

// Card caching
func (s *CacheService) CacheCard(ctx context.Context, card *models.CreditCard) error {
	return s.Set(ctx, cardKey(card.Slug), card)
}

func (s *CacheService) GetCard(ctx context.Context, slug string) (*models.CreditCard, bool, error) {
	var card models.CreditCard
	found, err := s.Get(ctx, cardKey(slug), &card)
	if err != nil || !found {
		return nil, false, err
	}
	return &card, true, nil
}

func (s *CacheService) InvalidateCard(ctx context.Context, slug string) error {
	return s.Delete(ctx, cardKey(slug))
}

func cardKey(slug string) string {
	return cache.GenerateKey(cache.EntityCard, cache.KeySlug, slug)
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
