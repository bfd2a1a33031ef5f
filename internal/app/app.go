// Package app wires repositories and services from configuration. The
// HTTP server and the CLI share it.
package app

import (
	"context"
	"errors"
	"fmt"

	"cardcopy/internal/config"
	apperrors "cardcopy/internal/errors"
	"cardcopy/internal/repositories"
	"cardcopy/internal/repositories/cache"
	"cardcopy/internal/services/catalog"
	"cardcopy/internal/services/contact"
	"cardcopy/internal/services/content"
	"cardcopy/internal/services/generation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the long-lived dependencies of a running process.
type App struct {
	Config config.Config
	Log    *zap.Logger
	DB     *gorm.DB
	Cache  *cache.CacheService

	Catalog    catalog.Service
	Content    content.Service
	Generation generation.Service
	Contact    contact.Service
	Logs       repositories.GenerationLogRepository
}

// New connects to the database and Redis and builds every service. Redis
// is optional; without it catalog lookups are not cached. A missing
// generative API credential is tolerated and surfaces on each request.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	db, err := repositories.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Connected to database", zap.String("driver", cfg.DBDriver))

	return Build(ctx, cfg, log, db, connectCache(ctx, cfg, log))
}

// Build assembles the services on top of an open database.
func Build(ctx context.Context, cfg config.Config, log *zap.Logger, db *gorm.DB, cacheService *cache.CacheService) (*App, error) {
	textClient, err := content.NewTextGenerationClient(ctx, content.ProviderConfig{
		Provider:      cfg.AIProvider,
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiModel:   cfg.GeminiModel,
		GeminiBaseURL: cfg.GeminiBaseURL,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
	})
	switch {
	case errors.Is(err, apperrors.ErrMissingCredential):
		log.Warn("No API key configured for text generation provider", zap.String("provider", cfg.AIProvider))
		textClient = nil
	case err != nil:
		return nil, fmt.Errorf("failed to create text generation client: %w", err)
	}

	var catalogCache catalog.CatalogCache
	if cacheService != nil {
		catalogCache = cacheService
	}

	cardRepo := repositories.NewCardCacheRepository(db)
	inputRepo := repositories.NewUserInputRepository(db)
	outputRepo := repositories.NewAIOutputRepository(db)
	logRepo := repositories.NewGenerationLogRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	catalogService := catalog.NewService(
		catalog.NewHTTPCatalogClient(cfg.CatalogURL, cfg.CatalogTimeout),
		catalogCache,
		cardRepo,
		log.Named("catalog"),
	)
	contentService := content.NewService(textClient, logRepo, cfg.AITimeout, log.Named("content"))

	return &App{
		Config:     cfg,
		Log:        log,
		DB:         db,
		Cache:      cacheService,
		Catalog:    catalogService,
		Content:    contentService,
		Generation: generation.NewService(inputRepo, outputRepo, contentService, log.Named("generation")),
		Contact:    contact.NewService(contactRepo, log.Named("contact")),
		Logs:       logRepo,
	}, nil
}

func connectCache(ctx context.Context, cfg config.Config, log *zap.Logger) *cache.CacheService {
	client := cache.NewRedisClient(&cache.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	service := cache.NewCacheService(client, cfg.CatalogCacheTTL)
	if err := service.HealthCheck(ctx); err != nil {
		log.Warn("Redis unavailable, catalog caching disabled", zap.Error(err))
		_ = service.Close()
		return nil
	}
	log.Info("Connected to Redis")
	return service
}

// HealthChecks returns the dependency probes for the health endpoint.
func (a *App) HealthChecks() map[string]func(context.Context) error {
	checks := map[string]func(context.Context) error{
		"database": func(ctx context.Context) error {
			return repositories.Ping(a.DB.WithContext(ctx))
		},
		"redis": nil,
	}
	if a.Cache != nil {
		checks["redis"] = a.Cache.HealthCheck
	}
	return checks
}

// Close releases Redis and database connections.
func (a *App) Close() {
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			a.Log.Warn("Failed to close Redis connection", zap.Error(err))
		}
	}
	if err := repositories.Close(a.DB); err != nil {
		a.Log.Warn("Failed to close database connection", zap.Error(err))
	}
}
