// Package routes defines the API routing configuration.
package routes

import (
	"time"

	"cardcopy/internal/app"
	"cardcopy/internal/handlers"
	"cardcopy/internal/middleware"
	"cardcopy/internal/web"

	"github.com/gofiber/fiber/v2"
)

const (
	contactRateLimit  = 5
	contactRateWindow = time.Minute
)

// SetupRoutes registers every route on the fiber app.
func SetupRoutes(router fiber.Router, a *app.App) {
	checks := make(map[string]handlers.HealthCheckFunc)
	for name, check := range a.HealthChecks() {
		checks[name] = check
	}
	healthHandler := handlers.NewHealthHandler(checks)
	cardHandler := handlers.NewCardHandler(a.Catalog, a.Log.Named("handlers"))
	contentHandler := handlers.NewContentHandler(a.Content)
	generationHandler := handlers.NewGenerationHandler(a.Generation)
	contactHandler := handlers.NewContactHandler(a.Contact)
	logHandler := handlers.NewGenerationLogHandler(a.Logs)

	router.Get("/health", healthHandler.Check)
	router.Get("/", web.Index)

	api := router.Group("/api")
	api.Get("/options", handlers.Options)
	api.Get("/cards/search", cardHandler.Search)
	api.Get("/cards", cardHandler.List)
	api.Get("/cards/:slug", cardHandler.Get)
	api.Post("/generate-content", contentHandler.Generate)

	generations := api.Group("/generations")
	generations.Post("/", generationHandler.Create)
	generations.Get("/", generationHandler.List)
	generations.Get("/:id", generationHandler.Get)
	generations.Post("/:id/regenerate", generationHandler.Regenerate)

	api.Get("/generation-logs", logHandler.List)
	api.Post("/contact", middleware.RateLimit(contactRateLimit, contactRateWindow), contactHandler.Submit)
}
