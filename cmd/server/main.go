// Package main is the entry point for the HTTP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardcopy/internal/app"
	"cardcopy/internal/config"
	"cardcopy/internal/logger"
	"cardcopy/internal/middleware"
	"cardcopy/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	log := logger.Must(cfg.LogLevel, cfg.IsProduction())
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer application.Close()

	server := fiber.New(fiber.Config{
		AppName:      "cardcopy",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AITimeout + 15*time.Second,
		ErrorHandler: middleware.ErrorHandler(log),
	})

	server.Use(recover.New())
	server.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	}))
	server.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(server, application)

	go func() {
		<-ctx.Done()
		log.Info("Shutting down server")
		if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Warn("Server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("Starting server", zap.String("port", cfg.Port), zap.String("provider", cfg.AIProvider))
	if err := server.Listen(":" + cfg.Port); err != nil {
		log.Error("Server stopped", zap.Error(err))
	}
}
