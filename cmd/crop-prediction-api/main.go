package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	httpapi "github.com/i474232898/crop-prediction-api/internal/api/http"
	"github.com/i474232898/crop-prediction-api/internal/config"
	"github.com/i474232898/crop-prediction-api/internal/prediction"
	"github.com/i474232898/crop-prediction-api/internal/soil"
	"github.com/i474232898/crop-prediction-api/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if !cfg.HasRealKey() {
		zlog.Warn().Msg("no OpenWeather API key configured; provider calls will use a placeholder key")
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	weatherProvider := providers.NewOneCallProvider(httpClient, providers.Options{
		APIKey:             cfg.OpenWeatherAPIKey,
		BreakerMaxRequests: cfg.Breaker.MaxRequests,
		BreakerInterval:    cfg.Breaker.Interval,
		BreakerTimeout:     cfg.Breaker.Timeout,
	}, zlog)

	soilProvider := soil.NewPlaceholderProvider()

	// Core service running the prediction pipeline.
	service := prediction.NewService(weatherProvider, soilProvider, cfg.HasRealKey(), zlog)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "crop-prediction-api",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "crop-prediction-api",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Error().Err(err).Msg("fiber server stopped")
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("error during shutdown")
	}
}
