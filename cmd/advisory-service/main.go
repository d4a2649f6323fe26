package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kisanexpress/advisory-service/internal/advisory"
	"github.com/kisanexpress/advisory-service/internal/alerts"
	httpapi "github.com/kisanexpress/advisory-service/internal/api/http"
	"github.com/kisanexpress/advisory-service/internal/config"
	"github.com/kisanexpress/advisory-service/internal/region"
	"github.com/kisanexpress/advisory-service/internal/weather"
	"github.com/kisanexpress/advisory-service/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Static district table.
	table := region.Kerala()

	// Provider cascade: keyed primary first (only when configured), then
	// the credential-free secondary.
	var provs []weather.Provider
	if cfg.WeatherAPIKey != "" {
		provs = append(provs, providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey))
	}
	provs = append(provs, providers.NewOpenMeteoProvider(httpClient))

	weatherSvc := weather.NewService(table, provs)

	// Crop advisory service. A nil model keeps it on the heuristic path.
	var model advisory.Model
	if cfg.GeminiAPIKey != "" {
		model = advisory.NewGeminiClient(httpClient, cfg.GeminiAPIKey)
	}
	advisorySvc := advisory.NewService(model)

	// Alert store and refresh scheduler.
	alertStore := alerts.NewMemoryStore(cfg.AlertMaxPerDistrict, cfg.AlertMaxAge)
	sched := alerts.New(table.Names(), cfg.AlertRefreshInterval, weatherSvc, alertStore)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start alert scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "kisan-advisory-service",
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
				"error":   true,
				"message": err.Error(),
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
			"service": "kisan-advisory-service",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, weatherSvc, advisorySvc, alertStore)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
