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
	"go.uber.org/zap"

	httpapi "github.com/i474232898/weather-widget/internal/api/http"
	"github.com/i474232898/weather-widget/internal/config"
	"github.com/i474232898/weather-widget/internal/observe"
	"github.com/i474232898/weather-widget/internal/scheduler"
	"github.com/i474232898/weather-widget/internal/store"
	"github.com/i474232898/weather-widget/internal/weather"
	"github.com/i474232898/weather-widget/internal/weather/providers"
)

const appName = "weather-widget"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := observe.NewLogger(appName, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer l.Sync() //nolint:errcheck

	if cfg.OpenWeatherAPIKey == "" {
		l.Warn("OPENWEATHER_API_KEY is not set; every lookup will fail")
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey,
		providers.WithBaseURL(cfg.OpenWeatherBaseURL),
		providers.WithUnits(cfg.Units),
		providers.WithRetries(cfg.ProviderMaxRetries),
	)

	// One widget per browser session.
	sessions := store.NewMemoryStore(func() *weather.Widget {
		return weather.NewWidget(provider, cfg.DefaultCity, l.Named("widget"))
	}, cfg.SessionMaxCount, cfg.SessionMaxAge)

	sched := scheduler.New(sessions, cfg.SessionSweepInterval, l.Named("janitor"))
	if err := sched.Start(); err != nil {
		l.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          cfg.HTTPTimeout + 5*time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
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

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": appName,
		})
	})

	httpapi.RegisterRoutes(app, sessions, httpapi.Options{
		IconBaseURL: cfg.OpenWeatherIconURL,
		Units:       cfg.Units,
		CookieTTL:   cfg.SessionMaxAge,
	}, l.Named("http"))

	go func() {
		l.Info("listening", zap.String("port", cfg.Port), zap.String("default_city", cfg.DefaultCity))
		if err := app.Listen(":" + cfg.Port); err != nil {
			l.Warn("fiber server stopped", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		l.Error("error during shutdown", zap.Error(err))
	}
}
