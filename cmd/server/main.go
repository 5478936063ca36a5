// Package main is the entry point for the flight offer search service.
//
//	@title						Flight Offer Search API
//	@version					1.0.0
//	@description				Searches flight offers from a single provider and filters and sorts them by price, stops, airline, cabin and time of day.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/tripwise/flight-offers/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	// Import generated docs for swagger
	_ "github.com/tripwise/flight-offers/docs"

	// Application layers
	offerhttp "github.com/tripwise/flight-offers/internal/adapter/http"
	"github.com/tripwise/flight-offers/internal/adapter/http/middleware"
	"github.com/tripwise/flight-offers/internal/adapter/provider/amadeus"
	"github.com/tripwise/flight-offers/internal/adapter/provider/fixture"
	"github.com/tripwise/flight-offers/internal/config"
	"github.com/tripwise/flight-offers/internal/domain"
	"github.com/tripwise/flight-offers/internal/infrastructure/logger"
	"github.com/tripwise/flight-offers/internal/infrastructure/timeutil"
	"github.com/tripwise/flight-offers/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLog := setupLogger(cfg)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("provider", cfg.Provider.Name).
		Str("timezone", cfg.Location().String()).
		Msg("Configuration loaded")

	provider, err := selectProvider(cfg, appLog)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to select flight offer provider")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Middleware must be installed before routes
	middleware.Setup(e, appLog.Logger)

	setupRoutes(e, cfg, provider, appLog)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, appLog)
}

// setupLogger builds the application logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: logger.DefaultServiceName,
	})
	log.Logger = appLog.Logger

	return appLog
}

// selectProvider registers the available providers and returns the configured one.
func selectProvider(cfg *config.Config, appLog *logger.Logger) (domain.FlightOfferProvider, error) {
	registry := domain.NewProviderRegistry()

	registry.Register(fixture.NewAdapter(cfg.Provider.FixturePath))

	if cfg.Amadeus.APIKey != "" && cfg.Amadeus.APISecret != "" {
		registry.Register(amadeus.NewClient(amadeus.Config{
			BaseURL:    cfg.Amadeus.BaseURL,
			APIKey:     cfg.Amadeus.APIKey,
			APISecret:  cfg.Amadeus.APISecret,
			MaxResults: cfg.Amadeus.MaxResults,
			Currency:   cfg.Amadeus.Currency,
			Timeout:    cfg.Timeouts.Provider,
			Retry:      cfg.Amadeus.RetryPolicy(),
			Clock:      timeutil.NewRealClock(),
			Logger:     appLog,
		}))
	}

	provider := registry.Get(cfg.Provider.Name)
	if provider == nil {
		return nil, fmt.Errorf("%w: %q (registered: %v)", domain.ErrProviderNotFound, cfg.Provider.Name, registry.Names())
	}
	return provider, nil
}

// setupRoutes wires the use case and handler and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, provider domain.FlightOfferProvider, appLog *logger.Logger) {
	offerUseCase := usecase.NewOfferSearchUseCase(provider, &usecase.Config{
		SearchTimeout:        cfg.Timeouts.Search,
		CacheTTL:             cfg.Cache.TTL,
		CacheCleanupInterval: cfg.Cache.CleanupInterval,
		Location:             cfg.Location(),
		Logger:               appLog,
	})

	offerHandler := offerhttp.NewOfferHandler(offerUseCase, usecase.NewEngine(cfg.Location()), provider.Name())

	offerhttp.RegisterRoutes(e, offerHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
