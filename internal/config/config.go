// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/tripwise/flight-offers/internal/infrastructure/retry"
	"github.com/tripwise/flight-offers/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Logging  LoggingConfig
	App      AppConfig
	Provider ProviderConfig
	Amadeus  AmadeusConfig
	Cache    CacheConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds timeout settings for flight offer searches.
type TimeoutConfig struct {
	// Search bounds one offer search including retries
	Search time.Duration `env:"TIMEOUT_SEARCH" envDefault:"10s"`

	// Provider bounds a single HTTP attempt against the provider
	Provider time.Duration `env:"TIMEOUT_PROVIDER" envDefault:"4s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// Timezone is the IANA zone used to read departure and arrival hours
	Timezone string `env:"APP_TIMEZONE" envDefault:"Local"`
}

// Supported flight offer providers.
const (
	ProviderAmadeus = "amadeus"
	ProviderFixture = "fixture"
)

// ProviderConfig selects the flight offer provider.
type ProviderConfig struct {
	Name        string `env:"FLIGHT_PROVIDER" envDefault:"fixture"`
	FixturePath string `env:"FIXTURE_PATH" envDefault:"docs/response-mock/flight_offers.json"`
}

// AmadeusConfig holds Amadeus Self-Service API settings.
type AmadeusConfig struct {
	BaseURL    string `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	APIKey     string `env:"AMADEUS_API_KEY"`
	APISecret  string `env:"AMADEUS_API_SECRET"`
	MaxResults int    `env:"AMADEUS_MAX_RESULTS" envDefault:"50"`
	Currency   string `env:"AMADEUS_CURRENCY" envDefault:"USD"`

	// Retries cover rate limiting, 5xx responses and transport errors
	RetryAttempts     int           `env:"AMADEUS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInitialDelay time.Duration `env:"AMADEUS_RETRY_INITIAL_DELAY" envDefault:"200ms"`
	RetryMaxDelay     time.Duration `env:"AMADEUS_RETRY_MAX_DELAY" envDefault:"5s"`
}

// RetryPolicy returns the provider retry policy with the configured attempts and delays.
func (a AmadeusConfig) RetryPolicy() retry.Config {
	return retry.ProviderConfig.
		WithMaxAttempts(a.RetryAttempts).
		WithInitialDelay(a.RetryInitialDelay).
		WithMaxDelay(a.RetryMaxDelay)
}

// CacheConfig holds the search result cache settings.
type CacheConfig struct {
	TTL             time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	CleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"10m"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.Search <= 0 {
		return fmt.Errorf("TIMEOUT_SEARCH must be positive")
	}
	if cfg.Timeouts.Provider <= 0 {
		return fmt.Errorf("TIMEOUT_PROVIDER must be positive")
	}

	// Validate a single provider attempt fits inside the search timeout
	if cfg.Timeouts.Provider >= cfg.Timeouts.Search {
		return fmt.Errorf("TIMEOUT_PROVIDER (%s) should be less than TIMEOUT_SEARCH (%s)",
			cfg.Timeouts.Provider, cfg.Timeouts.Search)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if _, err := timeutil.GetLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}

	// Validate provider selection
	switch cfg.Provider.Name {
	case ProviderAmadeus:
		if cfg.Amadeus.APIKey == "" || cfg.Amadeus.APISecret == "" {
			return fmt.Errorf("AMADEUS_API_KEY and AMADEUS_API_SECRET are required when FLIGHT_PROVIDER=%s", ProviderAmadeus)
		}
		if cfg.Amadeus.BaseURL == "" {
			return fmt.Errorf("AMADEUS_BASE_URL must not be empty")
		}
	case ProviderFixture:
		if cfg.Provider.FixturePath == "" {
			return fmt.Errorf("FIXTURE_PATH must not be empty when FLIGHT_PROVIDER=%s", ProviderFixture)
		}
	default:
		return fmt.Errorf("FLIGHT_PROVIDER must be one of: amadeus, fixture; got %q", cfg.Provider.Name)
	}

	if cfg.Amadeus.MaxResults < 1 || cfg.Amadeus.MaxResults > 250 {
		return fmt.Errorf("AMADEUS_MAX_RESULTS must be between 1 and 250, got %d", cfg.Amadeus.MaxResults)
	}

	if cfg.Amadeus.RetryAttempts < 1 || cfg.Amadeus.RetryAttempts > 5 {
		return fmt.Errorf("AMADEUS_RETRY_ATTEMPTS must be between 1 and 5, got %d", cfg.Amadeus.RetryAttempts)
	}
	if cfg.Amadeus.RetryInitialDelay <= 0 {
		return fmt.Errorf("AMADEUS_RETRY_INITIAL_DELAY must be positive")
	}
	if cfg.Amadeus.RetryMaxDelay < cfg.Amadeus.RetryInitialDelay {
		return fmt.Errorf("AMADEUS_RETRY_MAX_DELAY must not be less than AMADEUS_RETRY_INITIAL_DELAY")
	}

	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if cfg.Cache.CleanupInterval <= 0 {
		return fmt.Errorf("CACHE_CLEANUP_INTERVAL must be positive")
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Location returns the timezone used to read offer hours.
// It falls back to time.Local if the configured zone cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := timeutil.GetLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
