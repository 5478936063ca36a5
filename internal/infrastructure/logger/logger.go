// Package logger provides structured logging for the offer service using zerolog.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultServiceName tags every entry unless Config.ServiceName overrides it.
const DefaultServiceName = "flight-offers"

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Format is json or console
	Format string

	// EnableCaller adds file:line to entries
	EnableCaller bool

	ServiceName string
}

// Logger wraps zerolog.Logger with helpers for search and provider events.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to output. An unknown level falls back to info.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	writer := output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	zctx := zerolog.New(writer).Level(level).With().Timestamp().Str("service", cfg.ServiceName)
	if cfg.EnableCaller {
		zctx = zctx.Caller()
	}

	return &Logger{Logger: zctx.Logger()}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithProvider tags entries with the flight offer provider name.
func (l *Logger) WithProvider(provider string) *Logger {
	return &Logger{Logger: l.With().Str("provider", provider).Logger()}
}

// WithSearch tags entries with the searched route and departure date.
func (l *Logger) WithSearch(origin, destination, departureDate string) *Logger {
	return &Logger{Logger: l.With().
		Str("origin", origin).
		Str("destination", destination).
		Str("departure_date", departureDate).
		Logger()}
}

// SearchSummary is the outcome of one filtered and sorted offer search.
type SearchSummary struct {
	Total       int
	Filtered    int
	ActiveCount int
	SortBy      string
	CacheHit    bool
}

// SearchCompleted logs s at debug level.
func (l *Logger) SearchCompleted(s SearchSummary) {
	l.Debug().
		Int("total", s.Total).
		Int("filtered", s.Filtered).
		Int("active_filters", s.ActiveCount).
		Str("sort", s.SortBy).
		Bool("cache_hit", s.CacheHit).
		Msg("offer search completed")
}

// ProviderFailed logs a failed provider call and how long it ran.
func (l *Logger) ProviderFailed(err error, elapsed time.Duration) {
	l.Warn().Err(err).Dur("elapsed", elapsed).Msg("provider search failed")
}

// RetryScheduled logs a provider request that will be attempted again after delay.
func (l *Logger) RetryScheduled(attempt int, err error, delay time.Duration) {
	l.Warn().Err(err).Int("attempt", attempt).Dur("backoff", delay).Msg("retrying provider request")
}

// OffersReceived logs how many raw offers a provider returned and how many survived normalization.
func (l *Logger) OffersReceived(received, normalized int) {
	dropped := received - normalized
	level := zerolog.DebugLevel
	if dropped > 0 {
		level = zerolog.InfoLevel
	}
	l.WithLevel(level).
		Int("received", received).
		Int("normalized", normalized).
		Int("dropped", dropped).
		Msg("provider offers received")
}
