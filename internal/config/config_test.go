package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwise/flight-offers/internal/infrastructure/retry"
)

var configEnvVars = []string{
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
	"TIMEOUT_SEARCH", "TIMEOUT_PROVIDER",
	"LOG_LEVEL", "LOG_FORMAT",
	"APP_ENV", "APP_TIMEZONE",
	"FLIGHT_PROVIDER", "FIXTURE_PATH",
	"AMADEUS_BASE_URL", "AMADEUS_API_KEY", "AMADEUS_API_SECRET",
	"AMADEUS_MAX_RESULTS", "AMADEUS_CURRENCY",
	"AMADEUS_RETRY_ATTEMPTS", "AMADEUS_RETRY_INITIAL_DELAY", "AMADEUS_RETRY_MAX_DELAY",
	"CACHE_TTL", "CACHE_CLEANUP_INTERVAL",
}

// withEnv unsets every config variable for the test, then applies vars.
// Original values are restored on cleanup.
func withEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range configEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// amadeusEnv selects the amadeus provider with credentials, plus extra.
func amadeusEnv(extra map[string]string) map[string]string {
	vars := map[string]string{
		"FLIGHT_PROVIDER":    ProviderAmadeus,
		"AMADEUS_API_KEY":    "key",
		"AMADEUS_API_SECRET": "secret",
	}
	for k, v := range extra {
		vars[k] = v
	}
	return vars
}

func TestLoad_Defaults(t *testing.T) {
	withEnv(t, nil)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ServerConfig{Port: 8080, ReadTimeout: 10 * time.Second, WriteTimeout: 10 * time.Second}, cfg.Server)
	assert.Equal(t, TimeoutConfig{Search: 10 * time.Second, Provider: 4 * time.Second}, cfg.Timeouts)
	assert.Equal(t, LoggingConfig{Level: "info", Format: "json"}, cfg.Logging)
	assert.Equal(t, AppConfig{Env: "development", Timezone: "Local"}, cfg.App)
	assert.Equal(t, ProviderConfig{Name: ProviderFixture, FixturePath: "docs/response-mock/flight_offers.json"}, cfg.Provider)
	assert.Equal(t, AmadeusConfig{
		BaseURL:           "https://test.api.amadeus.com",
		MaxResults:        50,
		Currency:          "USD",
		RetryAttempts:     3,
		RetryInitialDelay: 200 * time.Millisecond,
		RetryMaxDelay:     5 * time.Second,
	}, cfg.Amadeus)
	assert.Equal(t, CacheConfig{TTL: 5 * time.Minute, CleanupInterval: 10 * time.Minute}, cfg.Cache)
}

func TestLoad_AmadeusProvider(t *testing.T) {
	withEnv(t, amadeusEnv(map[string]string{
		"AMADEUS_BASE_URL":            "https://api.amadeus.com",
		"AMADEUS_MAX_RESULTS":         "25",
		"AMADEUS_CURRENCY":            "EUR",
		"AMADEUS_RETRY_ATTEMPTS":      "4",
		"AMADEUS_RETRY_INITIAL_DELAY": "100ms",
		"AMADEUS_RETRY_MAX_DELAY":     "1s",
		"TIMEOUT_PROVIDER":            "3s",
		"TIMEOUT_SEARCH":              "20s",
	}))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderAmadeus, cfg.Provider.Name)
	assert.Equal(t, "https://api.amadeus.com", cfg.Amadeus.BaseURL)
	assert.Equal(t, "key", cfg.Amadeus.APIKey)
	assert.Equal(t, "secret", cfg.Amadeus.APISecret)
	assert.Equal(t, 25, cfg.Amadeus.MaxResults)
	assert.Equal(t, "EUR", cfg.Amadeus.Currency)
	assert.Equal(t, 3*time.Second, cfg.Timeouts.Provider)
	assert.Equal(t, 20*time.Second, cfg.Timeouts.Search)

	policy := cfg.Amadeus.RetryPolicy()
	assert.Equal(t, 4, policy.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, policy.InitialDelay)
	assert.Equal(t, time.Second, policy.MaxDelay)
	assert.Equal(t, retry.ProviderConfig.Multiplier, policy.Multiplier)
	require.NotNil(t, policy.RetryIf)
	assert.False(t, policy.RetryIf(retry.NewPermanent(assert.AnError)), "rejected searches are not retried")
}

func TestLoad_FixtureAndCache(t *testing.T) {
	withEnv(t, map[string]string{
		"FIXTURE_PATH":           "/srv/offers.json",
		"CACHE_TTL":              "90s",
		"CACHE_CLEANUP_INTERVAL": "3m",
		"APP_TIMEZONE":           "America/New_York",
		"LOG_FORMAT":             "console",
		"APP_ENV":                "staging",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderFixture, cfg.Provider.Name)
	assert.Equal(t, "/srv/offers.json", cfg.Provider.FixturePath)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 3*time.Minute, cfg.Cache.CleanupInterval)
	assert.Equal(t, "America/New_York", cfg.Location().String())
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{name: "port too low", vars: map[string]string{"SERVER_PORT": "0"}, wantErr: "SERVER_PORT"},
		{name: "port too high", vars: map[string]string{"SERVER_PORT": "70000"}, wantErr: "SERVER_PORT"},
		{name: "zero read timeout", vars: map[string]string{"SERVER_READ_TIMEOUT": "0s"}, wantErr: "SERVER_READ_TIMEOUT"},
		{name: "zero write timeout", vars: map[string]string{"SERVER_WRITE_TIMEOUT": "0s"}, wantErr: "SERVER_WRITE_TIMEOUT"},
		{name: "zero search timeout", vars: map[string]string{"TIMEOUT_SEARCH": "0s"}, wantErr: "TIMEOUT_SEARCH"},
		{name: "zero provider timeout", vars: map[string]string{"TIMEOUT_PROVIDER": "0s"}, wantErr: "TIMEOUT_PROVIDER"},
		{
			name:    "provider attempt longer than search",
			vars:    map[string]string{"TIMEOUT_PROVIDER": "10s", "TIMEOUT_SEARCH": "5s"},
			wantErr: "should be less than TIMEOUT_SEARCH",
		},
		{name: "unknown log level", vars: map[string]string{"LOG_LEVEL": "trace"}, wantErr: "LOG_LEVEL"},
		{name: "unknown log format", vars: map[string]string{"LOG_FORMAT": "xml"}, wantErr: "LOG_FORMAT"},
		{name: "unknown environment", vars: map[string]string{"APP_ENV": "qa"}, wantErr: "APP_ENV"},
		{name: "unknown timezone", vars: map[string]string{"APP_TIMEZONE": "Atlantis/Lost"}, wantErr: "APP_TIMEZONE"},
		{name: "unknown provider", vars: map[string]string{"FLIGHT_PROVIDER": "sabre"}, wantErr: "FLIGHT_PROVIDER"},
		{
			name:    "amadeus without secret",
			vars:    map[string]string{"FLIGHT_PROVIDER": ProviderAmadeus, "AMADEUS_API_KEY": "key"},
			wantErr: "AMADEUS_API_KEY and AMADEUS_API_SECRET",
		},
		{name: "too many results", vars: amadeusEnv(map[string]string{"AMADEUS_MAX_RESULTS": "251"}), wantErr: "AMADEUS_MAX_RESULTS"},
		{name: "no retry attempts", vars: amadeusEnv(map[string]string{"AMADEUS_RETRY_ATTEMPTS": "0"}), wantErr: "AMADEUS_RETRY_ATTEMPTS"},
		{name: "too many retry attempts", vars: amadeusEnv(map[string]string{"AMADEUS_RETRY_ATTEMPTS": "6"}), wantErr: "AMADEUS_RETRY_ATTEMPTS"},
		{name: "zero retry delay", vars: map[string]string{"AMADEUS_RETRY_INITIAL_DELAY": "0s"}, wantErr: "AMADEUS_RETRY_INITIAL_DELAY"},
		{
			name:    "retry cap below initial delay",
			vars:    map[string]string{"AMADEUS_RETRY_INITIAL_DELAY": "2s", "AMADEUS_RETRY_MAX_DELAY": "1s"},
			wantErr: "AMADEUS_RETRY_MAX_DELAY",
		},
		{name: "zero cache ttl", vars: map[string]string{"CACHE_TTL": "0s"}, wantErr: "CACHE_TTL"},
		{name: "zero cache cleanup", vars: map[string]string{"CACHE_CLEANUP_INTERVAL": "0s"}, wantErr: "CACHE_CLEANUP_INTERVAL"},
		{name: "malformed duration", vars: map[string]string{"CACHE_TTL": "soon"}, wantErr: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, tt.vars)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FixtureNeedsNoCredentials(t *testing.T) {
	withEnv(t, map[string]string{"FLIGHT_PROVIDER": ProviderFixture})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Amadeus.APIKey)
}

func TestMustLoad(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		withEnv(t, nil)
		assert.NotPanics(t, func() { MustLoad() })
	})

	t.Run("invalid", func(t *testing.T) {
		withEnv(t, map[string]string{"FLIGHT_PROVIDER": "sabre"})
		assert.Panics(t, func() { MustLoad() })
	})
}

func TestConfig_Location(t *testing.T) {
	tests := []struct {
		zone string
		want *time.Location
	}{
		{zone: "UTC", want: time.UTC},
		{zone: "Local", want: time.Local},
		{zone: "Atlantis/Lost", want: time.Local},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			cfg := &Config{App: AppConfig{Timezone: tt.zone}}
			assert.Equal(t, tt.want, cfg.Location())
		})
	}
}

func TestConfig_Environment(t *testing.T) {
	tests := []struct {
		env      string
		wantDev  bool
		wantProd bool
	}{
		{env: "development", wantDev: true},
		{env: "staging"},
		{env: "production", wantProd: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{App: AppConfig{Env: tt.env}}
			assert.Equal(t, tt.wantDev, cfg.IsDevelopment())
			assert.Equal(t, tt.wantProd, cfg.IsProduction())
		})
	}
}
