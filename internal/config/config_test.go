package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// helpers
// -----------------------------------------------------------------------------

// baseValidConfig returns a fully-valid configuration object that callers
// can tweak inside table tests.
func baseValidConfig() Config {
	return Config{
		AppPort:            8080,
		BcryptCost:         12,
		LoginRatePerMin:    10,
		LogLevel:           "info",
		LogFormat:          "json",
		MongoURI:           "mongodb://localhost:27017",
		MongoDBName:        "test",
		JWTSecret:          "this-is-a-super-secret-jwt-key-with-32-plus-chars",
		JWTAlgorithm:       "HS256",
		TokenTTLMinutes:    60,
		NewsAPIKey:         "test-api-key",
		NewsAPIBaseURL:     "https://gnews.io/api/v4",
		UpstreamTimeoutSec: 15,
		UpstreamRetryMax:   3,
	}
}

// clearConfigEnvVars removes every environment variable that the Config loader
// consumes so each test starts with a clean slate.
func clearConfigEnvVars(t *testing.T) {
	t.Helper()

	for _, k := range []string{
		"APP_PORT",
		"BCRYPT_COST",
		"LOGIN_RATE_PER_MIN",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"MONGO_URI",
		"MONGO_DB_NAME",
		"JWT_SECRET",
		"JWT_ALGORITHM",
		"TOKEN_TTL_MINUTES",
		"NEWS_API_KEY",
		"NEWS_API_BASE_URL",
		"UPSTREAM_TIMEOUT_SEC",
		"UPSTREAM_RETRY_MAX",
		"REQUEST_LOGGING_ENABLED",
		"ROUTE_METRICS_ENABLED",
	} {
		if err := os.Unsetenv(k); err != nil {
			t.Logf("warning: failed to unset %s: %v", k, err)
		}
	}
}

func TestConfigLoadDefaults(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()

	t.Setenv("NEWS_API_KEY", "test-api-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.AppPort)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 10, cfg.LoginRatePerMin)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "newsmark", cfg.MongoDBName)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 60, cfg.TokenTTLMinutes)
	assert.Equal(t, "test-api-key", cfg.NewsAPIKey)
	assert.Equal(t, "https://gnews.io/api/v4", cfg.NewsAPIBaseURL)
	assert.Equal(t, 15, cfg.UpstreamTimeoutSec)
	assert.Equal(t, 3, cfg.UpstreamRetryMax)
	assert.True(t, cfg.RequestLoggingEnabled)
	assert.True(t, cfg.RouteMetricsEnabled)
}

func TestConfigLoadWithOverride(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()

	t.Setenv("NEWS_API_KEY", "test-api-key")
	t.Setenv("APP_PORT", "9999")
	t.Setenv("UPSTREAM_TIMEOUT_SEC", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.AppPort)
	assert.Equal(t, 5, cfg.UpstreamTimeoutSec)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "newsmark", cfg.MongoDBName)
}

func TestConfigLoadMissingNewsAPIKey(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, ErrNewsAPIKeyRequired, err)
}

func TestConfigCaching(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()

	t.Setenv("NEWS_API_KEY", "test-api-key")

	cfg1, err := Load()
	require.NoError(t, err)

	// second call should hit the cache
	cfg2, err := Load()
	require.NoError(t, err)

	assert.Equal(t, cfg1, cfg2)
}

func TestConfigRequestLoggingDisabled(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()

	t.Setenv("NEWS_API_KEY", "test-api-key")
	t.Setenv("REQUEST_LOGGING_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.RequestLoggingEnabled)
}

// -----------------------------------------------------------------------------
// Validate() unit tests (table-driven)
// -----------------------------------------------------------------------------

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config) // mutates the baseValidConfig
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			modify: func(*Config) {
				// No-op: baseValidConfig already returns a valid configuration.
			},
		},
		{
			name: "invalid port - zero",
			modify: func(c *Config) {
				c.AppPort = 0
			},
			wantErr: true,
			errMsg:  ErrAppPortRange.Error(),
		},
		{
			name: "invalid port - too high",
			modify: func(c *Config) {
				c.AppPort = 70000
			},
			wantErr: true,
			errMsg:  ErrAppPortRange.Error(),
		},
		{
			name: "bcrypt cost too low",
			modify: func(c *Config) {
				c.BcryptCost = 7
			},
			wantErr: true,
			errMsg:  ErrBcryptCostRange.Error(),
		},
		{
			name: "bcrypt cost too high",
			modify: func(c *Config) {
				c.BcryptCost = 17
			},
			wantErr: true,
			errMsg:  ErrBcryptCostRange.Error(),
		},
		{
			name: "login rate too low",
			modify: func(c *Config) {
				c.LoginRatePerMin = 0
			},
			wantErr: true,
			errMsg:  ErrLoginRatePerMin.Error(),
		},
		{
			name: "empty log level",
			modify: func(c *Config) {
				c.LogLevel = ""
			},
			wantErr: true,
			errMsg:  ErrLogLevelEmpty.Error(),
		},
		{
			name: "empty JWT secret",
			modify: func(c *Config) {
				c.JWTSecret = ""
			},
			wantErr: true,
			errMsg:  ErrJWTSecretRequired.Error(),
		},
		{
			name: "JWT secret too short for HS256",
			modify: func(c *Config) {
				c.JWTSecret = "short"
			},
			wantErr: true,
			errMsg:  ErrJWTSecretTooShort.Error(),
		},
		{
			name: "invalid JWT algorithm",
			modify: func(c *Config) {
				c.JWTAlgorithm = "INVALID"
			},
			wantErr: true,
			errMsg:  ErrJWTAlgorithmUnsupported.Error(),
		},
		{
			name: "zero token TTL",
			modify: func(c *Config) {
				c.TokenTTLMinutes = 0
			},
			wantErr: true,
			errMsg:  ErrTokenTTLRange.Error(),
		},
		{
			name: "missing news API key",
			modify: func(c *Config) {
				c.NewsAPIKey = ""
			},
			wantErr: true,
			errMsg:  ErrNewsAPIKeyRequired.Error(),
		},
		{
			name: "empty news API base URL",
			modify: func(c *Config) {
				c.NewsAPIBaseURL = ""
			},
			wantErr: true,
			errMsg:  ErrNewsAPIBaseURLEmpty.Error(),
		},
		{
			name: "zero upstream timeout",
			modify: func(c *Config) {
				c.UpstreamTimeoutSec = 0
			},
			wantErr: true,
			errMsg:  ErrUpstreamTimeoutRange.Error(),
		},
		{
			name: "zero upstream retry budget",
			modify: func(c *Config) {
				c.UpstreamRetryMax = 0
			},
			wantErr: true,
			errMsg:  ErrUpstreamRetryMaxRange.Error(),
		},
	}

	for _, tt := range tests {
		tt := tt // capture range variable
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseValidConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
