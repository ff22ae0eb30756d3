package config

import (
	"errors"
	"sync"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	AppPort               int    `mapstructure:"APP_PORT"`
	BcryptCost            int    `mapstructure:"BCRYPT_COST"`
	LoginRatePerMin       int    `mapstructure:"LOGIN_RATE_PER_MIN"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	LogFormat             string `mapstructure:"LOG_FORMAT"`
	MongoURI              string `mapstructure:"MONGO_URI"`
	MongoDBName           string `mapstructure:"MONGO_DB_NAME"`
	JWTSecret             string `mapstructure:"JWT_SECRET"`
	JWTAlgorithm          string `mapstructure:"JWT_ALGORITHM"`
	TokenTTLMinutes       int    `mapstructure:"TOKEN_TTL_MINUTES"`
	NewsAPIKey            string `mapstructure:"NEWS_API_KEY"`
	NewsAPIBaseURL        string `mapstructure:"NEWS_API_BASE_URL"`
	UpstreamTimeoutSec    int    `mapstructure:"UPSTREAM_TIMEOUT_SEC"`
	UpstreamRetryMax      int    `mapstructure:"UPSTREAM_RETRY_MAX"`
	RequestLoggingEnabled bool   `mapstructure:"REQUEST_LOGGING_ENABLED"`
	RouteMetricsEnabled   bool   `mapstructure:"ROUTE_METRICS_ENABLED"`
}

var (
	cachedConfig *Config
	configMutex  sync.RWMutex
)

// Validation errors returned by Config.Validate.
var (
	ErrAppPortRange            = errors.New("APP_PORT must be between 1 and 65535")
	ErrBcryptCostRange         = errors.New("BCRYPT_COST must be between 10 and 16")
	ErrLoginRatePerMin         = errors.New("LOGIN_RATE_PER_MIN must be greater than or equal to 1")
	ErrLogLevelEmpty           = errors.New("LOG_LEVEL cannot be empty")
	ErrLogFormatEmpty          = errors.New("LOG_FORMAT cannot be empty")
	ErrMongoURIEmpty           = errors.New("MONGO_URI cannot be empty")
	ErrMongoDBNameEmpty        = errors.New("MONGO_DB_NAME cannot be empty")
	ErrJWTSecretRequired       = errors.New("JWT_SECRET cannot be empty")
	ErrJWTSecretTooShort       = errors.New("JWT_SECRET must be at least 32 characters for HS256")
	ErrJWTAlgorithmUnsupported = errors.New("JWT_ALGORITHM must be HS256")
	ErrTokenTTLRange           = errors.New("TOKEN_TTL_MINUTES must be greater than 0")
	ErrNewsAPIKeyRequired      = errors.New("NEWS_API_KEY cannot be empty")
	ErrNewsAPIBaseURLEmpty     = errors.New("NEWS_API_BASE_URL cannot be empty")
	ErrUpstreamTimeoutRange    = errors.New("UPSTREAM_TIMEOUT_SEC must be greater than 0")
	ErrUpstreamRetryMaxRange   = errors.New("UPSTREAM_RETRY_MAX must be greater than or equal to 1")
)

// Load loads configuration from environment variables and a .env file.
// It caches the result for subsequent calls.
func Load() (Config, error) {
	configMutex.RLock()
	if cachedConfig != nil {
		defer configMutex.RUnlock()
		return *cachedConfig, nil
	}
	configMutex.RUnlock()

	configMutex.Lock()
	defer configMutex.Unlock()

	// Double-check in case another goroutine loaded it while we waited for the lock
	if cachedConfig != nil {
		return *cachedConfig, nil
	}

	v := viper.New()

	v.SetDefault("APP_PORT", 8080)
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("LOGIN_RATE_PER_MIN", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("MONGO_URI", "mongodb://mongo:27017")
	v.SetDefault("MONGO_DB_NAME", "newsmark")
	v.SetDefault("JWT_SECRET", "this-is-a-default-jwt-secret-key-with-32-plus-characters")
	v.SetDefault("JWT_ALGORITHM", "HS256")
	v.SetDefault("TOKEN_TTL_MINUTES", 60)
	v.SetDefault("NEWS_API_BASE_URL", "https://gnews.io/api/v4")
	v.SetDefault("UPSTREAM_TIMEOUT_SEC", 15)
	v.SetDefault("UPSTREAM_RETRY_MAX", 3)
	v.SetDefault("REQUEST_LOGGING_ENABLED", true)
	v.SetDefault("ROUTE_METRICS_ENABLED", true)

	// Configure Viper to read from .env file (if present)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// Try to read .env file (it's okay if it doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	// Override with OS environment variables
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cachedConfig = &cfg

	return cfg, nil
}

// ResetCache clears the cached configuration (for testing purposes)
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()
	cachedConfig = nil
}

// Validate checks if required configuration fields are properly set
func (c Config) Validate() error {
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return ErrAppPortRange
	}
	if c.BcryptCost < 10 || c.BcryptCost > 16 {
		return ErrBcryptCostRange
	}
	if c.LoginRatePerMin < 1 {
		return ErrLoginRatePerMin
	}
	if c.LogLevel == "" {
		return ErrLogLevelEmpty
	}
	if c.LogFormat == "" {
		return ErrLogFormatEmpty
	}
	if c.MongoURI == "" {
		return ErrMongoURIEmpty
	}
	if c.MongoDBName == "" {
		return ErrMongoDBNameEmpty
	}
	if c.JWTSecret == "" {
		return ErrJWTSecretRequired
	}
	switch c.JWTAlgorithm {
	case "HS256":
		if len(c.JWTSecret) < 32 {
			return ErrJWTSecretTooShort
		}
	default:
		return ErrJWTAlgorithmUnsupported
	}
	if c.TokenTTLMinutes <= 0 {
		return ErrTokenTTLRange
	}
	// The proxy is useless without an upstream key, so refuse to boot without one.
	if c.NewsAPIKey == "" {
		return ErrNewsAPIKeyRequired
	}
	if c.NewsAPIBaseURL == "" {
		return ErrNewsAPIBaseURLEmpty
	}
	if c.UpstreamTimeoutSec <= 0 {
		return ErrUpstreamTimeoutRange
	}
	if c.UpstreamRetryMax < 1 {
		return ErrUpstreamRetryMaxRange
	}
	return nil
}
