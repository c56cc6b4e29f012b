// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// the server, the generative delegate and the matching thresholds.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir string // Data directory for the SQLite response cache

	// Delegate Configuration (local LM Studio backend)
	Delegate DelegateConfig

	// Conversation Configuration
	HistoryWindow int     // Turns of history sent to the delegate (default: 8)
	HistoryMaxLen int     // Per-turn truncation in runes (default: 200)
	MessageMaxLen int     // Maximum accepted message length (default: 1000)
	GlobalRateRPS float64 // Global rate limit in requests per second

	// Matching thresholds (0-100 fuzzy scores)
	Thresholds Thresholds

	// Observability
	SentryDSN         string
	SentryEnvironment string
	SentryRelease     string
	SentrySampleRate  float64
	BetterstackToken  string

	// Metrics Authentication
	MetricsUsername string // Username for /metrics endpoint Basic Auth (default: "prometheus")
	MetricsPassword string // Password for /metrics endpoint Basic Auth (empty = no auth)
}

// DelegateConfig holds the generative backend configuration.
type DelegateConfig struct {
	BaseURL    string        // OpenAI-compatible base URL (default: local LM Studio)
	Model      string        // Model identifier (default: "local-model")
	Timeout    time.Duration // Per-request timeout
	MaxRetries int           // Attempts per endpoint (default: 3)
	RetryDelay time.Duration // Initial backoff delay

	// Optional hosted fallback, used only after the local chain fails.
	GeminiAPIKey string
	GeminiModel  string
}

// Thresholds holds the fuzzy-match cutoffs used across classification and
// entity resolution. All values are on the 0-100 similarity scale.
type Thresholds struct {
	Scope   int // Token-set score for the in-scope gate (default: 55)
	Ratio   int // Plain ratio for name matching with context (default: 60)
	Partial int // Partial ratio for name matching (default: 70)
	Name    int // Full-name match cutoff (default: 75)
	Typo    int // Single-token typo correction (default: 85)

	// Location scoring boosts.
	QualifierBoost int // Unique qualifier token bonus (default: 50)
	DigitBoost     int // Digit-bearing token bonus (default: 10)
}

// DefaultThresholds returns the tuned cutoffs used when no overrides
// are set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Scope:          55,
		Ratio:          60,
		Partial:        70,
		Name:           75,
		Typo:           85,
		QualifierBoost: 50,
		DigitBoost:     10,
	}
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	defaults := DefaultThresholds()

	cfg := &Config{
		Port:            getEnv(EnvPort, "10000"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, 30*time.Second),

		DataDir: getEnv(EnvDataDir, getDefaultDataDir()),

		Delegate: DelegateConfig{
			BaseURL:      getEnv(EnvDelegateBaseURL, "http://localhost:1234/v1/"),
			Model:        getEnv(EnvDelegateModel, "local-model"),
			Timeout:      getDurationEnv(EnvDelegateTimeout, DelegateRequest),
			MaxRetries:   getIntEnv(EnvDelegateRetries, 3),
			RetryDelay:   getDurationEnv(EnvDelegateDelay, DelegateRetryInitial),
			GeminiAPIKey: getEnv(EnvGeminiAPIKey, ""),
			GeminiModel:  getEnv(EnvGeminiModel, "gemini-2.5-flash-lite"),
		},

		HistoryWindow: getIntEnv(EnvHistoryWindow, 8),
		HistoryMaxLen: getIntEnv(EnvHistoryMaxLen, 200),
		MessageMaxLen: getIntEnv(EnvMessageMaxLen, 1000),
		GlobalRateRPS: getFloatEnv(EnvGlobalRateRPS, 100.0),

		Thresholds: Thresholds{
			Scope:          getIntEnv(EnvScopeThreshold, defaults.Scope),
			Ratio:          getIntEnv(EnvRatioThreshold, defaults.Ratio),
			Partial:        getIntEnv(EnvPartialThreshold, defaults.Partial),
			Name:           getIntEnv(EnvNameThreshold, defaults.Name),
			Typo:           getIntEnv(EnvTypoThreshold, defaults.Typo),
			QualifierBoost: defaults.QualifierBoost,
			DigitBoost:     defaults.DigitBoost,
		},

		SentryDSN:         getEnv(EnvSentryDSN, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentryRelease:     getEnv(EnvSentryRelease, ""),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),
		BetterstackToken:  getEnv(EnvBetterStackToken, ""),

		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New(EnvPort+" is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New(EnvDataDir+" is required"))
	}
	if c.Delegate.BaseURL == "" {
		errs = append(errs, errors.New(EnvDelegateBaseURL+" is required"))
	}
	if c.Delegate.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvDelegateTimeout, c.Delegate.Timeout))
	}
	if c.Delegate.MaxRetries < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", EnvDelegateRetries, c.Delegate.MaxRetries))
	}
	if c.HistoryWindow < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %d", EnvHistoryWindow, c.HistoryWindow))
	}
	if err := c.Thresholds.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("thresholds: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Validate checks the threshold values are on the 0-100 scale.
func (t *Thresholds) Validate() error {
	var errs []error
	check := func(name string, v int) {
		if v < 0 || v > 100 {
			errs = append(errs, fmt.Errorf("%s must be in [0,100], got %d", name, v))
		}
	}
	check("scope", t.Scope)
	check("ratio", t.Ratio)
	check("partial", t.Partial)
	check("name", t.Name)
	check("typo", t.Typo)
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getDefaultDataDir returns platform-specific default data directory
func getDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		return "./data"
	}
	return "/data"
}

// SQLitePath returns the full path to the SQLite cache database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "cache.db")
}

// HasFallbackProvider returns true if a hosted fallback is configured.
func (c *Config) HasFallbackProvider() bool {
	return c.Delegate.GeminiAPIKey != ""
}
