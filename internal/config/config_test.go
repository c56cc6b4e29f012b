package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvDataDir, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:1234/v1/", cfg.Delegate.BaseURL)
	assert.Equal(t, 3, cfg.Delegate.MaxRetries)
	assert.Equal(t, DelegateRequest, cfg.Delegate.Timeout)
	assert.Equal(t, 8, cfg.HistoryWindow)
	assert.Equal(t, 200, cfg.HistoryMaxLen)

	assert.Equal(t, 55, cfg.Thresholds.Scope)
	assert.Equal(t, 60, cfg.Thresholds.Ratio)
	assert.Equal(t, 70, cfg.Thresholds.Partial)
	assert.Equal(t, 75, cfg.Thresholds.Name)
	assert.Equal(t, 85, cfg.Thresholds.Typo)
	assert.Equal(t, 50, cfg.Thresholds.QualifierBoost)
	assert.Equal(t, 10, cfg.Thresholds.DigitBoost)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(EnvDataDir, t.TempDir())
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvDelegateTimeout, "15s")
	t.Setenv(EnvDelegateRetries, "5")
	t.Setenv(EnvScopeThreshold, "40")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.Delegate.Timeout)
	assert.Equal(t, 5, cfg.Delegate.MaxRetries)
	assert.Equal(t, 40, cfg.Thresholds.Scope)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(*Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing data dir", func(c *Config) { c.DataDir = "" }, true},
		{"Zero retries", func(c *Config) { c.Delegate.MaxRetries = 0 }, true},
		{"Negative timeout", func(c *Config) { c.Delegate.Timeout = -time.Second }, true},
		{"Threshold out of range", func(c *Config) { c.Thresholds.Typo = 150 }, true},
		{"Negative history window", func(c *Config) { c.HistoryWindow = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:    "10000",
				DataDir: "/data",
				Delegate: DelegateConfig{
					BaseURL:    "http://localhost:1234/v1/",
					Timeout:    DelegateRequest,
					MaxRetries: 3,
					RetryDelay: time.Second,
				},
				HistoryWindow: 8,
				Thresholds: Thresholds{
					Scope: 55, Ratio: 60, Partial: 70, Name: 75, Typo: 85,
					QualifierBoost: 50, DigitBoost: 10,
				},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSQLitePath(t *testing.T) {
	cfg := &Config{DataDir: "/data"}
	assert.Equal(t, "/data/cache.db", cfg.SQLitePath())
}
