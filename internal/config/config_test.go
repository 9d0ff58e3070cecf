package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "timeclock.db", cfg.Database.Filename)
	assert.Equal(t, int64(1), cfg.Application.CompanyID)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 5, cfg.RateLimit.MaxAttempts)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TIMECLOCK_DB_DIR", "/tmp/timeclock-test")
	t.Setenv("TIMECLOCK_COMPANY_ID", "42")
	t.Setenv("TIMECLOCK_RATELIMIT_WINDOW", "5m")
	t.Setenv("TIMECLOCK_RATELIMIT_MAX", "10")
	t.Setenv("TIMECLOCK_RATELIMIT_ENABLED", "false")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/timeclock-test", cfg.Database.Dir)
	assert.Equal(t, int64(42), cfg.Application.CompanyID)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 10, cfg.RateLimit.MaxAttempts)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestConfig_LoadFromEnvironment_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("TIMECLOCK_COMPANY_ID", "not-a-number")
	t.Setenv("TIMECLOCK_RATELIMIT_WINDOW", "soon")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, int64(1), cfg.Application.CompanyID)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty db dir", func(c *Config) { c.Database.Dir = "" }},
		{"empty db filename", func(c *Config) { c.Database.Filename = "" }},
		{"zero timeout", func(c *Config) { c.Application.Timeout = 0 }},
		{"zero company", func(c *Config) { c.Application.CompanyID = 0 }},
		{"zero rate limit window", func(c *Config) { c.RateLimit.Window = 0 }},
		{"zero rate limit budget", func(c *Config) { c.RateLimit.MaxAttempts = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_RateLimitOffSkipsPolicy(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.Window = 0
	cfg.RateLimit.MaxAttempts = 0

	assert.NoError(t, cfg.Validate())
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	require.NoError(t, err)
	defer repo.Close()
}
