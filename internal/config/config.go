package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the timeclock application
type Config struct {
	Database    DatabaseConfig
	Application ApplicationConfig
	RateLimit   RateLimitConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string `env:"TIMECLOCK_DB_DIR"`
	Filename       string `env:"TIMECLOCK_DB_FILENAME"`
	DirPermissions uint32 `env:"TIMECLOCK_DB_DIR_PERMISSIONS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout   time.Duration `env:"TIMECLOCK_APP_TIMEOUT"`
	CompanyID int64         `env:"TIMECLOCK_COMPANY_ID"`
	ActorID   int64         `env:"TIMECLOCK_ACTOR_ID"`
}

// RateLimitConfig holds entry submission throttling configuration
type RateLimitConfig struct {
	Enabled     bool          `env:"TIMECLOCK_RATELIMIT_ENABLED"`
	Window      time.Duration `env:"TIMECLOCK_RATELIMIT_WINDOW"`
	MaxAttempts int           `env:"TIMECLOCK_RATELIMIT_MAX"`
	StorePath   string        `env:"TIMECLOCK_RATELIMIT_STORE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".timeclock")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "timeclock.db",
			DirPermissions: 0755,
		},
		Application: ApplicationConfig{
			Timeout:   60 * time.Second,
			CompanyID: 1,
			ActorID:   1,
		},
		RateLimit: RateLimitConfig{
			Enabled:     true,
			Window:      15 * time.Minute,
			MaxAttempts: 5,
			StorePath:   "", // in-process store
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TIMECLOCK_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TIMECLOCK_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if perms := os.Getenv("TIMECLOCK_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	if timeout := os.Getenv("TIMECLOCK_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if companyID := os.Getenv("TIMECLOCK_COMPANY_ID"); companyID != "" {
		if id, err := strconv.ParseInt(companyID, 10, 64); err == nil {
			c.Application.CompanyID = id
		}
	}
	if actorID := os.Getenv("TIMECLOCK_ACTOR_ID"); actorID != "" {
		if id, err := strconv.ParseInt(actorID, 10, 64); err == nil {
			c.Application.ActorID = id
		}
	}

	if enabled := os.Getenv("TIMECLOCK_RATELIMIT_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			c.RateLimit.Enabled = b
		}
	}
	if window := os.Getenv("TIMECLOCK_RATELIMIT_WINDOW"); window != "" {
		if d, err := time.ParseDuration(window); err == nil {
			c.RateLimit.Window = d
		}
	}
	if max := os.Getenv("TIMECLOCK_RATELIMIT_MAX"); max != "" {
		if n, err := strconv.Atoi(max); err == nil {
			c.RateLimit.MaxAttempts = n
		}
	}
	if path := os.Getenv("TIMECLOCK_RATELIMIT_STORE"); path != "" {
		c.RateLimit.StorePath = path
	}

	return nil
}

// Validate checks the configuration for inconsistent values
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return fmt.Errorf("database directory must not be empty")
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename must not be empty")
	}
	if c.Application.Timeout <= 0 {
		return fmt.Errorf("application timeout must be positive, got %v", c.Application.Timeout)
	}
	if c.Application.CompanyID <= 0 {
		return fmt.Errorf("company ID must be positive, got %d", c.Application.CompanyID)
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate limit window must be positive, got %v", c.RateLimit.Window)
		}
		if c.RateLimit.MaxAttempts <= 0 {
			return fmt.Errorf("rate limit max attempts must be positive, got %d", c.RateLimit.MaxAttempts)
		}
	}
	return nil
}
