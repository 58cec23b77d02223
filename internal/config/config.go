package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Env   string `envconfig:"APP_ENV" default:"development"`
	Port  int    `envconfig:"APP_PORT" default:"8080"`
	DB    DBConfig
	Redis RedisConfig
	CORS  CORSConfig
	Chaos ChaosConfig
	Audit AuditConfig
}

// database configuration
type DBConfig struct {
	DSN          string        `envconfig:"DATABASE_URL" required:"true"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxConnLife  time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// redis configuration (cache + change feed)
type RedisConfig struct {
	URL      string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"30s"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// ChaosConfig tunes the simulated network layer. Defaults mirror the rates
// the UI was built against: 200-1200ms latency, 8% synthetic errors and an
// extra 10% failure on reorder.
type ChaosConfig struct {
	Enabled         bool          `envconfig:"CHAOS_ENABLED" default:"true"`
	MinDelay        time.Duration `envconfig:"CHAOS_MIN_DELAY" default:"200ms"`
	MaxDelay        time.Duration `envconfig:"CHAOS_MAX_DELAY" default:"1200ms"`
	ErrorRate       float64       `envconfig:"CHAOS_ERROR_RATE" default:"0.08"`
	ReorderFailRate float64       `envconfig:"CHAOS_REORDER_FAIL_RATE" default:"0.10"`
}

// AuditConfig controls the periodic stage/timeline consistency sweep.
type AuditConfig struct {
	Enabled  bool          `envconfig:"AUDIT_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"AUDIT_INTERVAL" default:"5m"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1")
	}
	if c.Chaos.ErrorRate < 0 || c.Chaos.ErrorRate > 1 {
		return fmt.Errorf("CHAOS_ERROR_RATE must be between 0 and 1")
	}
	if c.Chaos.ReorderFailRate < 0 || c.Chaos.ReorderFailRate > 1 {
		return fmt.Errorf("CHAOS_REORDER_FAIL_RATE must be between 0 and 1")
	}
	if c.Chaos.MinDelay < 0 || c.Chaos.MaxDelay < c.Chaos.MinDelay {
		return fmt.Errorf("chaos delay window is invalid: min=%s max=%s", c.Chaos.MinDelay, c.Chaos.MaxDelay)
	}
	if c.Audit.Interval < time.Second {
		return fmt.Errorf("AUDIT_INTERVAL must be at least 1s")
	}
	if len(c.CORS.TrustedOrigins) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins.
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
