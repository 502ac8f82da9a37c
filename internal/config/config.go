// Package config loads server settings from the environment. A .env file in
// the working directory is read first when present; real environment
// variables win over it.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-session-api/internal/engine"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
)

// Storage backends
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds all configuration for the server
type Config struct {
	GRPCPort    int `env:"GRPC_PORT" envDefault:"50051"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9090"`

	// Backend selects where sessions and history live
	Backend string `env:"SESSION_BACKEND" envDefault:"redis"`

	Redis RedisConfig `envPrefix:"REDIS_"`
	DND5E DND5EConfig `envPrefix:"DND5E_"`

	MaxRetries   int    `env:"SESSION_MAX_RETRIES" envDefault:"3"`
	DefeatPolicy string `env:"SESSION_DEFEAT_POLICY" envDefault:"keep"`

	// SessionTTL expires idle sessions in Redis, 0 disables
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"0s"`

	// DiceSeed makes every roll reproducible when non-zero
	DiceSeed uint64 `env:"DICE_SEED" envDefault:"0"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	// Addrs with more than one entry selects cluster mode
	Addrs           []string      `env:"ADDRS" envDefault:"localhost:6379" envSeparator:","`
	PoolSize        int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns    int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	ConnMaxIdleTime time.Duration `env:"CONN_MAX_IDLE_TIME" envDefault:"5m"`
	MaxRetries      int           `env:"MAX_RETRIES" envDefault:"3"`
	UseTLS          bool          `env:"USE_TLS" envDefault:"false"`
}

// DND5EConfig holds settings for the SRD monster template client
type DND5EConfig struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	BaseURL  string        `env:"BASE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"24h"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Load reads an optional .env file, then parses the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to read .env file", "error", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("METRICS_PORT", c.MetricsPort, 0, 65535, vb)
	if c.MetricsPort != 0 && c.MetricsPort == c.GRPCPort {
		vb.Field("METRICS_PORT", "must differ from GRPC_PORT")
	}

	switch c.Backend {
	case BackendRedis:
		if len(c.Redis.Addrs) == 0 {
			vb.RequiredField("REDIS_ADDRS")
		}
	case BackendMemory:
	default:
		vb.Fieldf("SESSION_BACKEND", "must be %q or %q, got %q", BackendRedis, BackendMemory, c.Backend)
	}

	if c.MaxRetries < 0 {
		vb.Field("SESSION_MAX_RETRIES", "cannot be negative")
	}
	if !engine.DefeatPolicy(c.DefeatPolicy).Valid() {
		vb.Fieldf("SESSION_DEFEAT_POLICY", "unknown policy %q", c.DefeatPolicy)
	}
	if c.SessionTTL < 0 {
		vb.Field("SESSION_TTL", "cannot be negative")
	}
	if c.DND5E.Enabled && c.DND5E.BaseURL == "" {
		vb.RequiredField("DND5E_BASE_URL")
	}

	return vb.Build()
}
