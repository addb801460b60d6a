// Package config loads process configuration from DECKBUILDER_* environment variables
package config

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

// Log levels accepted by LogLevel
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config is everything cmd/server needs to wire the process
type Config struct {
	GRPCPort int    `env:"DECKBUILDER_GRPC_PORT" envDefault:"50051"`
	HTTPAddr string `env:"DECKBUILDER_HTTP_ADDR" envDefault:":8080"`

	RedisAddr    string `env:"DECKBUILDER_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisTLS     bool   `env:"DECKBUILDER_REDIS_TLS"`
	RedisPool    int    `env:"DECKBUILDER_REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdle int    `env:"DECKBUILDER_REDIS_MIN_IDLE" envDefault:"2"`

	// CatalogURL wins over CatalogFile when both are set
	CatalogURL      string        `env:"DECKBUILDER_CATALOG_URL"`
	CatalogFile     string        `env:"DECKBUILDER_CATALOG_FILE"`
	CatalogCacheTTL time.Duration `env:"DECKBUILDER_CATALOG_CACHE_TTL" envDefault:"5m"`

	PublicBaseURL string `env:"DECKBUILDER_PUBLIC_BASE_URL"`
	LogLevel      string `env:"DECKBUILDER_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Validate checks ranges and that a card catalog source is configured
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		vb.Field("DECKBUILDER_GRPC_PORT", "must be between 1 and 65535")
	}
	errors.ValidateRequired("DECKBUILDER_HTTP_ADDR", c.HTTPAddr, vb)
	errors.ValidateRequired("DECKBUILDER_REDIS_ADDR", c.RedisAddr, vb)
	if c.RedisPool < 1 {
		vb.Field("DECKBUILDER_REDIS_POOL_SIZE", "must be positive")
	}
	if c.CatalogURL == "" && c.CatalogFile == "" {
		vb.Field("DECKBUILDER_CATALOG_URL", "or DECKBUILDER_CATALOG_FILE is required")
	}
	if c.CatalogURL != "" {
		if u, err := url.Parse(c.CatalogURL); err != nil || u.Scheme == "" || u.Host == "" {
			vb.Field("DECKBUILDER_CATALOG_URL", "must be an absolute URL")
		}
	}
	if c.CatalogCacheTTL < 0 {
		vb.Field("DECKBUILDER_CATALOG_CACHE_TTL", "must not be negative")
	}
	errors.ValidateOneOf("DECKBUILDER_LOG_LEVEL", strings.ToLower(c.LogLevel),
		[]string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}, vb)

	return vb.Build()
}

// SlogLevel maps LogLevel onto slog. Unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
