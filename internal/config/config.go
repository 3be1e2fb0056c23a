// Package config loads server settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds everything the CLI needs to build a store, a shuffler and the
// RPC server.
type Config struct {
	Addr   string `env:"GIFTSHUFFLER_ADDR"    envDefault:":8080"`
	Store  string `env:"GIFTSHUFFLER_STORE"   envDefault:"sqlite"`
	DBPath string `env:"GIFTSHUFFLER_DB_PATH" envDefault:"./data/gifts.db"`

	LogLevel  string `env:"LOG_LEVEL"               envDefault:"info"`
	LogFormat string `env:"GIFTSHUFFLER_LOG_FORMAT" envDefault:"text"`

	MaxAttempts      int  `env:"GIFTSHUFFLER_MAX_ATTEMPTS"      envDefault:"1000"`
	FeasibilityCheck bool `env:"GIFTSHUFFLER_FEASIBILITY_CHECK" envDefault:"true"`

	AuthRequired bool          `env:"GIFTSHUFFLER_AUTH_REQUIRED" envDefault:"false"`
	JWTSecret    string        `env:"GIFTSHUFFLER_JWT_SECRET"`
	TokenTTL     time.Duration `env:"GIFTSHUFFLER_TOKEN_TTL"     envDefault:"24h"`

	AllowedOrigin string `env:"GIFTSHUFFLER_ALLOWED_ORIGIN" envDefault:"*"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	var errs []error

	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			errs = append(errs, errors.New("GIFTSHUFFLER_DB_PATH is required for the sqlite store"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreSQLite, StoreMemory))
	}

	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q (want %s or %s)", c.LogFormat, FormatText, FormatJSON))
	}

	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("GIFTSHUFFLER_MAX_ATTEMPTS must be at least 1, got %d", c.MaxAttempts))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("GIFTSHUFFLER_TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}
	if c.AuthRequired && c.JWTSecret == "" {
		errs = append(errs, errors.New("GIFTSHUFFLER_JWT_SECRET is required when GIFTSHUFFLER_AUTH_REQUIRED is set"))
	}

	return errors.Join(errs...)
}
