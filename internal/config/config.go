// Package config loads process-wide configuration from the environment.
// Signing secrets live here and only here; they are never compiled into
// source.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the EdAlchemy authentication backend.
type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":8080"`
	ServiceName   string `env:"SERVICE_NAME"   envDefault:"edalchemy-auth"`

	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"edalchemy"`

	// JWTSecret signs auth tokens. Rotating it invalidates every
	// outstanding token; there is no revocation list.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"720h"`

	ResetTokenSecret string        `env:"RESET_TOKEN_SECRET"`
	ResetTokenTTL    time.Duration `env:"RESET_TOKEN_TTL" envDefault:"15m"`
	PasswordResetURL string        `env:"PASSWORD_RESET_URL" envDefault:"http://localhost:3000/reset-password"`

	// ConsulAddress enables service registration when set.
	ConsulAddress string `env:"CONSUL_ADDRESS"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("missing MONGO_URI environment variable")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}
	if c.ResetTokenSecret == "" {
		return fmt.Errorf("missing RESET_TOKEN_SECRET environment variable")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.ResetTokenTTL <= 0 {
		return fmt.Errorf("RESET_TOKEN_TTL must be positive")
	}

	return nil
}
