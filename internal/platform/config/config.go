// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Violeta API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// DefaultLanguage is the language served when a visitor expresses no preference.
	// Spanish is also the mandatory fallback entry of every multilingual field.
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"es"`

	// Key-Value store (Redis) for visitor preferences and search analytics.
	// Optional: when unset, in-memory implementations are used instead, which
	// suits the single-process deployment the platform started with.
	RedisURL string `env:"REDIS_URL"`

	// SessionSecret signs admin access tokens (HS256).
	SessionSecret string `env:"SESSION_SECRET" envDefault:"violeta-dev-secret"`

	// Admin credential pair. The password is supplied pre-hashed (bcrypt) so
	// the plain text never touches the environment in production.
	AdminUsername     string `env:"ADMIN_USERNAME"      envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Refuse to start in production with development-grade secrets.
	if cfg.IsProduction() {
		if cfg.SessionSecret == "violeta-dev-secret" {
			return nil, fmt.Errorf("config: SESSION_SECRET must be set in production")
		}
		if cfg.AdminPasswordHash == "" {
			return nil, fmt.Errorf("config: ADMIN_PASSWORD_HASH must be set in production")
		}
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ExtraAllowedOrigins returns the additional CORS origins configured through
// EXTRA_ORIGINS (comma-separated), for staging frontends and preview builds.
func (c *Config) ExtraAllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}

	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
