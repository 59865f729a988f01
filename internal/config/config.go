// EventAtlas - Geotagged Event Feed and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventatlas

// Package config loads and validates EventAtlas configuration.
//
// Configuration is layered: built-in defaults, then an optional YAML
// file, then environment variables. Precedence is ENV > file > defaults.
package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root configuration for the server and seeder.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Store    StoreConfig    `koanf:"store"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host      string        `koanf:"host" validate:"required"`
	Port      int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout   time.Duration `koanf:"timeout" validate:"gt=0"`
	StaticDir string        `koanf:"static_dir"` // map UI assets; empty disables static serving
}

// StoreConfig selects and configures the event row source.
type StoreConfig struct {
	// Backend is "duckdb" or "file".
	Backend string `koanf:"backend" validate:"oneof=duckdb file"`

	// DuckDBPath is the embedded database file (duckdb backend).
	DuckDBPath string `koanf:"duckdb_path" validate:"required_if=Backend duckdb"`

	// EventsFile is the JSON events feed (file backend).
	EventsFile string `koanf:"events_file" validate:"required_if=Backend file"`
}

// SecurityConfig holds the HTTP hardening knobs. The feed is public and
// unauthenticated; CORS defaults to all origins.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins" validate:"min=1"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// singleton validator instance (thread-safe, caches struct info)
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid config field %s (rule %s)", first.Namespace(), first.Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns this concrete type
	if ok {
		*target = verrs
	}
	return ok
}
