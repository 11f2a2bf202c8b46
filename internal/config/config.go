// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

// Package config holds application configuration loaded via Koanf v2 from
// struct defaults, an optional YAML config file, and environment variables,
// in that order of precedence (env highest).
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig configures the PostgreSQL connection pool for the CRMP
// metadata database. The schema is owned externally; this service only reads.
type DatabaseConfig struct {
	// DSN is the PostgreSQL connection string,
	// e.g. postgresql://httpd@db.example.org/crmp
	DSN string `koanf:"dsn"`

	// MaxConns is the pool size. 0 uses the pgxpool default (max(4, NumCPU)).
	MaxConns int32 `koanf:"max_conns"`

	// ConnectTimeout bounds the initial connection attempt.
	ConnectTimeout time.Duration `koanf:"connect_timeout"`

	// QueryTimeout bounds each query when the request context carries no
	// earlier deadline. 0 disables the per-query timeout.
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`

	// CORSOrigins lists allowed origins. The upstream mapping front-ends are
	// served from separate hosts, so CORS defaults to allow-all as the
	// original deployment did.
	CORSOrigins []string `koanf:"cors_origins"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// APIConfig configures API-level behavior.
type APIConfig struct {
	// MaxLimit caps the limit query parameter on collection endpoints.
	// 0 means uncapped.
	MaxLimit int `koanf:"max_limit"`

	// GroupVarsInDatabase selects the variable-by-history grouping strategy:
	// true groups with array_agg in the database (roughly 2x faster in
	// profiling), false fetches pairs and groups in memory.
	GroupVarsInDatabase bool `koanf:"group_vars_in_database"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for missing or malformed values.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required (set DATABASE_DSN or PCDS_DSN)")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Database.MaxConns < 0 {
		return fmt.Errorf("database.max_conns must be non-negative, got %d", c.Database.MaxConns)
	}
	if c.API.MaxLimit < 0 {
		return fmt.Errorf("api.max_limit must be non-negative, got %d", c.API.MaxLimit)
	}
	if !c.Server.RateLimitDisabled {
		if c.Server.RateLimitReqs <= 0 {
			return fmt.Errorf("server.rate_limit_reqs must be positive, got %d", c.Server.RateLimitReqs)
		}
		if c.Server.RateLimitWindow <= 0 {
			return fmt.Errorf("server.rate_limit_window must be positive, got %s", c.Server.RateLimitWindow)
		}
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
