// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Database.DSN = "postgresql://httpd@localhost/crmp"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing dsn",
			mutate:  func(c *Config) { c.Database.DSN = "" },
			wantErr: true,
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "non-positive timeout",
			mutate:  func(c *Config) { c.Server.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative max conns",
			mutate:  func(c *Config) { c.Database.MaxConns = -1 },
			wantErr: true,
		},
		{
			name:    "rate limit reqs zero while enabled",
			mutate:  func(c *Config) { c.Server.RateLimitReqs = 0 },
			wantErr: true,
		},
		{
			name: "rate limit ignored when disabled",
			mutate: func(c *Config) {
				c.Server.RateLimitDisabled = true
				c.Server.RateLimitReqs = 0
				c.Server.RateLimitWindow = 0
			},
			wantErr: false,
		},
		{
			name:    "bad logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{"DATABASE_DSN", "database.dsn"},
		{"DATABASE_MAX_CONNS", "database.max_conns"},
		{"SERVER_PORT", "server.port"},
		{"SERVER_RATE_LIMIT_REQS", "server.rate_limit_reqs"},
		{"API_MAX_LIMIT", "api.max_limit"},
		{"API_GROUP_VARS_IN_DATABASE", "api.group_vars_in_database"},
		{"LOGGING_LEVEL", "logging.level"},
		{"PCDS_DSN", "database.dsn"},
		{"LOG_LEVEL", "logging.level"},
		{"HTTP_PORT", "server.port"},
		{"CORS_ORIGINS", "server.cors_origins"},
		{"PATH", "_ignored.path"},
		{"HOME", "_ignored.home"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.expected)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgresql://test@db/crmp")
	t.Setenv("SERVER_PORT", "9001")
	t.Setenv("LOGGING_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example.org, https://b.example.org")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Database.DSN != "postgresql://test@db/crmp" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Server.Port != 9001 {
		t.Errorf("Port = %d, want 9001", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	want := []string{"https://a.example.org", "https://b.example.org"}
	if len(cfg.Server.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Server.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Server.CORSOrigins[i], want[i])
		}
	}
}

func TestDefaultsApplied(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgresql://test@db/crmp")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("default port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Database.ConnectTimeout != 10*time.Second {
		t.Errorf("default connect timeout = %s", cfg.Database.ConnectTimeout)
	}
	if !cfg.API.GroupVarsInDatabase {
		t.Error("expected group_vars_in_database to default to true")
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8000}
	if got := s.Addr(); got != "127.0.0.1:8000" {
		t.Errorf("Addr() = %q", got)
	}
}
