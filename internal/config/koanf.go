// Stationdata - Climate Station Metadata Service
// Copyright 2026 Meteonet
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/meteonet/stationdata

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/stationdata/config.yaml",
	"/etc/stationdata/config.yml",
}

// ConfigPathEnvVar is the environment variable that overrides the config
// file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:            "",
			MaxConns:       0, // pgxpool default
			ConnectTimeout: 10 * time.Second,
			QueryTimeout:   30 * time.Second,
		},
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8000,
			Timeout:           30 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     300,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		API: APIConfig{
			MaxLimit:            0,
			GroupVarsInDatabase: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in defaults
//  2. Config file: optional YAML file (if present)
//  3. Environment variables: override any setting
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// SERVER_PORT -> server.port, DATABASE_DSN -> database.dsn, etc.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths defines which config paths are parsed as comma-separated
// slices when supplied via environment variables.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for
// known slice fields. Env vars arrive as strings but the config expects
// slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf config paths.
//
// Examples:
//   - DATABASE_DSN     -> database.dsn
//   - SERVER_PORT      -> server.port
//   - API_MAX_LIMIT    -> api.max_limit
//   - LOG_LEVEL        -> logging.level
//   - PCDS_DSN         -> database.dsn (legacy name used by earlier deployments)
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	// Legacy names kept for deployment compatibility.
	switch key {
	case "pcds_dsn":
		return "database.dsn"
	case "log_level":
		return "logging.level"
	case "log_format":
		return "logging.format"
	case "http_port":
		return "server.port"
	case "cors_origins":
		return "server.cors_origins"
	}

	for _, prefix := range []string{"database_", "server_", "api_", "logging_"} {
		if strings.HasPrefix(key, prefix) {
			section := strings.TrimSuffix(prefix, "_")
			return section + "." + strings.TrimPrefix(key, prefix)
		}
	}

	// Unknown env vars map to a namespace no config key uses.
	return "_ignored." + key
}
