// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

// Package config loads GameMatch settings from built-in defaults, an
// optional YAML file and environment variables, in that order of precedence
// (environment wins).
package config

import (
	"time"

	"github.com/tomtom215/gamematch/internal/catalog"
	"github.com/tomtom215/gamematch/internal/recommend"
)

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CatalogConfig selects where the game catalog comes from and how it is refreshed.
type CatalogConfig struct {
	// Source is one of file, duckdb, badger.
	Source string `koanf:"source"`

	// Path is the JSON/CSV file, DuckDB database file or Badger directory.
	Path string `koanf:"path"`

	// Format forces json or csv for file sources. Empty means detect by extension.
	Format string `koanf:"format"`

	// DuckDBTable is the table read by the duckdb source.
	DuckDBTable string `koanf:"duckdb_table"`

	// SeedPath is a JSON/CSV file loaded into an empty badger store at startup.
	SeedPath string `koanf:"seed_path"`

	// Watch reloads a file source when the file changes.
	Watch bool `koanf:"watch"`

	// ReloadInterval reloads the catalog periodically. 0 disables.
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// MinReloadGap is the minimum time between two reloads; bursts of file
	// events or reload requests inside the gap are coalesced.
	MinReloadGap time.Duration `koanf:"min_reload_gap"`
}

// SourceConfig converts to the catalog package's source parameters.
func (c CatalogConfig) SourceConfig() catalog.SourceConfig {
	return catalog.SourceConfig{
		Kind:     c.Source,
		Path:     c.Path,
		Format:   c.Format,
		Table:    c.DuckDBTable,
		SeedPath: c.SeedPath,
	}
}

// RecommendConfig holds ranking and result cache settings.
type RecommendConfig struct {
	DefaultN        int           `koanf:"default_n"`
	MaxN            int           `koanf:"max_n"`
	MinScore        float64       `koanf:"min_score"`
	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`
}

// EngineConfig converts to the recommendation engine's settings.
func (c RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultN: c.DefaultN,
			MaxN:     c.MaxN,
		},
		Ranking: recommend.RankingConfig{
			MinScore: c.MinScore,
		},
		Cache: recommend.CacheConfig{
			Enabled:    c.CacheEnabled,
			TTL:        c.CacheTTL,
			MaxEntries: c.CacheMaxEntries,
		},
	}
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// AdminToken, when set, is required as a bearer token on catalog
	// reload and replace requests.
	AdminToken string `koanf:"admin_token"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}
