// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

import (
	"fmt"
	"time"
)

// Config contains the engine settings.
type Config struct {
	Limits  LimitsConfig  `json:"limits"`
	Ranking RankingConfig `json:"ranking"`
	Cache   CacheConfig   `json:"cache"`
}

// LimitsConfig bounds the result count.
type LimitsConfig struct {
	// DefaultN applies when a request asks for 0 results.
	// Default: 5.
	DefaultN int `json:"default_n"`

	// MaxN caps the result count; larger requests are clamped.
	// Default: 100.
	MaxN int `json:"max_n"`
}

// RankingConfig tunes selection.
type RankingConfig struct {
	// MinScore excludes ranked candidates below this similarity, leaving
	// their slots to the backfill. 0 disables the threshold.
	MinScore float64 `json:"min_score"`
}

// CacheConfig controls the result cache. Entries are keyed by snapshot
// generation so a catalog swap never serves stale results.
type CacheConfig struct {
	Enabled    bool          `json:"enabled"`
	TTL        time.Duration `json:"ttl"`
	MaxEntries int           `json:"max_entries"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultN: DefaultN,
			MaxN:     100,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        10 * time.Minute,
			MaxEntries: 10000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.DefaultN < 1 {
		return fmt.Errorf("limits.default_n must be positive, got %d", c.Limits.DefaultN)
	}
	if c.Limits.MaxN < c.Limits.DefaultN {
		return fmt.Errorf("limits.max_n must be >= limits.default_n, got %d < %d", c.Limits.MaxN, c.Limits.DefaultN)
	}
	if c.Ranking.MinScore < 0 || c.Ranking.MinScore > 1 {
		return fmt.Errorf("ranking.min_score must be in [0, 1], got %f", c.Ranking.MinScore)
	}
	if c.Cache.Enabled && c.Cache.MaxEntries < 1 {
		return fmt.Errorf("cache.max_entries must be positive when the cache is enabled, got %d", c.Cache.MaxEntries)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative, got %v", c.Cache.TTL)
	}
	return nil
}
