// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/gamematch/internal/catalog"
	"github.com/tomtom215/gamematch/internal/validation"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateSecurity()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	cat := &c.Catalog
	switch cat.Source {
	case catalog.SourceFile, catalog.SourceDuckDB, catalog.SourceBadger:
	default:
		return fmt.Errorf("catalog.source must be one of file, duckdb, badger, got %q", cat.Source)
	}
	if strings.TrimSpace(cat.Path) == "" {
		return fmt.Errorf("catalog.path is required")
	}
	if cat.Format != "" && cat.Format != "json" && cat.Format != "csv" {
		return fmt.Errorf("catalog.format must be json or csv, got %q", cat.Format)
	}
	if cat.Source == catalog.SourceDuckDB {
		if err := validation.ValidateVar(cat.DuckDBTable, "required,sqlident"); err != nil {
			return fmt.Errorf("catalog.duckdb_table %q is not a valid table name", cat.DuckDBTable)
		}
	}
	if cat.Watch && cat.Source != catalog.SourceFile {
		return fmt.Errorf("catalog.watch is only supported for the file source")
	}
	if cat.ReloadInterval < 0 {
		return fmt.Errorf("catalog.reload_interval must be non-negative, got %v", cat.ReloadInterval)
	}
	if cat.MinReloadGap < 0 {
		return fmt.Errorf("catalog.min_reload_gap must be non-negative, got %v", cat.MinReloadGap)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := &c.Recommend
	if r.DefaultN < 1 {
		return fmt.Errorf("recommend.default_n must be positive, got %d", r.DefaultN)
	}
	if r.MaxN < r.DefaultN {
		return fmt.Errorf("recommend.max_n must be >= recommend.default_n, got %d < %d", r.MaxN, r.DefaultN)
	}
	if r.MinScore < 0 || r.MinScore > 1 {
		return fmt.Errorf("recommend.min_score must be in [0, 1], got %f", r.MinScore)
	}
	if r.CacheEnabled && r.CacheMaxEntries < 1 {
		return fmt.Errorf("recommend.cache_max_entries must be positive, got %d", r.CacheMaxEntries)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}
