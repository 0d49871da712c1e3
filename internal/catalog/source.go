// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package catalog

import (
	"context"
	"fmt"
)

// Source kinds accepted by OpenSource.
const (
	SourceFile   = "file"
	SourceDuckDB = "duckdb"
	SourceBadger = "badger"
)

// Source produces the raw items of a catalog. Implementations must return
// items in a stable order since catalog position is the tie-breaker for
// equally similar games.
type Source interface {
	Load(ctx context.Context) ([]Item, error)
	String() string
}

// Writer is a Source that can persist a replacement catalog.
type Writer interface {
	Source
	Replace(ctx context.Context, items []Item) error
}

// SourceConfig selects and parameterizes a Source.
type SourceConfig struct {
	Kind string
	Path string

	// Format overrides extension detection for file sources ("json" or "csv").
	Format string

	// Table is the DuckDB table to read.
	Table string

	// SeedPath is a JSON or CSV file copied into an empty Badger store on open.
	SeedPath string
}

// OpenSource constructs the configured source. Sources holding resources
// (Badger) should be closed by the caller through Close.
func OpenSource(ctx context.Context, cfg SourceConfig) (Source, error) {
	switch cfg.Kind {
	case SourceFile, "":
		return NewFileSource(cfg.Path, cfg.Format), nil
	case SourceDuckDB:
		return NewDuckDBSource(cfg.Path, cfg.Table)
	case SourceBadger:
		store, err := OpenBadgerStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		if cfg.SeedPath != "" {
			if err := store.SeedIfEmpty(ctx, NewFileSource(cfg.SeedPath, cfg.Format)); err != nil {
				_ = store.Close()
				return nil, err
			}
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Kind)
	}
}

// Close releases resources held by src, if any.
func Close(src Source) error {
	if c, ok := src.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
