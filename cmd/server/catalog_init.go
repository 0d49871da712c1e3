// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/gamematch/internal/catalog"
	"github.com/tomtom215/gamematch/internal/config"
	"github.com/tomtom215/gamematch/internal/logging"
	"github.com/tomtom215/gamematch/internal/recommend"
)

// catalogComponents bundles the source, engine and reloader built at startup.
type catalogComponents struct {
	source    catalog.Source
	engine    *recommend.Engine
	reloader  *recommend.Reloader
	watchPath string
}

// initCatalog opens the configured source and publishes the first snapshot.
// A failed first load is fatal: there is nothing to serve.
func initCatalog(ctx context.Context, cfg *config.Config) (*catalogComponents, error) {
	src, err := catalog.OpenSource(ctx, cfg.Catalog.SourceConfig())
	if err != nil {
		return nil, fmt.Errorf("open catalog source: %w", err)
	}

	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), logging.Logger())
	if err != nil {
		_ = catalog.Close(src)
		return nil, fmt.Errorf("create engine: %w", err)
	}

	snap, err := engine.Load(ctx, src)
	if err != nil {
		_ = catalog.Close(src)
		return nil, fmt.Errorf("initial catalog load: %w", err)
	}
	logging.Info().
		Str("source", snap.Source).
		Int("items", snap.Catalog.Len()).
		Int("vocabulary", snap.Vocabulary.Len()).
		Msg("Catalog loaded")

	c := &catalogComponents{
		source:   src,
		engine:   engine,
		reloader: recommend.NewReloader(engine, src, cfg.Catalog.MinReloadGap),
	}
	if cfg.Catalog.Watch {
		c.watchPath = cfg.Catalog.Path
	}
	return c, nil
}

func (c *catalogComponents) close() {
	if err := catalog.Close(c.source); err != nil {
		logging.Error().Err(err).Msg("Error closing catalog source")
	}
}
