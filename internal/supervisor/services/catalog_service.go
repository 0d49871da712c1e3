// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamematch/internal/config"
	"github.com/tomtom215/gamematch/internal/recommend"
)

// CatalogReloader reloads the catalog, waiting out any throttle.
// Satisfied by *recommend.Reloader.
type CatalogReloader interface {
	ReloadWait(ctx context.Context) (*recommend.Snapshot, error)
}

// WatchFunc starts watching path. onChange runs on every write, onError
// when the watch ends on its own (for example the file was removed).
// Matches config.WatchFile.
type WatchFunc func(path string, onChange func(), onError func(error)) (stop func() error, err error)

// CatalogServiceConfig holds configuration for the catalog service.
type CatalogServiceConfig struct {
	// ReloadInterval reloads on a fixed schedule. 0 disables.
	ReloadInterval time.Duration

	// WatchPath reloads whenever this file changes. Empty disables.
	WatchPath string

	// RewatchDelay is how long to wait before re-arming a watch that ended,
	// typically because an editor replaced the file.
	// Default: 5s
	RewatchDelay time.Duration
}

// CatalogService keeps the engine's snapshot current. Reload triggers from
// the schedule, the file watcher and Trigger are coalesced; failed reloads
// are logged and the previous snapshot keeps serving.
type CatalogService struct {
	reloader CatalogReloader
	config   CatalogServiceConfig
	watch    WatchFunc
	logger   zerolog.Logger
	trigger  chan struct{}
	name     string
}

// NewCatalogService creates the service. watch may be nil to use
// config.WatchFile.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogService(reloader CatalogReloader, cfg CatalogServiceConfig, watch WatchFunc, logger zerolog.Logger) *CatalogService {
	if cfg.RewatchDelay <= 0 {
		cfg.RewatchDelay = 5 * time.Second
	}
	if watch == nil {
		watch = config.WatchFile
	}
	return &CatalogService{
		reloader: reloader,
		config:   cfg,
		watch:    watch,
		logger:   logger.With().Str("service", "catalog").Logger(),
		trigger:  make(chan struct{}, 1),
		name:     "catalog-service",
	}
}

// Trigger requests a reload without blocking. Requests made while one is
// pending are merged.
func (s *CatalogService) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Serve implements suture.Service.
func (s *CatalogService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("reload_interval", s.config.ReloadInterval).
		Str("watch_path", s.config.WatchPath).
		Msg("catalog service starting")

	var tick <-chan time.Time
	if s.config.ReloadInterval > 0 {
		ticker := time.NewTicker(s.config.ReloadInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	watchErr := make(chan error, 1)
	var (
		stopWatch func() error
		rewatch   <-chan time.Time
	)
	defer func() {
		if stopWatch != nil {
			_ = stopWatch()
		}
	}()

	if s.config.WatchPath != "" {
		var err error
		if stopWatch, err = s.startWatch(watchErr); err != nil {
			s.logger.Warn().Err(err).Dur("retry_in", s.config.RewatchDelay).Msg("catalog watch failed to start")
			rewatch = time.After(s.config.RewatchDelay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog service shutting down")
			return ctx.Err()

		case <-tick:
			s.reload(ctx, "interval")

		case <-s.trigger:
			s.reload(ctx, "trigger")

		case err := <-watchErr:
			// The watcher has already shut itself down.
			stopWatch = nil
			s.logger.Warn().Err(err).Dur("retry_in", s.config.RewatchDelay).Msg("catalog watch ended")
			rewatch = time.After(s.config.RewatchDelay)

		case <-rewatch:
			rewatch = nil
			stop, err := s.startWatch(watchErr)
			if err != nil {
				s.logger.Warn().Err(err).Dur("retry_in", s.config.RewatchDelay).Msg("catalog watch still unavailable")
				rewatch = time.After(s.config.RewatchDelay)
				continue
			}
			stopWatch = stop
			// The file may have been replaced while unwatched.
			s.reload(ctx, "rewatch")
		}
	}
}

func (s *CatalogService) startWatch(watchErr chan<- error) (func() error, error) {
	return s.watch(s.config.WatchPath, s.Trigger, func(err error) {
		select {
		case watchErr <- err:
		default:
		}
	})
}

func (s *CatalogService) reload(ctx context.Context, reason string) {
	start := time.Now()
	snap, err := s.reloader.ReloadWait(ctx)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return
		}
		s.logger.Warn().Err(err).Str("reason", reason).Msg("catalog reload failed, previous snapshot still serving")
		return
	}
	s.logger.Info().
		Str("reason", reason).
		Uint64("generation", snap.Generation).
		Int("items", snap.Catalog.Len()).
		Dur("duration", time.Since(start)).
		Msg("catalog reloaded")
}

// String names the service in supervisor logs.
func (s *CatalogService) String() string {
	return s.name
}
