// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/gamematch/internal/catalog"
)

// Reloader refreshes an Engine from its configured catalog source. Reloads
// requested by operators or file watchers share one limiter so a burst of
// events cannot rebuild the matrix back to back.
type Reloader struct {
	engine  *Engine
	source  catalog.Source
	limiter *rate.Limiter

	// writeMu keeps Replace and the reload that follows it together.
	writeMu sync.Mutex
}

// NewReloader creates a reloader. minGap <= 0 disables throttling.
func NewReloader(engine *Engine, source catalog.Source, minGap time.Duration) *Reloader {
	limit := rate.Inf
	if minGap > 0 {
		limit = rate.Every(minGap)
	}
	return &Reloader{
		engine:  engine,
		source:  source,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Source returns the catalog source being reloaded.
func (r *Reloader) Source() catalog.Source {
	return r.source
}

// Writable reports whether Replace can persist to the source.
func (r *Reloader) Writable() bool {
	_, ok := r.source.(catalog.Writer)
	return ok
}

// Reload loads the source now, or fails with ErrReloadThrottled.
func (r *Reloader) Reload(ctx context.Context) (*Snapshot, error) {
	if !r.limiter.Allow() {
		return nil, ErrReloadThrottled
	}
	return r.engine.Load(ctx, r.source)
}

// ReloadWait is Reload but waits for the limiter instead of failing.
func (r *Reloader) ReloadWait(ctx context.Context) (*Snapshot, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for reload slot: %w", err)
	}
	return r.engine.Load(ctx, r.source)
}

// Replace persists items to a writable source and reloads from it. Sources
// that cannot persist return catalog.ErrReadOnly. Explicit writes are not
// throttled.
func (r *Reloader) Replace(ctx context.Context, items []catalog.Item) (*Snapshot, error) {
	w, ok := r.source.(catalog.Writer)
	if !ok {
		return nil, fmt.Errorf("replace %s: %w", r.source, catalog.ErrReadOnly)
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if err := w.Replace(ctx, items); err != nil {
		return nil, fmt.Errorf("replace %s: %w", r.source, err)
	}
	return r.engine.Load(ctx, r.source)
}
