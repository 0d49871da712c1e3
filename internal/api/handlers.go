// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/gamematch/internal/recommend"
)

// Handler serves the recommendation and catalog endpoints.
type Handler struct {
	engine    *recommend.Engine
	reloader  *recommend.Reloader
	startTime time.Time
}

// NewHandler creates a handler. reloader may be nil, which disables the
// catalog mutation endpoints.
func NewHandler(engine *recommend.Engine, reloader *recommend.Reloader) *Handler {
	return &Handler{
		engine:    engine,
		reloader:  reloader,
		startTime: time.Now(),
	}
}

// GameSummary is one selectable game.
type GameSummary struct {
	Name  string `json:"name"`
	Genre string `json:"genre"`
}

// HealthLive returns 200 while the process is running.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]any{
		"status":         "alive",
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady returns 200 once a catalog snapshot is serving, 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.engine.Snapshot()
	if snap == nil {
		rw.ServiceUnavailable(ErrCodeCatalogUnavailable, "catalog is not loaded")
		return
	}
	rw.Success(map[string]any{
		"status":     "ready",
		"generation": snap.Generation,
		"items":      snap.Catalog.Len(),
	})
}

// Games lists every selectable game in catalog order.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	snap := h.engine.Snapshot()
	if snap == nil {
		rw.ServiceUnavailable(ErrCodeCatalogUnavailable, "catalog is not loaded")
		return
	}

	items := snap.Catalog.Items()
	games := make([]GameSummary, len(items))
	for i, it := range items {
		games[i] = GameSummary{Name: it.Name, Genre: it.Genre}
	}

	count := len(games)
	rw.SuccessWithMeta(games, &APIMeta{Count: &count, Generation: snap.Generation})
}
