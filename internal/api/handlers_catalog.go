// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamematch/internal/logging"
	"github.com/tomtom215/gamematch/internal/recommend"
)

// CatalogStatus is the data of GET /api/v1/catalog/status.
type CatalogStatus struct {
	recommend.Status

	Writable bool `json:"writable"`
}

// SnapshotSummary describes a newly published snapshot.
type SnapshotSummary struct {
	Generation     uint64    `json:"generation"`
	Items          int       `json:"items"`
	VocabularySize int       `json:"vocabulary_size"`
	Source         string    `json:"source"`
	BuiltAt        time.Time `json:"built_at"`
}

func summarize(snap *recommend.Snapshot) SnapshotSummary {
	return SnapshotSummary{
		Generation:     snap.Generation,
		Items:          snap.Catalog.Len(),
		VocabularySize: snap.Vocabulary.Len(),
		Source:         snap.Source,
		BuiltAt:        snap.BuiltAt,
	}
}

// CatalogStatus handles GET /api/v1/catalog/status.
func (h *Handler) CatalogStatus(w http.ResponseWriter, r *http.Request) {
	status := CatalogStatus{Status: h.engine.Status()}
	if h.reloader != nil {
		status.Writable = h.reloader.Writable()
	}
	NewResponseWriter(w, r).Success(status)
}

// ReloadCatalog handles POST /api/v1/catalog/reload.
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.reloader == nil {
		rw.Conflict("catalog reload is not configured")
		return
	}

	snap, err := h.reloader.Reload(r.Context())
	if err != nil {
		respondCatalogError(rw, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Uint64("generation", snap.Generation).
		Int("items", snap.Catalog.Len()).
		Msg("catalog reloaded via API")
	rw.Success(summarize(snap))
}

// ReplaceCatalog handles PUT /api/v1/catalog. The body replaces the stored
// catalog of a writable source and is published as a new snapshot.
func (h *Handler) ReplaceCatalog(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.reloader == nil || !h.reloader.Writable() {
		rw.Conflict("catalog source is read-only")
		return
	}

	var req ReplaceCatalogRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCatalogBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	snap, err := h.reloader.Replace(r.Context(), req.Items)
	if err != nil {
		respondCatalogError(rw, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Uint64("generation", snap.Generation).
		Int("items", snap.Catalog.Len()).
		Msg("catalog replaced via API")
	rw.Success(summarize(snap))
}
