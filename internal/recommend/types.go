// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

import (
	"time"

	"github.com/tomtom215/gamematch/internal/cache"
	"github.com/tomtom215/gamematch/internal/catalog"
)

// Recommendation is one ranked result.
type Recommendation struct {
	// Rank is the 1-based position in the result.
	Rank int `json:"rank"`

	Item catalog.Item `json:"item"`

	// Score is the cosine similarity to the query item.
	Score float64 `json:"score"`

	// Backfilled marks entries added to pad a short ranked list.
	Backfilled bool `json:"backfilled"`
}

// Request is a recommendation query.
type Request struct {
	// Name of the selected game, matched exactly.
	Name string `json:"name"`

	// N is the number of results. 0 selects the configured default and
	// values above the configured maximum are clamped.
	N int `json:"n"`

	// RequestID is used for tracing; generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Response is the answer to a Request.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Metadata        ResponseMetadata `json:"metadata"`
}

// Names projects the response to game names in rank order.
func (r *Response) Names() []string {
	names := make([]string, len(r.Recommendations))
	for i := range r.Recommendations {
		names[i] = r.Recommendations[i].Item.Name
	}
	return names
}

// ResponseMetadata describes how a Response was produced.
type ResponseMetadata struct {
	RequestID   string    `json:"request_id"`
	Query       string    `json:"query"`
	N           int       `json:"n"`
	Generation  uint64    `json:"generation"`
	Backfilled  int       `json:"backfilled"`
	CacheHit    bool      `json:"cache_hit"`
	LatencyMS   int64     `json:"latency_ms"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Status is a point-in-time view of the engine.
type Status struct {
	Loaded         bool        `json:"loaded"`
	Generation     uint64      `json:"generation"`
	Items          int         `json:"items"`
	VocabularySize int         `json:"vocabulary_size"`
	BuiltAt        time.Time   `json:"built_at,omitempty"`
	Source         string      `json:"source,omitempty"`
	Requests       int64       `json:"requests"`
	CacheHits      int64       `json:"cache_hits"`
	CacheMisses    int64       `json:"cache_misses"`
	Errors         int64       `json:"errors"`
	Cache          cache.Stats `json:"cache"`
}
