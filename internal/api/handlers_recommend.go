// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/gamematch/internal/logging"
	"github.com/tomtom215/gamematch/internal/recommend"
)

// RecommendationsPayload is the data of a recommendation response.
type RecommendationsPayload struct {
	Game            string                     `json:"game"`
	Names           []string                   `json:"names"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Metadata        recommend.ResponseMetadata `json:"metadata"`
}

// Recommendations handles GET /api/v1/recommendations?game=<name>&n=<count>.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	h.recommend(w, r, r.URL.Query().Get("game"))
}

// RecommendationsByGame handles GET /api/v1/recommendations/{game}.
func (h *Handler) RecommendationsByGame(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	if r.URL.RawPath != "" {
		// chi matched on the escaped path, so the param is still escaped.
		unescaped, err := url.PathUnescape(game)
		if err != nil {
			NewResponseWriter(w, r).BadRequest("malformed game name in path")
			return
		}
		game = unescaped
	}
	h.recommend(w, r, game)
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request, game string) {
	rw := NewResponseWriter(w, r)

	n, ok := parseCount(r)
	if !ok {
		rw.ValidationError("n must be an integer", map[string]any{"field": "n", "value": r.URL.Query().Get("n")})
		return
	}

	query := RecommendationQuery{Game: game, N: n}
	if apiErr := validateRequest(&query); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		Name:      query.Game,
		N:         query.N,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		respondRecommendError(rw, r, err)
		return
	}

	rw.SuccessWithMeta(RecommendationsPayload{
		Game:            query.Game,
		Names:           resp.Names(),
		Recommendations: resp.Recommendations,
		Metadata:        resp.Metadata,
	}, &APIMeta{Generation: resp.Metadata.Generation})
}
