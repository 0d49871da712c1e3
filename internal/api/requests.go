// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/gamematch/internal/catalog"
	"github.com/tomtom215/gamematch/internal/validation"
)

// maxCatalogBodyBytes bounds PUT /catalog bodies.
const maxCatalogBodyBytes = 8 << 20

// RecommendationQuery holds the validated parameters of a recommendation request.
// N of 0 selects the configured default.
type RecommendationQuery struct {
	Game string `validate:"required,notblank,max=512"`
	N    int    `validate:"min=0,max=10000"`
}

// ReplaceCatalogRequest is the body of PUT /api/v1/catalog.
type ReplaceCatalogRequest struct {
	Items []catalog.Item `json:"items" validate:"required,min=1,dive"`
}

// parseCount reads the n query parameter. Missing means 0.
func parseCount(r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("n"))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// validateRequest validates s and converts failures to the API error body.
func validateRequest(s any) *APIError {
	verr := validation.ValidateStruct(s)
	if verr == nil {
		return nil
	}
	apiErr := verr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}
