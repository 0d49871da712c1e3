// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/gamematch/internal/catalog"
	"github.com/tomtom215/gamematch/internal/logging"
	"github.com/tomtom215/gamematch/internal/recommend"
)

// respondRecommendError maps errors from Engine.Recommend.
func respondRecommendError(rw *ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrItemNotFound):
		rw.Error(http.StatusNotFound, ErrCodeSelectionUnavailable, "selection not available")
	case errors.Is(err, recommend.ErrInvalidCount):
		rw.ValidationError(err.Error(), map[string]any{"field": "n"})
	case errors.Is(err, recommend.ErrEmptyCatalog):
		rw.ServiceUnavailable(ErrCodeCatalogUnavailable, "catalog is not loaded")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		rw.ServiceUnavailable(ErrCodeServiceUnavailable, "request cancelled")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation failed")
		rw.InternalError("failed to generate recommendations")
	}
}

// respondCatalogError maps errors from reload and replace. In every case
// the previous snapshot is still serving.
func respondCatalogError(rw *ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrReloadThrottled):
		rw.TooManyRequests("catalog was reloaded too recently, retry later")
	case errors.Is(err, catalog.ErrReadOnly):
		rw.Conflict("catalog source is read-only")
	case errors.Is(err, catalog.ErrEmptyCatalog),
		errors.Is(err, catalog.ErrDuplicateName),
		errors.Is(err, catalog.ErrInvalidItem),
		errors.Is(err, catalog.ErrUnsupportedFormat),
		errors.Is(err, catalog.ErrMissingColumn),
		errors.Is(err, recommend.ErrDegenerateVocabulary):
		rw.ErrorWithDetails(http.StatusUnprocessableEntity, ErrCodeInvalidCatalog,
			"catalog rejected, previous catalog still serving", map[string]any{"reason": err.Error()})
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("catalog reload failed")
		rw.InternalError("catalog reload failed, previous catalog still serving")
	}
}
