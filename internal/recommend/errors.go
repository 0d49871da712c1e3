// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

import (
	"errors"

	"github.com/tomtom215/gamematch/internal/catalog"
)

var (
	// ErrEmptyCatalog is returned when there are no items to vectorize or no
	// snapshot has been loaded yet. It is the same value as catalog.ErrEmptyCatalog.
	ErrEmptyCatalog = catalog.ErrEmptyCatalog

	// ErrDegenerateVocabulary is returned when no item yields a single token.
	ErrDegenerateVocabulary = errors.New("vocabulary is empty: every item consists of stop words")

	// ErrItemNotFound is returned when the query Name is not in the catalog.
	ErrItemNotFound = errors.New("selection not available")

	// ErrInvalidCount is returned for a negative result count.
	ErrInvalidCount = errors.New("result count must not be negative")

	// ErrReloadThrottled is returned when a reload arrives inside the
	// minimum gap since the previous one.
	ErrReloadThrottled = errors.New("catalog reload throttled")
)
