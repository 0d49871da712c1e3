// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package catalog

import "errors"

var (
	// ErrEmptyCatalog is returned when a catalog has no items.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrDuplicateName is returned when two items share a Name.
	ErrDuplicateName = errors.New("duplicate game name")

	// ErrInvalidItem is returned when an item fails field validation.
	ErrInvalidItem = errors.New("invalid catalog item")

	// ErrUnsupportedFormat is returned for catalog files that are neither JSON nor CSV.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrReadOnly is returned when a write is attempted on a source that cannot persist.
	ErrReadOnly = errors.New("catalog source is read-only")

	// ErrMissingColumn is returned when a tabular source lacks Name or Genre.
	ErrMissingColumn = errors.New("catalog source is missing a required column")
)
