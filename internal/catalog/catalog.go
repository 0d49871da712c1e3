// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

// Package catalog holds the immutable list of games that recommendations are
// computed over, together with the sources it can be loaded from.
//
// A Catalog is validated once at construction: every item needs a non-blank
// Name and Genre, and Names must be unique because they are the lookup key for
// recommendation queries. After New returns, a Catalog is never mutated and is
// safe to share between goroutines.
package catalog

import (
	"fmt"
	"strings"

	"github.com/tomtom215/gamematch/internal/validation"
)

// Item is a single game. ID is its position in the catalog.
type Item struct {
	ID    int    `json:"id"`
	Name  string `json:"name" validate:"required,notblank,max=512"`
	Genre string `json:"genre" validate:"required,notblank,max=512"`
}

// FeatureText is the text the recommender vectorizes: Name, a space, Genre.
func (it Item) FeatureText() string {
	return it.Name + " " + it.Genre
}

// Catalog is an ordered, validated, read-only set of items.
type Catalog struct {
	items []Item
	index map[string]int
}

// New validates items and builds a catalog. The input slice is not retained.
// IDs are reassigned to match position and surrounding whitespace is trimmed.
func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}

	for i, it := range items {
		it.ID = i
		it.Name = strings.TrimSpace(it.Name)
		it.Genre = strings.TrimSpace(it.Genre)

		if verr := validation.ValidateStruct(&it); verr != nil {
			return nil, fmt.Errorf("%w: item %d: %s", ErrInvalidItem, i, verr.Error())
		}
		if prev, dup := c.index[it.Name]; dup {
			return nil, fmt.Errorf("%w: %q at %d and %d", ErrDuplicateName, it.Name, prev, i)
		}

		c.items[i] = it
		c.index[it.Name] = i
	}

	return c, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Item returns the item at index i. It panics if i is out of range.
func (c *Catalog) Item(i int) Item {
	return c.items[i]
}

// IndexOf resolves a Name to its catalog index. Matching is exact.
func (c *Catalog) IndexOf(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// Names returns all names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.items))
	for i := range c.items {
		names[i] = c.items[i].Name
	}
	return names
}
