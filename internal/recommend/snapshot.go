// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/gamematch/internal/catalog"
)

// DefaultN is the engine's result count when a request asks for none.
const DefaultN = 5

// Snapshot is a catalog together with its vectorized form. It is never
// modified after construction and may be shared freely.
type Snapshot struct {
	Catalog    *catalog.Catalog
	Vocabulary *Vocabulary
	Matrix     *FeatureMatrix
	Generation uint64
	BuiltAt    time.Time
	Source     string
}

// NewSnapshot vectorizes cat.
func NewSnapshot(cat *catalog.Catalog, generation uint64) (*Snapshot, error) {
	tok, err := NewTokenizer()
	if err != nil {
		return nil, err
	}
	return newSnapshot(tok, cat, generation)
}

func newSnapshot(tok *Tokenizer, cat *catalog.Catalog, generation uint64) (*Snapshot, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	vocab, matrix, err := buildWith(tok, cat.Items())
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Catalog:    cat,
		Vocabulary: vocab,
		Matrix:     matrix,
		Generation: generation,
		BuiltAt:    time.Now().UTC(),
	}, nil
}

// Scores returns the similarity of the named item to every item, aligned
// with catalog order. The item's own entry is included.
func (s *Snapshot) Scores(name string) ([]float64, error) {
	q, ok := s.Catalog.IndexOf(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	return scoreAll(s.Matrix, q), nil
}

// Rank returns up to n items most similar to the named item, best first.
// n == 0 yields an empty result; the engine applies its configured default
// before calling in.
func (s *Snapshot) Rank(name string, n int) ([]Recommendation, error) {
	return s.rank(name, n, 0)
}

// Recommend returns the names of up to n items most similar to the named
// item. The query item is never included and names do not repeat; a catalog
// with fewer than n+1 items yields fewer than n names.
func (s *Snapshot) Recommend(name string, n int) ([]string, error) {
	recs, err := s.Rank(name, n)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(recs))
	for i := range recs {
		names[i] = recs[i].Item.Name
	}
	return names, nil
}

func (s *Snapshot) rank(name string, n int, minScore float64) ([]Recommendation, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	scores, err := s.Scores(name)
	if err != nil {
		return nil, err
	}
	q, _ := s.Catalog.IndexOf(name)

	selected := selectTop(scores, q, n, minScore)
	out := make([]Recommendation, len(selected))
	for i, r := range selected {
		out[i] = Recommendation{
			Rank:       i + 1,
			Item:       s.Catalog.Item(r.index),
			Score:      r.score,
			Backfilled: r.backfilled,
		}
	}
	return out, nil
}
