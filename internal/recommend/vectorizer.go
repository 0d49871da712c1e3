// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/gamematch/internal/catalog"
)

// Vocabulary maps each distinct token to its matrix column. Columns follow
// ascending lexical token order.
type Vocabulary struct {
	tokens []string
	index  map[string]int
}

// Len returns the number of columns.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}

// Tokens returns the tokens in column order.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// Column returns the column of token.
func (v *Vocabulary) Column(token string) (int, bool) {
	c, ok := v.index[token]
	return c, ok
}

// SparseVector is one matrix row: parallel slices of ascending column
// indices and their positive counts.
type SparseVector struct {
	Cols   []int
	Counts []int
	norm   float64
}

// Norm returns the Euclidean length of the row.
func (v SparseVector) Norm() float64 {
	return v.norm
}

// IsZero reports whether the row has no tokens.
func (v SparseVector) IsZero() bool {
	return len(v.Cols) == 0
}

// FeatureMatrix holds one row per catalog item, row i for item i.
type FeatureMatrix struct {
	rows []SparseVector
	cols int
}

// Rows returns the number of rows.
func (m *FeatureMatrix) Rows() int {
	return len(m.rows)
}

// Cols returns the number of columns, equal to the vocabulary size.
func (m *FeatureMatrix) Cols() int {
	return m.cols
}

// Row returns row i. The returned slices must not be modified.
func (m *FeatureMatrix) Row(i int) SparseVector {
	return m.rows[i]
}

// Dense expands row i, mainly for debugging and tests.
func (m *FeatureMatrix) Dense(i int) []int {
	out := make([]int, m.cols)
	r := m.rows[i]
	for k, c := range r.Cols {
		out[c] = r.Counts[k]
	}
	return out
}

// Build vectorizes items. It does not retain or modify the slice.
func Build(items []catalog.Item) (*Vocabulary, *FeatureMatrix, error) {
	tok, err := NewTokenizer()
	if err != nil {
		return nil, nil, err
	}
	return buildWith(tok, items)
}

func buildWith(tok *Tokenizer, items []catalog.Item) (*Vocabulary, *FeatureMatrix, error) {
	if len(items) == 0 {
		return nil, nil, ErrEmptyCatalog
	}

	docs := make([][]string, len(items))
	seen := make(map[string]struct{})
	for i := range items {
		docs[i] = tok.Tokens(items[i].FeatureText())
		for _, t := range docs[i] {
			seen[t] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, nil, ErrDegenerateVocabulary
	}

	vocab := &Vocabulary{
		tokens: make([]string, 0, len(seen)),
		index:  make(map[string]int, len(seen)),
	}
	for t := range seen {
		vocab.tokens = append(vocab.tokens, t)
	}
	sort.Strings(vocab.tokens)
	for i, t := range vocab.tokens {
		vocab.index[t] = i
	}

	matrix := &FeatureMatrix{rows: make([]SparseVector, len(items)), cols: vocab.Len()}
	for i, doc := range docs {
		matrix.rows[i] = vectorize(vocab, doc)
	}

	return vocab, matrix, nil
}

func vectorize(vocab *Vocabulary, doc []string) SparseVector {
	counts := make(map[int]int, len(doc))
	for _, t := range doc {
		counts[vocab.index[t]]++
	}

	v := SparseVector{
		Cols:   make([]int, 0, len(counts)),
		Counts: make([]int, 0, len(counts)),
	}
	for c := range counts {
		v.Cols = append(v.Cols, c)
	}
	sort.Ints(v.Cols)

	var sumSq float64
	for _, c := range v.Cols {
		n := counts[c]
		v.Counts = append(v.Counts, n)
		sumSq += float64(n * n)
	}
	v.norm = math.Sqrt(sumSq)
	return v
}
