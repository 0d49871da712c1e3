// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

// Cosine returns the cosine similarity of two sparse rows. Counts are
// non-negative, so the result is in [0, 1]. A zero row scores 0 against
// everything, including itself.
func Cosine(a, b SparseVector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}

	// Merge walk over ascending column lists.
	var dot int
	i, j := 0, 0
	for i < len(a.Cols) && j < len(b.Cols) {
		switch {
		case a.Cols[i] == b.Cols[j]:
			dot += a.Counts[i] * b.Counts[j]
			i++
			j++
		case a.Cols[i] < b.Cols[j]:
			i++
		default:
			j++
		}
	}
	if dot == 0 {
		return 0
	}

	s := float64(dot) / (a.norm * b.norm)
	// Rounding can push identical rows a hair above 1.
	if s > 1 {
		s = 1
	}
	return s
}

// scoreAll returns the similarity of row q to every row, index-aligned.
func scoreAll(m *FeatureMatrix, q int) []float64 {
	query := m.rows[q]
	scores := make([]float64, len(m.rows))
	for i := range m.rows {
		scores[i] = Cosine(query, m.rows[i])
	}
	return scores
}
