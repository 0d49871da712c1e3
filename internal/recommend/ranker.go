// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

import "sort"

// ranked is one selected index with its score.
type ranked struct {
	index      int
	score      float64
	backfilled bool
}

// rankIndices orders catalog indices by descending score, ties by ascending
// index. Map iteration order never leaks into the result.
func rankIndices(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := scores[order[a]], scores[order[b]]
		if sa != sb {
			return sa > sb
		}
		return order[a] < order[b]
	})
	return order
}

// selectTop takes the n+1 best indices, removes query, truncates to n and
// backfills from the lowest indices when short. Ranked candidates scoring
// below minScore are skipped and left to the backfill. The result never
// contains query or a repeated index and has at most min(n, len(scores)-1)
// entries.
func selectTop(scores []float64, query, n int, minScore float64) []ranked {
	if n <= 0 || len(scores) == 0 {
		return nil
	}

	order := rankIndices(scores)
	limit := n + 1
	if limit > len(order) {
		limit = len(order)
	}

	out := make([]ranked, 0, n)
	present := make(map[int]struct{}, n)
	for _, idx := range order[:limit] {
		if idx == query || scores[idx] < minScore {
			continue
		}
		if len(out) == n {
			break
		}
		out = append(out, ranked{index: idx, score: scores[idx]})
		present[idx] = struct{}{}
	}

	for idx := 0; idx < len(scores) && len(out) < n; idx++ {
		if idx == query {
			continue
		}
		if _, ok := present[idx]; ok {
			continue
		}
		out = append(out, ranked{index: idx, score: scores[idx], backfilled: true})
		present[idx] = struct{}{}
	}

	return out
}
