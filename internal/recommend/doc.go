// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

/*
Package recommend ranks catalog items by textual similarity to a query item.

# Pipeline

Each item's feature text (Name and Genre joined by a space) is analyzed into
tokens: split on anything that is not a letter or digit, lower-cased, with
one-character tokens and English stop words removed. The distinct tokens of
the whole catalog form the Vocabulary, sorted so that a given catalog always
yields the same column order. Every item becomes a sparse row of term counts
in the FeatureMatrix.

A query resolves the item by exact Name, scores it against every row with
cosine similarity, and ranks by descending score with ties broken by
ascending catalog index. The top n+1 are taken, the query item itself is
dropped, and if fewer than n remain the result is padded with the
lowest-index items not yet present.

# Snapshots

Build, NewSnapshot and the ranking functions are pure. The Engine holds the
current Snapshot behind an atomic pointer; a reload builds a complete new
Snapshot and publishes it in one store, so readers see either the old or
the new catalog and never a mix.

	eng, _ := recommend.NewEngine(recommend.DefaultConfig(), logger)
	if _, err := eng.Load(ctx, catalog.NewFileSource("games.json", "")); err != nil {
	    return err
	}
	resp, err := eng.Recommend(ctx, recommend.Request{Name: "Skyrim", N: 5})
*/
package recommend
