// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamematch/internal/catalog"
	"github.com/tomtom215/gamematch/internal/logging"
)

type staticSource struct {
	items []catalog.Item
	err   error
}

func (s *staticSource) Load(context.Context) ([]catalog.Item, error) { return s.items, s.err }
func (s *staticSource) String() string { return "static" }

func newTestEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return e
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero default", func(c *Config) { c.Limits.DefaultN = 0 }},
		{"max below default", func(c *Config) { c.Limits.MaxN = 2 }},
		{"min score above one", func(c *Config) { c.Ranking.MinScore = 1.5 }},
		{"cache without entries", func(c *Config) { c.Cache.MaxEntries = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
				t.Error("expected config error")
			}
		})
	}
}

func TestEngine_NotLoaded(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	if e.Snapshot() != nil {
		t.Fatal("new engine should have no snapshot")
	}
	_, err := e.Recommend(context.Background(), Request{Name: "A"})
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Recommend() before load error = %v, want ErrEmptyCatalog", err)
	}
	if st := e.Status(); st.Loaded || st.Errors != 1 {
		t.Errorf("Status() = %+v", st)
	}
}

func TestEngine_LoadAndRecommend(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	snap, err := e.Load(context.Background(), &staticSource{items: rpgCatalog()})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if snap.Generation != 1 || snap.Source != "static" {
		t.Errorf("snapshot = gen %d source %q", snap.Generation, snap.Source)
	}

	ctx := logging.ContextWithRequestID(context.Background(), "req-7")
	resp, err := e.Recommend(ctx, Request{Name: "A"})
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if want := []string{"B", "D", "C", "E", "F"}; !reflect.DeepEqual(resp.Names(), want) {
		t.Errorf("Names() = %v, want %v", resp.Names(), want)
	}
	md := resp.Metadata
	if md.N != 5 || md.RequestID != "req-7" || md.CacheHit || md.Generation != 1 {
		t.Errorf("metadata = %+v", md)
	}

	again, err := e.Recommend(ctx, Request{Name: "A"})
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if !again.Metadata.CacheHit {
		t.Error("second identical request should hit the cache")
	}
	if !reflect.DeepEqual(again.Names(), resp.Names()) {
		t.Errorf("cached names = %v, want %v", again.Names(), resp.Names())
	}

	st := e.Status()
	if !st.Loaded || st.Items != 6 || st.Requests != 2 || st.CacheHits != 1 || st.CacheMisses != 1 {
		t.Errorf("Status() = %+v", st)
	}
}

func TestEngine_CountHandling(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Limits.DefaultN = 2
	cfg.Limits.MaxN = 3
	e := newTestEngine(t, cfg)
	if _, err := e.Load(context.Background(), &staticSource{items: rpgCatalog()}); err != nil {
		t.Fatal(err)
	}

	resp, err := e.Recommend(context.Background(), Request{Name: "A", N: 50})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Metadata.N != 3 || len(resp.Recommendations) != 3 {
		t.Errorf("clamped request returned n=%d len=%d", resp.Metadata.N, len(resp.Recommendations))
	}

	resp, err = e.Recommend(context.Background(), Request{Name: "A"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Metadata.N != 2 || len(resp.Recommendations) != 2 {
		t.Errorf("default request returned n=%d len=%d", resp.Metadata.N, len(resp.Recommendations))
	}

	if _, err := e.Recommend(context.Background(), Request{Name: "A", N: -2}); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("negative n error = %v", err)
	}
	if _, err := e.Recommend(context.Background(), Request{Name: "Zelda"}); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("unknown game error = %v", err)
	}
}

func TestEngine_MinScoreBackfill(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Ranking.MinScore = 0.3
	e := newTestEngine(t, cfg)
	_, err := e.Load(context.Background(), &staticSource{items: items(
		"Alpha", "RPG",
		"Bravo", "Shooter",
		"Charlie", "RPG Shooter",
	)})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := e.Recommend(context.Background(), Request{Name: "Alpha", N: 2})
	if err != nil {
		t.Fatal(err)
	}
	recs := resp.Recommendations
	if len(recs) != 2 || recs[0].Item.Name != "Charlie" || recs[1].Item.Name != "Bravo" {
		t.Fatalf("Recommend() = %v", resp.Names())
	}
	if recs[0].Backfilled || !recs[1].Backfilled || resp.Metadata.Backfilled != 1 {
		t.Errorf("backfill flags = %v %v (meta %d)", recs[0].Backfilled, recs[1].Backfilled, resp.Metadata.Backfilled)
	}
}

func TestEngine_FailedLoadKeepsSnapshot(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	ctx := context.Background()
	if _, err := e.Load(ctx, &staticSource{items: rpgCatalog()}); err != nil {
		t.Fatal(err)
	}

	failures := []struct {
		name string
		src  *staticSource
		want error
	}{
		{"source error", &staticSource{err: errors.New("disk gone")}, nil},
		{"duplicate names", &staticSource{items: items("X", "RPG", "X", "RPG")}, catalog.ErrDuplicateName},
		{"empty", &staticSource{}, ErrEmptyCatalog},
		{"stop words", &staticSource{items: items("The", "Of")}, ErrDegenerateVocabulary},
	}
	for _, f := range failures {
		_, err := e.Load(ctx, f.src)
		if err == nil {
			t.Errorf("%s: expected error", f.name)
		}
		if f.want != nil && !errors.Is(err, f.want) {
			t.Errorf("%s: error = %v, want %v", f.name, err, f.want)
		}
	}

	snap := e.Snapshot()
	if snap == nil || snap.Generation != 1 || snap.Catalog.Len() != 6 {
		t.Fatalf("previous snapshot not kept: %+v", snap)
	}
	if _, err := e.Recommend(ctx, Request{Name: "A"}); err != nil {
		t.Errorf("Recommend() after failed loads: %v", err)
	}
}

func TestEngine_SwapInvalidatesCache(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	ctx := context.Background()
	if _, err := e.Load(ctx, &staticSource{items: rpgCatalog()}); err != nil {
		t.Fatal(err)
	}
	first, _ := e.Recommend(ctx, Request{Name: "A", N: 2})

	cat, err := catalog.New(items("A", "Puzzle", "B", "RPG", "Z", "Puzzle"))
	if err != nil {
		t.Fatal(err)
	}
	snap, err := e.Swap(cat)
	if err != nil {
		t.Fatalf("Swap() error: %v", err)
	}
	if snap.Generation != 2 {
		t.Errorf("generation = %d, want 2", snap.Generation)
	}

	second, err := e.Recommend(ctx, Request{Name: "A", N: 2})
	if err != nil {
		t.Fatal(err)
	}
	if second.Metadata.CacheHit {
		t.Error("request after swap must not be served from the old generation")
	}
	if want := []string{"Z", "B"}; !reflect.DeepEqual(second.Names(), want) {
		t.Errorf("after swap Names() = %v, want %v (before: %v)", second.Names(), want, first.Names())
	}
}

// TestEngine_ConcurrentSwap runs readers against continuous swaps between two
// catalogs and checks that each answer comes entirely from one of them.
func TestEngine_ConcurrentSwap(t *testing.T) {
	t.Parallel()

	build := func(prefix string) *catalog.Catalog {
		in := []catalog.Item{{Name: "Hub", Genre: "RPG"}}
		for i := 0; i < 8; i++ {
			in = append(in, catalog.Item{Name: fmt.Sprintf("%s%d", prefix, i), Genre: "RPG Shooter"})
		}
		cat, err := catalog.New(in)
		if err != nil {
			t.Fatal(err)
		}
		return cat
	}
	cats := []*catalog.Catalog{build("old"), build("new")}

	e := newTestEngine(t, nil)
	if _, err := e.Swap(cats[0]); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; ctx.Err() == nil; i++ {
			if _, err := e.Swap(cats[i%2]); err != nil {
				t.Errorf("Swap() error: %v", err)
				return
			}
		}
	}()

	var readers sync.WaitGroup
	for r := 0; r < 8; r++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for i := 0; i < 200; i++ {
				resp, err := e.Recommend(context.Background(), Request{Name: "Hub", N: 5})
				if err != nil {
					t.Errorf("Recommend() error: %v", err)
					return
				}
				names := resp.Names()
				prefix := strings.TrimRight(names[0], "0123456789")
				for _, n := range names {
					if !strings.HasPrefix(n, prefix) {
						t.Errorf("mixed catalogs in one answer: %v", names)
						return
					}
				}
			}
		}()
	}
	readers.Wait()
	cancel()
	wg.Wait()
}
