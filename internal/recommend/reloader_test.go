// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/gamematch/internal/catalog"
)

// memStore is a writable in-memory source.
type memStore struct {
	mu    sync.Mutex
	items []catalog.Item
}

func (m *memStore) Load(context.Context) ([]catalog.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]catalog.Item(nil), m.items...), nil
}

func (m *memStore) Replace(_ context.Context, items []catalog.Item) error {
	if _, err := catalog.New(items); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]catalog.Item(nil), items...)
	return nil
}

func (m *memStore) String() string { return "mem" }

func TestReloader_Throttle(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	r := NewReloader(e, &staticSource{items: rpgCatalog()}, time.Hour)

	if _, err := r.Reload(context.Background()); err != nil {
		t.Fatalf("first Reload() error: %v", err)
	}
	if _, err := r.Reload(context.Background()); !errors.Is(err, ErrReloadThrottled) {
		t.Errorf("second Reload() error = %v, want ErrReloadThrottled", err)
	}
	if gen := e.Snapshot().Generation; gen != 1 {
		t.Errorf("generation = %d, want 1", gen)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := r.ReloadWait(ctx); err == nil {
		t.Error("ReloadWait() should fail when the slot is beyond the deadline")
	}
}

func TestReloader_Unthrottled(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	r := NewReloader(e, &staticSource{items: rpgCatalog()}, 0)

	for i := 0; i < 3; i++ {
		if _, err := r.ReloadWait(context.Background()); err != nil {
			t.Fatalf("ReloadWait() #%d error: %v", i, err)
		}
	}
	if gen := e.Snapshot().Generation; gen != 3 {
		t.Errorf("generation = %d, want 3", gen)
	}
}

func TestReloader_Replace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := &memStore{items: rpgCatalog()}
	e := newTestEngine(t, nil)
	r := NewReloader(e, store, time.Hour)

	if !r.Writable() {
		t.Fatal("memStore should be writable")
	}
	if _, err := r.Reload(ctx); err != nil {
		t.Fatal(err)
	}

	snap, err := r.Replace(ctx, items("Doom", "Shooter", "Quake", "Shooter", "Myst", "Puzzle"))
	if err != nil {
		t.Fatalf("Replace() error: %v", err)
	}
	if snap.Generation != 2 || snap.Catalog.Len() != 3 {
		t.Errorf("snapshot gen=%d items=%d", snap.Generation, snap.Catalog.Len())
	}
	got, err := snap.Recommend("Doom", 1)
	if err != nil || !reflect.DeepEqual(got, []string{"Quake"}) {
		t.Errorf("Recommend(Doom) = %v, %v", got, err)
	}

	_, err = r.Replace(ctx, items("X", "RPG", "X", "RPG"))
	if !errors.Is(err, catalog.ErrDuplicateName) {
		t.Errorf("Replace(duplicates) error = %v", err)
	}
	if e.Snapshot().Generation != 2 {
		t.Error("rejected replace must keep the previous snapshot")
	}
}

func TestReloader_ReadOnly(t *testing.T) {
	t.Parallel()

	r := NewReloader(newTestEngine(t, nil), &staticSource{items: rpgCatalog()}, 0)
	if r.Writable() {
		t.Error("staticSource should not be writable")
	}
	if _, err := r.Replace(context.Background(), rpgCatalog()); !errors.Is(err, catalog.ErrReadOnly) {
		t.Errorf("Replace() error = %v, want ErrReadOnly", err)
	}
}
