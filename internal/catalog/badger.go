// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/gamematch/internal/logging"
)

// Rows live under a per-generation prefix and catalog:current names the
// live generation. Keys are zero-padded positions so Badger's lexical key
// order equals catalog order.
const (
	currentKey       = "catalog:current"
	generationPrefix = "catalog:gen:"
)

func rowPrefix(gen uint64) []byte {
	return []byte(fmt.Sprintf("%s%08d:item:", generationPrefix, gen))
}

func itemKey(gen uint64, i int) []byte {
	return append(rowPrefix(gen), fmt.Sprintf("%08d", i)...)
}

// ErrStoreClosed is returned by BadgerStore after Close.
var ErrStoreClosed = errors.New("catalog store is closed")

// BadgerStore persists a catalog in BadgerDB. It is the only writable source.
type BadgerStore struct {
	db     *badger.DB
	path   string
	mu     sync.RWMutex
	closed bool
}

// OpenBadgerStore opens (or creates) a store in dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.SyncWrites = true
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	return &BadgerStore{db: db, path: dir}, nil
}

func (s *BadgerStore) String() string {
	return "badger:" + s.path
}

// Load returns the stored items in catalog order.
func (s *BadgerStore) Load(ctx context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	var items []Item
	err := s.db.View(func(txn *badger.Txn) error {
		gen, err := readGeneration(txn)
		if err != nil || gen == 0 {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		prefix := rowPrefix(gen)
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var item Item
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &item)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read catalog store: %w", err)
	}
	return items, nil
}

// Replace validates items and swaps the stored catalog for them. Rows are
// streamed into a fresh generation through a WriteBatch, so catalog size is
// not bound by Badger's transaction limits; the switch to the new
// generation is a single-key commit. Invalid input or a failed write leaves
// the previous catalog in place.
func (s *BadgerStore) Replace(ctx context.Context, items []Item) error {
	cat, err := New(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	var current uint64
	if err := s.db.View(func(txn *badger.Txn) error {
		current, err = readGeneration(txn)
		return err
	}); err != nil {
		return fmt.Errorf("read catalog generation: %w", err)
	}
	next := current + 1

	// Rows left behind by an interrupted Replace.
	if err := s.db.DropPrefix(rowPrefix(next)); err != nil {
		return fmt.Errorf("clear catalog generation %d: %w", next, err)
	}

	if err := s.writeRows(ctx, next, cat.items); err != nil {
		s.discard(next)
		return fmt.Errorf("write catalog store: %w", err)
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(currentKey), []byte(strconv.FormatUint(next, 10)))
	}); err != nil {
		s.discard(next)
		return fmt.Errorf("publish catalog generation %d: %w", next, err)
	}

	if current > 0 {
		s.discard(current)
	}

	logging.Info().
		Str("store", s.path).
		Uint64("generation", next).
		Int("items", cat.Len()).
		Msg("Catalog store replaced")
	return nil
}

func (s *BadgerStore) writeRows(ctx context.Context, gen uint64, items []Item) error {
	wb := s.db.NewWriteBatch()
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			wb.Cancel()
			return err
		}
		data, err := json.Marshal(item)
		if err != nil {
			wb.Cancel()
			return fmt.Errorf("encode item %d: %w", i, err)
		}
		if err := wb.Set(itemKey(gen, i), data); err != nil {
			wb.Cancel()
			return err
		}
	}
	return wb.Flush()
}

// discard drops the rows of gen. Failures only leave garbage behind, which
// the next Replace at that generation clears.
func (s *BadgerStore) discard(gen uint64) {
	if err := s.db.DropPrefix(rowPrefix(gen)); err != nil {
		logging.Warn().Err(err).Str("store", s.path).Uint64("generation", gen).
			Msg("Failed to drop catalog generation")
	}
}

// SeedIfEmpty copies src into the store when it holds no items.
func (s *BadgerStore) SeedIfEmpty(ctx context.Context, src Source) error {
	existing, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	items, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load seed catalog from %s: %w", src, err)
	}
	if err := s.Replace(ctx, items); err != nil {
		return fmt.Errorf("seed catalog store: %w", err)
	}
	return nil
}

// Close closes the underlying database. It is safe to call more than once.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// readGeneration returns the live generation, 0 for an empty store.
func readGeneration(txn *badger.Txn) (uint64, error) {
	item, err := txn.Get([]byte(currentKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var gen uint64
	err = item.Value(func(val []byte) error {
		var perr error
		gen, perr = strconv.ParseUint(string(val), 10, 64)
		return perr
	})
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", currentKey, err)
	}
	return gen, nil
}
