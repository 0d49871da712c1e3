// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamematch/internal/cache"
	"github.com/tomtom215/gamematch/internal/catalog"
	"github.com/tomtom215/gamematch/internal/logging"
	"github.com/tomtom215/gamematch/internal/metrics"
)

const resultCacheType = "recommend"

// Engine serves recommendations from the current Snapshot. It is safe for
// concurrent use; loads are serialized so generations increase by one.
type Engine struct {
	config    *Config
	logger    zerolog.Logger
	tokenizer *Tokenizer

	current atomic.Pointer[Snapshot]
	loadMu  sync.Mutex

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64

	results       *cache.LRU[string, []Recommendation]
	lastEvictions atomic.Int64
}

// NewEngine creates an engine with no snapshot loaded.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	tok, err := NewTokenizer()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		config:    cfg,
		logger:    logger.With().Str("component", "recommend").Logger(),
		tokenizer: tok,
	}
	if cfg.Cache.Enabled {
		e.results = cache.NewLRU[string, []Recommendation](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// Snapshot returns the live snapshot, or nil before the first load.
func (e *Engine) Snapshot() *Snapshot {
	return e.current.Load()
}

// Load reads src, validates and vectorizes the catalog, and publishes it.
// On any error the previous snapshot stays live.
func (e *Engine) Load(ctx context.Context, src catalog.Source) (*Snapshot, error) {
	start := time.Now()
	name := src.String()

	items, err := src.Load(ctx)
	if err != nil {
		e.recordLoadFailure(name, start, err)
		return nil, fmt.Errorf("load catalog from %s: %w", name, err)
	}

	cat, err := catalog.New(items)
	if err != nil {
		e.recordLoadFailure(name, start, err)
		return nil, fmt.Errorf("validate catalog from %s: %w", name, err)
	}

	return e.install(cat, name, start)
}

// Swap publishes an already validated catalog.
func (e *Engine) Swap(cat *catalog.Catalog) (*Snapshot, error) {
	return e.install(cat, "direct", time.Now())
}

func (e *Engine) install(cat *catalog.Catalog, source string, start time.Time) (*Snapshot, error) {
	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	var gen uint64 = 1
	if prev := e.current.Load(); prev != nil {
		gen = prev.Generation + 1
	}

	snap, err := newSnapshot(e.tokenizer, cat, gen)
	if err != nil {
		e.recordLoadFailure(source, start, err)
		return nil, fmt.Errorf("vectorize catalog from %s: %w", source, err)
	}
	snap.Source = source

	e.current.Store(snap)
	if e.results != nil {
		// Old keys can no longer match; dropping them frees memory early.
		e.results.Clear()
	}

	metrics.RecordCatalogLoad(source, cat.Len(), snap.Vocabulary.Len(), gen, time.Since(start), nil)
	e.logger.Info().
		Str("source", source).
		Uint64("generation", gen).
		Int("items", cat.Len()).
		Int("vocabulary", snap.Vocabulary.Len()).
		Dur("duration", time.Since(start)).
		Msg("catalog snapshot published")

	return snap, nil
}

func (e *Engine) recordLoadFailure(source string, start time.Time, err error) {
	metrics.RecordCatalogLoad(source, 0, 0, 0, time.Since(start), err)
	e.logger.Warn().Err(err).Str("source", source).Msg("catalog load failed, keeping previous snapshot")
}

// Recommend answers req from the live snapshot.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	snap := e.current.Load()
	if snap == nil {
		e.fail("unavailable")
		return nil, fmt.Errorf("no catalog loaded: %w", ErrEmptyCatalog)
	}

	req, err := e.prepareRequest(ctx, req)
	if err != nil {
		e.fail("invalid")
		return nil, err
	}
	logger := e.createRequestLogger(req)

	key := cacheKey(snap.Generation, req.Name, req.N)
	if recs, ok := e.lookup(key); ok {
		resp := e.buildResponse(req, snap, recs, start, true)
		metrics.RecordRecommendation("ok", len(recs), 0, 0)
		logger.Debug().Int("returned", len(recs)).Msg("recommendation served from cache")
		return resp, nil
	}

	rankStart := time.Now()
	recs, err := snap.rank(req.Name, req.N, e.config.Ranking.MinScore)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			e.fail("not_found")
		} else {
			e.fail("error")
		}
		logger.Debug().Err(err).Msg("recommendation failed")
		return nil, err
	}
	rankDur := time.Since(rankStart)

	e.store(key, recs)
	resp := e.buildResponse(req, snap, recs, start, false)
	metrics.RecordRecommendation("ok", len(recs), resp.Metadata.Backfilled, rankDur)

	logger.Debug().
		Int("returned", len(recs)).
		Int("backfilled", resp.Metadata.Backfilled).
		Dur("rank_duration", rankDur).
		Msg("recommendation complete")

	return resp, nil
}

func (e *Engine) fail(outcome string) {
	e.errorCount.Add(1)
	metrics.RecordRecommendation(outcome, 0, 0, 0)
}

// prepareRequest applies count defaults and fills the request ID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) (Request, error) {
	if req.N < 0 {
		return req, fmt.Errorf("%w: %d", ErrInvalidCount, req.N)
	}
	if req.N == 0 {
		req.N = e.config.Limits.DefaultN
	}
	if req.N > e.config.Limits.MaxN {
		req.N = e.config.Limits.MaxN
	}

	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}
	return req, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("game", req.Name).
		Int("n", req.N).
		Logger()
}

// cacheKey is generation:name:n. Generation and n are numeric, so a colon
// inside name cannot make two keys collide.
func cacheKey(generation uint64, name string, n int) string {
	return strconv.FormatUint(generation, 10) + ":" + name + ":" + strconv.Itoa(n)
}

func (e *Engine) lookup(key string) ([]Recommendation, bool) {
	if e.results == nil {
		return nil, false
	}
	recs, ok := e.results.Get(key)
	metrics.RecordCacheAccess(resultCacheType, ok)
	if !ok {
		e.cacheMisses.Add(1)
		return nil, false
	}
	e.cacheHits.Add(1)
	return recs, true
}

func (e *Engine) store(key string, recs []Recommendation) {
	if e.results == nil {
		return
	}
	e.results.Add(key, recs)

	stats := e.results.Stats()
	prev := e.lastEvictions.Swap(stats.Evictions)
	metrics.UpdateCacheStats(resultCacheType, stats.Size, stats.Evictions-prev)
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponse(req Request, snap *Snapshot, recs []Recommendation, start time.Time, cacheHit bool) *Response {
	// Cached slices are shared; hand out a copy.
	out := make([]Recommendation, len(recs))
	copy(out, recs)

	backfilled := 0
	for i := range out {
		if out[i].Backfilled {
			backfilled++
		}
	}

	return &Response{
		Recommendations: out,
		Metadata: ResponseMetadata{
			RequestID:   req.RequestID,
			Query:       req.Name,
			N:           req.N,
			Generation:  snap.Generation,
			Backfilled:  backfilled,
			CacheHit:    cacheHit,
			LatencyMS:   time.Since(start).Milliseconds(),
			GeneratedAt: time.Now().UTC(),
		},
	}
}

// Status returns engine counters and the live snapshot summary.
func (e *Engine) Status() Status {
	st := Status{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		Errors:      e.errorCount.Load(),
	}
	if e.results != nil {
		st.Cache = e.results.Stats()
	}
	if snap := e.current.Load(); snap != nil {
		st.Loaded = true
		st.Generation = snap.Generation
		st.Items = snap.Catalog.Len()
		st.VocabularySize = snap.Vocabulary.Len()
		st.BuiltAt = snap.BuiltAt
		st.Source = snap.Source
	}
	return st
}

// Config returns the engine configuration. It must not be modified.
func (e *Engine) Config() *Config {
	return e.config
}
