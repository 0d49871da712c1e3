// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

/*
Package metrics defines the Prometheus collectors exported on /metrics.

API Metrics:
  - api_requests_total: requests by method, endpoint, status (counter)
  - api_request_duration_seconds: latency by method, endpoint (histogram)
  - api_active_requests: in-flight requests (gauge)
  - api_rate_limit_hits_total: requests rejected by the rate limiter (counter)

Recommendation Metrics:
  - recommend_requests_total: queries by outcome (ok, not_found, invalid, unavailable, error)
  - recommend_duration_seconds: ranking latency, cache hits excluded (histogram)
  - recommend_results: number of names returned per query (histogram)
  - recommend_backfilled_total: results added by the backfill step (counter)

Catalog Metrics:
  - catalog_items: items in the live snapshot (gauge)
  - catalog_vocabulary_size: tokens in the live vocabulary (gauge)
  - catalog_generation: generation of the live snapshot (gauge)
  - catalog_loads_total: load attempts by source and result (counter)
  - catalog_load_duration_seconds: load plus vectorize time (histogram)
  - catalog_last_load_timestamp: unix time of the last successful load (gauge)

Cache Metrics:
  - cache_hits_total, cache_misses_total, cache_evictions_total by cache_type
  - cache_entries by cache_type (gauge)
*/
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by rate limiting",
		},
		[]string{"endpoint"},
	)

	// Recommendations

	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation queries by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time spent scoring and ranking the catalog for one query",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_results",
			Help:    "Number of recommendations returned per query",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50, 100},
		},
	)

	RecommendBackfilled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_backfilled_total",
			Help: "Total number of results supplied by the backfill step",
		},
	)

	// Catalog

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of items in the live catalog snapshot",
		},
	)

	CatalogVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_vocabulary_size",
			Help: "Number of distinct tokens in the live vocabulary",
		},
	)

	CatalogGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_generation",
			Help: "Generation number of the live catalog snapshot",
		},
	)

	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total number of catalog load attempts",
		},
		[]string{"source", "result"},
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Time to read, validate and vectorize a catalog",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogLastLoad = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_last_load_timestamp",
			Help: "Unix timestamp of the last successful catalog load",
		},
	)

	// Cache

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cache entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions",
		},
		[]string{"cache_type"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records a served query. duration is zero for cache hits.
func RecordRecommendation(outcome string, results, backfilled int, duration time.Duration) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	if outcome != "ok" {
		return
	}
	RecommendResults.Observe(float64(results))
	if backfilled > 0 {
		RecommendBackfilled.Add(float64(backfilled))
	}
	if duration > 0 {
		RecommendDuration.Observe(duration.Seconds())
	}
}

// RecordCatalogLoad records a load attempt. Gauges only move on success.
func RecordCatalogLoad(source string, items, vocabulary int, generation uint64, duration time.Duration, err error) {
	CatalogLoadDuration.Observe(duration.Seconds())
	if err != nil {
		CatalogLoads.WithLabelValues(source, "error").Inc()
		return
	}
	CatalogLoads.WithLabelValues(source, "success").Inc()
	CatalogItems.Set(float64(items))
	CatalogVocabularySize.Set(float64(vocabulary))
	CatalogGeneration.Set(float64(generation))
	CatalogLastLoad.Set(float64(time.Now().Unix()))
}

// RecordCacheAccess records a hit or miss against cacheType.
func RecordCacheAccess(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// UpdateCacheStats sets the size gauge and adds new evictions since the last call.
func UpdateCacheStats(cacheType string, size int, newEvictions int64) {
	CacheSize.WithLabelValues(cacheType).Set(float64(size))
	if newEvictions > 0 {
		CacheEvictions.WithLabelValues(cacheType).Add(float64(newEvictions))
	}
}
