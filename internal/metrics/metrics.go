// Package metrics exposes the service's prometheus collectors and small
// helpers to record into them.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation lifecycle
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ahara_generations_total",
			Help: "Recommendation generations by outcome",
		},
		[]string{"outcome"}, // "generated", "no_profile", "empty_catalog", "all_writes_failed", "store_error"
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ahara_generation_duration_seconds",
			Help:    "Time spent scoring and persisting one batch",
			Buckets: prometheus.DefBuckets,
		},
	)

	PersistedRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ahara_recommendation_rows_total",
			Help: "Recommendation rows written during generation",
		},
		[]string{"result"}, // "ok", "failed"
	)

	JoinMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ahara_food_join_misses_total",
			Help: "Recommendations whose food is no longer in the catalog",
		},
	)

	RatingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ahara_ratings_total",
			Help: "Rating submissions by result",
		},
		[]string{"result"}, // "ok", "invalid", "unknown", "failed"
	)

	StaleResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ahara_stale_responses_total",
			Help: "Load or generate results discarded because a newer request started",
		},
		[]string{"operation"},
	)

	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ahara_store_errors_total",
			Help: "Failed store operations",
		},
		[]string{"operation"},
	)

	// Catalog cache
	CatalogCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ahara_catalog_cache_requests_total",
			Help: "Catalog cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)

	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ahara_api_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ahara_api_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ahara_rate_limited_total",
			Help: "Requests rejected by the generation rate limiter",
		},
	)
)

// RecordGeneration records one generation attempt.
func RecordGeneration(outcome string, duration time.Duration) {
	GenerationsTotal.WithLabelValues(outcome).Inc()
	GenerationDuration.Observe(duration.Seconds())
}

// RecordPersisted counts rows written and rows dropped in one batch.
func RecordPersisted(ok, failed int) {
	PersistedRowsTotal.WithLabelValues("ok").Add(float64(ok))
	PersistedRowsTotal.WithLabelValues("failed").Add(float64(failed))
}

func RecordJoinMiss() {
	JoinMissesTotal.Inc()
}

func RecordRating(result string) {
	RatingsTotal.WithLabelValues(result).Inc()
}

func RecordStale(operation string) {
	StaleResponsesTotal.WithLabelValues(operation).Inc()
}

func RecordStoreError(operation string) {
	StoreErrorsTotal.WithLabelValues(operation).Inc()
}

func RecordCacheLookup(result string) {
	CatalogCacheRequests.WithLabelValues(result).Inc()
}

// RecordAPIRequest records one served HTTP request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
