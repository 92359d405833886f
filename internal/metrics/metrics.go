// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "holocron"

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_active_requests",
			Help:      "Current number of active API requests",
		},
	)

	// Upstream catalog metrics. kind is "collection" or "reference".
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of outbound requests to the upstream catalog",
		},
		[]string{"kind", "status"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Outbound upstream request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// Resource cache metrics
	CacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Resource cache operations by result (hit, miss, set, drop, evict)",
		},
		[]string{"backend", "result"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Current number of cached collections",
		},
		[]string{"backend"},
	)

	// Outbound rate limiter metrics
	RateLimitWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ratelimit_wait_seconds",
			Help:      "Time spent waiting for an outbound rate limiter slot",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.2, 0.5, 1, 2, 5},
		},
		[]string{"limiter"},
	)

	// Cross-reference enrichment metrics
	ReferenceResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reference_resolutions_total",
			Help:      "Homeworld reference lookups by outcome (resolved, unresolved)",
		},
		[]string{"outcome"},
	)

	CollectionFetchesShared = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collection_fetches_shared_total",
			Help:      "Cold-cache requests that joined an in-flight collection fetch",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_requests_total",
			Help:      "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state_transitions_total",
			Help:      "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordUpstreamRequest records one outbound call. A zero status means the
// request never produced an HTTP response (transport fault or timeout).
func RecordUpstreamRequest(kind string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	UpstreamRequestsTotal.WithLabelValues(kind, label).Inc()
	UpstreamRequestDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordCacheHit, RecordCacheMiss, RecordCacheSet and RecordCacheDrop count cache operations per backend.
func RecordCacheHit(backend string)  { CacheOperations.WithLabelValues(backend, "hit").Inc() }
func RecordCacheMiss(backend string) { CacheOperations.WithLabelValues(backend, "miss").Inc() }
func RecordCacheSet(backend string)  { CacheOperations.WithLabelValues(backend, "set").Inc() }
func RecordCacheDrop(backend string) { CacheOperations.WithLabelValues(backend, "drop").Inc() }

// RecordCacheEvictions counts expired entries removed by a purge.
func RecordCacheEvictions(backend string, n int) {
	if n > 0 {
		CacheOperations.WithLabelValues(backend, "evict").Add(float64(n))
	}
}

// RecordRateLimitWait observes how long a caller waited on a limiter.
func RecordRateLimitWait(limiter string, waited time.Duration) {
	RateLimitWait.WithLabelValues(limiter).Observe(waited.Seconds())
}

// RecordReferenceResolution counts one homeworld lookup.
func RecordReferenceResolution(resolved bool) {
	if resolved {
		ReferenceResolutions.WithLabelValues("resolved").Inc()
		return
	}
	ReferenceResolutions.WithLabelValues("unresolved").Inc()
}
