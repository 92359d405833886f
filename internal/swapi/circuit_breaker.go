// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package swapi

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/holocron/internal/config"
	"github.com/tomtom215/holocron/internal/logging"
	"github.com/tomtom215/holocron/internal/metrics"
	"github.com/tomtom215/holocron/internal/models"
)

// BreakerName labels the collection breaker in logs and metrics.
const BreakerName = "swapi-collections"

// CircuitBreakerClient wraps an API with a circuit breaker around collection
// fetches. Reference fetches pass straight through: they never fail loudly
// and a dead homeworld lookup already degrades to a fallback name.
//
// The breaker uses real time (via sony/gobreaker) for its interval and
// timeout. Tests that need a deterministic breaker drive it with failures
// and assert on State rather than sleeping through Timeout.
type CircuitBreakerClient struct {
	api  API
	cb   *gobreaker.CircuitBreaker[[]models.Record]
	name string
}

// NewCircuitBreakerClient wraps api with a breaker configured from cfg.
func NewCircuitBreakerClient(api API, cfg *config.CircuitBreakerConfig) *CircuitBreakerClient {
	name := BreakerName
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	logger := logging.WithComponent("circuit-breaker")
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[[]models.Record](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= threshold
			if trip {
				logger.Warn().
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return trip
		},

		IsSuccessful: isBreakerSuccess,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logger.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &CircuitBreakerClient{api: api, cb: cb, name: name}
}

// isBreakerSuccess decides what counts against the breaker. Client errors
// and caller cancellation say nothing about upstream health.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return !upstreamErr.ServerSide()
	}
	return false
}

// CollectionURL delegates to the wrapped API.
func (cbc *CircuitBreakerClient) CollectionURL(resource string) string {
	return cbc.api.CollectionURL(resource)
}

// FetchCollection retrieves a collection with circuit breaker protection.
func (cbc *CircuitBreakerClient) FetchCollection(ctx context.Context, resource string) ([]models.Record, error) {
	records, err := cbc.cb.Execute(func() ([]models.Record, error) {
		return cbc.api.FetchCollection(ctx, resource)
	})
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		return records, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("resource", resource).Msg("[CIRCUIT BREAKER] Request rejected")
		return nil, &UpstreamError{URL: cbc.api.CollectionURL(resource), Err: err}
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
	return nil, err
}

// FetchByReference is not guarded by the breaker.
func (cbc *CircuitBreakerClient) FetchByReference(ctx context.Context, rawURL string) (models.Record, bool) {
	return cbc.api.FetchByReference(ctx, rawURL)
}

// State returns the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// Open reports whether collection fetches are currently being rejected.
func (cbc *CircuitBreakerClient) Open() bool {
	return cbc.cb.State() == gobreaker.StateOpen
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
