// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package api

import (
	"context"
	"time"

	"github.com/tomtom215/holocron/internal/catalog"
)

// Catalog is the part of catalog.Engine the handlers use.
type Catalog interface {
	ListPage(ctx context.Context, q catalog.ListQuery) (*catalog.PageResult, error)
	Serves(resource string) bool
}

// BreakerState reports whether the upstream circuit breaker is open.
// swapi.CircuitBreakerClient satisfies it.
type BreakerState interface {
	Open() bool
}

// Handler handles all HTTP API requests
type Handler struct {
	catalog   Catalog
	breaker   BreakerState
	startTime time.Time
}

// NewHandler creates a new Handler. breaker may be nil when the circuit
// breaker is disabled, in which case readiness never reports it.
func NewHandler(c Catalog, breaker BreakerState) *Handler {
	return &Handler{
		catalog:   c,
		breaker:   breaker,
		startTime: time.Now(),
	}
}
