// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package cache

import (
	"context"
	"fmt"
	"time"
)

// Backend names accepted by NewStore.
const (
	BackendMemory    = "memory"
	BackendRistretto = "ristretto"
)

// Store is a key/value cache with per-entry TTL. The context marks the call
// as a potential I/O boundary for backends that live out of process.
type Store[V any] interface {
	// Get returns the value and true if found and not expired.
	Get(ctx context.Context, key string) (V, bool)

	// Set stores a value, overwriting any previous entry for key.
	Set(ctx context.Context, key string, value V, ttl time.Duration)

	// Clear removes all entries.
	Clear()

	// Stats returns cache statistics.
	Stats() Stats
}

// Options configures NewStore.
type Options struct {
	// Backend is BackendMemory (default) or BackendRistretto.
	Backend string

	// MaxEntries bounds the ristretto backend.
	MaxEntries int64
}

// NewStore creates a Store for the configured backend.
//
//	store, err := cache.NewStore[[]models.Record](cache.Options{Backend: cfg.Cache.Backend})
func NewStore[V any](opts Options) (Store[V], error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore[V](), nil
	case BackendRistretto:
		return NewRistrettoStore[V](opts.MaxEntries)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}

// Verify interface implementations at compile time
var (
	_ Store[int] = (*MemoryStore[int])(nil)
	_ Store[int] = (*RistrettoStore[int])(nil)
)
