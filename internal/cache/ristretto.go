// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/tomtom215/holocron/internal/logging"
	"github.com/tomtom215/holocron/internal/metrics"
)

// ristrettoCache is the subset of *ristretto.Cache the store uses.
type ristrettoCache[V any] interface {
	Get(key string) (V, bool)
	SetWithTTL(key string, value V, cost int64, ttl time.Duration) bool
	Wait()
	Clear()
	Close()
}

// RistrettoStore is a cost-bounded cache backed by dgraph-io/ristretto.
// Every entry costs 1, so maxEntries is the number of collections kept.
type RistrettoStore[V any] struct {
	cache ristrettoCache[V]

	hits    atomic.Int64
	misses  atomic.Int64
	sets    atomic.Int64
	dropped atomic.Int64
}

// NewRistrettoStore creates a ristretto-backed store holding at most maxEntries values.
func NewRistrettoStore[V any](maxEntries int64) (*RistrettoStore[V], error) {
	if maxEntries < 1 {
		return nil, fmt.Errorf("ristretto store needs at least one entry, got %d", maxEntries)
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	return &RistrettoStore[V]{cache: c}, nil
}

// Get returns the value for key if present and not expired.
func (s *RistrettoStore[V]) Get(_ context.Context, key string) (V, bool) {
	value, ok := s.cache.Get(key)
	if !ok {
		s.misses.Add(1)
		metrics.RecordCacheMiss(BackendRistretto)
		return value, false
	}
	s.hits.Add(1)
	metrics.RecordCacheHit(BackendRistretto)
	return value, true
}

// Set stores value under key. Ristretto buffers writes, so Set waits for the
// buffer to drain to make the value visible to the next Get. A write the
// buffer rejects is retried once after draining; a second rejection is
// logged and counted as dropped.
func (s *RistrettoStore[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	if !s.cache.SetWithTTL(key, value, 1, ttl) {
		s.cache.Wait()
		if !s.cache.SetWithTTL(key, value, 1, ttl) {
			s.dropped.Add(1)
			metrics.RecordCacheDrop(BackendRistretto)
			logging.Warn().Str("key", key).Msg("Ristretto rejected cache write, entry not stored")
			return
		}
	}
	s.cache.Wait()
	s.sets.Add(1)
	metrics.RecordCacheSet(BackendRistretto)
}

// Clear removes all entries.
func (s *RistrettoStore[V]) Clear() {
	s.cache.Clear()
}

// Stats returns a snapshot of the store's counters.
func (s *RistrettoStore[V]) Stats() Stats {
	return Stats{
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Sets:    s.sets.Load(),
		Dropped: s.dropped.Load(),
	}
}

// Close stops ristretto's background goroutines.
func (s *RistrettoStore[V]) Close() {
	s.cache.Close()
}
