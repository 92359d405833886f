// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/holocron/internal/metrics"
)

// Entry represents a cached value with its creation and expiry time.
type Entry[V any] struct {
	Data      V
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Stats tracks cache performance counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Sets        int64
	Evictions   int64
	Dropped     int64
	TotalKeys   int64
	LastCleanup time.Time
}

// MemoryStore is a thread-safe in-memory cache with per-entry TTL.
//
// Expired entries are treated as misses on read and removed lazily.
// Purge removes every expired entry at once and is driven by the
// cache janitor service.
type MemoryStore[V any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[V]
	now     func() time.Time

	hits        atomic.Int64
	misses      atomic.Int64
	sets        atomic.Int64
	evictions   atomic.Int64
	lastCleanup atomic.Int64 // unix nanos
}

// NewMemoryStore creates an empty in-memory store.
//
// Example:
//
//	store := cache.NewMemoryStore[[]models.Record]()
//	store.Set(ctx, "https://swapi.info/api/people", people, 7*24*time.Hour)
//	if people, ok := store.Get(ctx, "https://swapi.info/api/people"); ok {
//	    // Use cached collection
//	}
func NewMemoryStore[V any]() *MemoryStore[V] {
	return &MemoryStore[V]{
		entries: make(map[string]Entry[V]),
		now:     time.Now,
	}
}

// Get returns the value for key if present and not expired.
func (c *MemoryStore[V]) Get(_ context.Context, key string) (V, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !exists {
		c.recordMiss()
		return zero, false
	}

	if !c.now().Before(entry.ExpiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have refreshed it.
		if current, ok := c.entries[key]; ok && !c.now().Before(current.ExpiresAt) {
			delete(c.entries, key)
			c.evictions.Add(1)
			metrics.RecordCacheEvictions(BackendMemory, 1)
		}
		c.mu.Unlock()
		c.recordMiss()
		return zero, false
	}

	c.hits.Add(1)
	metrics.RecordCacheHit(BackendMemory)
	return entry.Data, true
}

// Set stores value under key, overwriting any previous entry.
func (c *MemoryStore[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	now := c.now()

	c.mu.Lock()
	c.entries[key] = Entry[V]{
		Data:      value,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	size := len(c.entries)
	c.mu.Unlock()

	c.sets.Add(1)
	metrics.RecordCacheSet(BackendMemory)
	metrics.CacheEntries.WithLabelValues(BackendMemory).Set(float64(size))
}

// Clear removes all entries.
func (c *MemoryStore[V]) Clear() {
	c.mu.Lock()
	evicted := int64(len(c.entries))
	c.entries = make(map[string]Entry[V])
	c.mu.Unlock()

	c.evictions.Add(evicted)
	metrics.CacheEntries.WithLabelValues(BackendMemory).Set(0)
}

// Len returns the number of stored entries, expired or not.
func (c *MemoryStore[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge removes all expired entries and returns how many were removed.
func (c *MemoryStore[V]) Purge() int {
	now := c.now()

	c.mu.Lock()
	removed := 0
	for key, entry := range c.entries {
		if !now.Before(entry.ExpiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	c.evictions.Add(int64(removed))
	c.lastCleanup.Store(now.UnixNano())
	metrics.RecordCacheEvictions(BackendMemory, removed)
	metrics.CacheEntries.WithLabelValues(BackendMemory).Set(float64(size))
	return removed
}

// Stats returns a snapshot of the store's counters.
func (c *MemoryStore[V]) Stats() Stats {
	s := Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Sets:      c.sets.Load(),
		Evictions: c.evictions.Load(),
		TotalKeys: int64(c.Len()),
	}
	if ns := c.lastCleanup.Load(); ns != 0 {
		s.LastCleanup = time.Unix(0, ns)
	}
	return s
}

func (c *MemoryStore[V]) recordMiss() {
	c.misses.Add(1)
	metrics.RecordCacheMiss(BackendMemory)
}
