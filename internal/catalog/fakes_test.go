// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/holocron/internal/cache"
)

// fakeUpstream serves canned collections and counts fetches.
type fakeUpstream struct {
	mu          sync.Mutex
	collections map[string][]Record
	err         error
	calls       map[string]int

	// gate, when set, blocks every fetch until closed.
	gate chan struct{}
}

func newFakeUpstream(collections map[string][]Record) *fakeUpstream {
	return &fakeUpstream{collections: collections, calls: make(map[string]int)}
}

func (f *fakeUpstream) CollectionURL(resource string) string {
	return "https://swapi.test/api/" + resource
}

func (f *fakeUpstream) FetchCollection(ctx context.Context, resource string) ([]Record, error) {
	f.mu.Lock()
	f.calls[resource]++
	gate := f.gate
	err := f.err
	records := f.collections[resource]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (f *fakeUpstream) Calls(resource string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[resource]
}

// fakeReferences serves single records by URL and counts lookups per URL.
type fakeReferences struct {
	mu       sync.Mutex
	records  map[string]Record
	calls    map[string]int
	inFlight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
}

func newFakeReferences(records map[string]Record) *fakeReferences {
	return &fakeReferences{records: records, calls: make(map[string]int)}
}

func (f *fakeReferences) FetchByReference(_ context.Context, rawURL string) (Record, bool) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[rawURL]++
	r, ok := f.records[rawURL]
	return r, ok
}

func (f *fakeReferences) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeReferences) CallsFor(rawURL string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[rawURL]
}

// countingLimiter never waits and counts permits.
type countingLimiter struct {
	acquired atomic.Int32
	err      error
}

func (l *countingLimiter) Acquire(ctx context.Context) error {
	if l.err != nil {
		return l.err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	l.acquired.Add(1)
	return nil
}

// countingStore wraps a MemoryStore and counts reads.
type countingStore struct {
	*cache.MemoryStore[[]Record]
	gets atomic.Int32
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryStore: cache.NewMemoryStore[[]Record]()}
}

func (s *countingStore) Get(ctx context.Context, key string) ([]Record, bool) {
	s.gets.Add(1)
	return s.MemoryStore.Get(ctx, key)
}

var errUpstreamDown = errors.New("upstream down")

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.String(SortName)
	}
	return out
}
