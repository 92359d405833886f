// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/holocron/internal/logging"
	"github.com/tomtom215/holocron/internal/metrics"
	"github.com/tomtom215/holocron/internal/models"
	"github.com/tomtom215/holocron/internal/ratelimit"
)

// UnknownHomeworld is the homeworld_name of a person whose homeworld is
// missing or could not be resolved.
const UnknownHomeworld = "Unknown"

// DefaultReferenceConcurrency caps in-flight lookups for one page.
const DefaultReferenceConcurrency = 16

// ReferenceFetcher loads a single record by absolute URL. ok is false on
// any failure.
type ReferenceFetcher interface {
	FetchByReference(ctx context.Context, rawURL string) (record Record, ok bool)
}

// HomeworldResolver adds homeworld_name to person records.
type HomeworldResolver struct {
	fetcher     ReferenceFetcher
	limiter     ratelimit.Limiter
	concurrency int
}

// NewHomeworldResolver creates a resolver that fetches through fetcher,
// pacing every lookup with limiter and running at most concurrency of them
// at once.
func NewHomeworldResolver(fetcher ReferenceFetcher, limiter ratelimit.Limiter, concurrency int) *HomeworldResolver {
	if concurrency <= 0 {
		concurrency = DefaultReferenceConcurrency
	}
	return &HomeworldResolver{
		fetcher:     fetcher,
		limiter:     limiter,
		concurrency: concurrency,
	}
}

// Enrich returns copies of people, in the same order, each carrying
// homeworld_name. Every distinct homeworld URL is fetched exactly once.
func (r *HomeworldResolver) Enrich(ctx context.Context, people []Record) []Record {
	names := r.resolve(ctx, distinctHomeworlds(people))

	out := make([]Record, len(people))
	for i, person := range people {
		enriched := person.Clone()
		name, ok := names[person.String(models.FieldHomeworld)]
		if !ok {
			name = UnknownHomeworld
		}
		enriched[models.FieldHomeworldName] = name
		out[i] = enriched
	}
	return out
}

// resolve fetches every URL and maps it to a display name. Lookups never
// cancel each other: each goroutine records its own outcome and returns nil.
func (r *HomeworldResolver) resolve(ctx context.Context, urls []string) map[string]string {
	names := make(map[string]string, len(urls))
	if len(urls) == 0 {
		return names
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(r.concurrency)

	for _, u := range urls {
		g.Go(func() error {
			name := r.lookup(ctx, u)
			mu.Lock()
			names[u] = name
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return names
}

func (r *HomeworldResolver) lookup(ctx context.Context, rawURL string) string {
	if err := r.limiter.Acquire(ctx); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("url", rawURL).Msg("Homeworld lookup skipped")
		metrics.RecordReferenceResolution(false)
		return UnknownHomeworld
	}

	record, ok := r.fetcher.FetchByReference(ctx, rawURL)
	if !ok {
		metrics.RecordReferenceResolution(false)
		return UnknownHomeworld
	}

	name := record.String(models.FieldName)
	if name == "" {
		logging.Ctx(ctx).Debug().Str("url", rawURL).Msg("Homeworld record has no name")
		metrics.RecordReferenceResolution(false)
		return UnknownHomeworld
	}

	metrics.RecordReferenceResolution(true)
	return name
}

// distinctHomeworlds returns the non-empty homeworld URLs in first-seen order.
func distinctHomeworlds(people []Record) []string {
	seen := make(map[string]struct{}, len(people))
	var urls []string
	for _, p := range people {
		u := p.String(models.FieldHomeworld)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	return urls
}
