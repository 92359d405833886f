// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package catalog

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/holocron/internal/cache"
	"github.com/tomtom215/holocron/internal/logging"
	"github.com/tomtom215/holocron/internal/metrics"
	"github.com/tomtom215/holocron/internal/ratelimit"
)

// DefaultTTL is how long a fetched collection is served from cache.
const DefaultTTL = 7 * 24 * time.Hour

// CollectionFetcher loads whole collections from upstream.
type CollectionFetcher interface {
	CollectionURL(resource string) string
	FetchCollection(ctx context.Context, resource string) ([]Record, error)
}

// Enricher post-processes one page of records. It must not fail the
// request and must not mutate the records it is given.
type Enricher interface {
	Enrich(ctx context.Context, records []Record) []Record
}

// EngineConfig tunes an Engine. Zero values select the defaults.
type EngineConfig struct {
	TTL        time.Duration
	PerPage    int
	LinkPrefix string

	// Resources lists the collections the engine serves.
	// Default: people and planets.
	Resources []string

	// Enrichers maps a resource to the step applied to each of its pages.
	Enrichers map[string]Enricher
}

// Engine answers filtered, sorted, paginated listing queries over cached
// upstream collections.
type Engine struct {
	store      cache.Store[[]Record]
	limiter    ratelimit.Limiter
	upstream   CollectionFetcher
	ttl        time.Duration
	perPage    int
	linkPrefix string
	resources  map[string]struct{}
	enrichers  map[string]Enricher

	flights singleflight.Group
}

// NewEngine creates an Engine. store, limiter and upstream are shared with
// the rest of the process and must be safe for concurrent use.
func NewEngine(store cache.Store[[]Record], limiter ratelimit.Limiter, upstream CollectionFetcher, cfg EngineConfig) *Engine {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = DefaultPerPage
	}
	if len(cfg.Resources) == 0 {
		cfg.Resources = []string{ResourcePeople, ResourcePlanets}
	}

	resources := make(map[string]struct{}, len(cfg.Resources))
	for _, r := range cfg.Resources {
		resources[r] = struct{}{}
	}

	enrichers := make(map[string]Enricher, len(cfg.Enrichers))
	for r, e := range cfg.Enrichers {
		enrichers[r] = e
	}

	return &Engine{
		store:      store,
		limiter:    limiter,
		upstream:   upstream,
		ttl:        cfg.TTL,
		perPage:    cfg.PerPage,
		linkPrefix: cfg.LinkPrefix,
		resources:  resources,
		enrichers:  enrichers,
	}
}

// Serves reports whether resource is one of the engine's collections.
func (e *Engine) Serves(resource string) bool {
	_, ok := e.resources[resource]
	return ok
}

// ListPage returns one page of q.Resource. The sort field is validated
// before anything else, so an invalid query never reaches the cache or
// upstream. A page below 1 is treated as 1.
func (e *Engine) ListPage(ctx context.Context, q ListQuery) (*PageResult, error) {
	if err := ValidateSortField(q.SortField); err != nil {
		return nil, err
	}
	if !e.Serves(q.Resource) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, q.Resource)
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = e.perPage
	}

	collection, err := e.Collection(ctx, q.Resource)
	if err != nil {
		return nil, err
	}

	filtered := filterByName(collection, q.Search)
	sortRecords(filtered, q.SortField, q.Descending)

	results := paginate(filtered, q.Page, q.PerPage)
	next, previous := pageLinks(e.linkPrefix, q, len(filtered))

	if enricher, ok := e.enrichers[q.Resource]; ok && len(results) > 0 {
		results = enricher.Enrich(ctx, results)
	}

	return &PageResult{
		Count:    len(filtered),
		Next:     next,
		Previous: previous,
		Results:  results,
	}, nil
}

// Collection returns the full collection for resource, from cache when
// fresh. The returned slice is shared and must be treated as read-only.
func (e *Engine) Collection(ctx context.Context, resource string) ([]Record, error) {
	key := e.upstream.CollectionURL(resource)

	if records, ok := e.store.Get(ctx, key); ok {
		return records, nil
	}

	// The shared fetch outlives any single caller; each caller can still
	// give up on its own context.
	ch := e.flights.DoChan(key, func() (interface{}, error) {
		return e.fetchAndStore(context.WithoutCancel(ctx), resource, key)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			metrics.CollectionFetchesShared.Inc()
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Record), nil
	}
}

func (e *Engine) fetchAndStore(ctx context.Context, resource, key string) ([]Record, error) {
	if err := e.limiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("acquire collection permit: %w", err)
	}

	records, err := e.upstream.FetchCollection(ctx, resource)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("resource", resource).Msg("Collection fetch failed")
		return nil, fmt.Errorf("fetch %s: %w", resource, err)
	}

	e.store.Set(ctx, key, records, e.ttl)

	logging.Ctx(ctx).Info().
		Str("resource", resource).
		Int("records", len(records)).
		Dur("ttl", e.ttl).
		Msg("Cached upstream collection")

	return records, nil
}
