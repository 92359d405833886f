// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

/*
Package catalog implements the listing pipeline behind /api/people and
/api/planets.

A listing request flows through these steps:

 1. Validate the sort field, before any I/O.
 2. Load the full collection from the cache. On a miss, take a permit from
    the collection limiter and fetch from upstream. Concurrent misses for
    one collection share a single fetch (singleflight).
 3. Filter by case-insensitive substring of name.
 4. Stable sort on name or created, ascending or descending.
 5. Slice one page and build next/previous links.
 6. Apply the resource's Enricher, if any. People are enriched with
    homeworld_name by HomeworldResolver.

Collections are fetched whole and all of the above runs locally. Cached
slices are never mutated: filtering always produces a new slice, and
enrichment works on shallow copies of each record.

# Homeworld resolution

HomeworldResolver collects the distinct homeworld URLs on a page and fetches
each one once, concurrently, under a bounded errgroup and the reference
limiter. A failed lookup of any kind degrades to "Unknown" for the affected
people only. The request itself never fails because of enrichment.

# Usage

	engine := catalog.NewEngine(store, collectionLimiter, upstream, catalog.EngineConfig{
		TTL:        cfg.Cache.TTL,
		PerPage:    cfg.API.PageSize,
		LinkPrefix: cfg.API.LinkPrefix,
		Enrichers: map[string]catalog.Enricher{
			catalog.ResourcePeople: catalog.NewHomeworldResolver(upstream, referenceLimiter, 16),
		},
	})

	page, err := engine.ListPage(ctx, catalog.ListQuery{
		Resource:  catalog.ResourcePeople,
		Page:      2,
		Search:    "sky",
		SortField: catalog.SortCreated,
	})
*/
package catalog
