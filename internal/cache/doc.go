// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

/*
Package cache provides the Resource Cache: a thread-safe, TTL-based store for
full upstream collections, keyed by the collection URL.

# Backends

  - MemoryStore: RWMutex-guarded map with per-entry expiry. Reads of an
    expired entry are misses and remove it. Purge sweeps all expired entries
    and is run periodically by the cache janitor service.
  - RistrettoStore: dgraph-io/ristretto with SetWithTTL and a fixed cost of 1
    per entry, for deployments that want a hard bound on cached collections.

Both satisfy Store[V] and report hits, misses and sets to Prometheus.

# Semantics

  - Last write wins. Concurrent Set calls for the same key never corrupt state.
  - There is no merge. A Set always replaces the whole value.
  - Cached values are shared between readers and must not be mutated.
*/
package cache
