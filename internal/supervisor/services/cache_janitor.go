// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package services

import (
	"context"
	"time"

	"github.com/tomtom215/holocron/internal/logging"
)

// Purger removes expired entries and reports how many it removed.
// *cache.MemoryStore satisfies it.
type Purger interface {
	Purge() int
}

// CacheJanitorService periodically purges expired entries from a cache
// that only expires lazily on read. Without it, a collection that is
// never requested again would stay in memory forever.
type CacheJanitorService struct {
	store    Purger
	interval time.Duration
	name     string
}

// NewCacheJanitorService creates a janitor for store. backend only names
// the service in supervisor logs. A non-positive interval defaults to 10m.
func NewCacheJanitorService(store Purger, backend string, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &CacheJanitorService{
		store:    store,
		interval: interval,
		name:     "cache-janitor-" + backend,
	}
}

// Serve implements suture.Service. It purges once per interval until ctx
// is canceled.
func (j *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := j.store.Purge(); removed > 0 {
				logging.Debug().
					Str("service", j.name).
					Int("removed", removed).
					Msg("Purged expired cache entries")
			}
		}
	}
}

// String implements fmt.Stringer for logging.
func (j *CacheJanitorService) String() string {
	return j.name
}
