// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

/*
Package services provides suture.Service wrappers for Holocron components.

Each wrapper implements suture's context-aware Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe into Serve

Cache Janitor (CacheJanitorService):
  - Ticks at cache.cleanup_interval and calls Purge on the memory store
  - Not added for the ristretto backend, which expires entries itself

Both implement fmt.Stringer so supervisor events name the service.
*/
package services
