// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

/*
Package main is the entry point for the Holocron server.

Holocron fronts the public Star Wars API (SWAPI) with a small catalog
service: it pulls whole collections (people, planets), caches them for a
week, and serves filtered, sorted, paginated views with homeworld names
resolved inline.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("holocron")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Cache Janitor (memory backend only)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML file and environment variables
 2. Logging: zerolog, level and format from configuration
 3. Rate limiters: one token bucket for collection fetches, one for references
 4. Cache: in-memory TTL map or Ristretto, selected by cache.backend
 5. Upstream client: SWAPI HTTP client, optionally behind a circuit breaker
 6. Catalog: aggregation engine plus the homeworld resolver
 7. HTTP router: Chi with CORS, per-IP rate limiting and Prometheus metrics
 8. Supervisor tree: starts the services above and blocks until a signal

# Configuration

See internal/config for the full list. Common environment variables:

	HTTP_PORT=8000
	SWAPI_BASE_URL=https://swapi.info/api
	SWAPI_RATE_LIMIT=5
	CACHE_BACKEND=memory
	CACHE_TTL=168h
	LOG_LEVEL=info

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests within server.shutdown_timeout, then the process exits.
Services that fail to stop in time are logged by name.

# Swagger

API documentation is served at /swagger/index.html. The annotations live
in docs.go and the handler comments of internal/api.
*/
package main
