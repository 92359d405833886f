// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

/*
Package config provides centralized configuration management for Holocron.

Configuration is loaded with Koanf v2 from three layers, highest priority last:

  - Built-in defaults (defaultConfig)
  - Optional YAML file (CONFIG_PATH, config.yaml, /etc/holocron/config.yaml)
  - Environment variables

# Environment Variables

Upstream catalog (SWAPIConfig):
  - SWAPI_BASE_URL: Catalog base URL (default: https://swapi.info/api)
  - SWAPI_TIMEOUT: Per-call timeout for upstream requests (default: 10s)
  - SWAPI_RATE_LIMIT / SWAPI_RATE_BURST: Collection fetch budget (default: 5/s, burst 5)
  - SWAPI_REFERENCE_RATE_LIMIT / SWAPI_REFERENCE_RATE_BURST: Homeworld lookup budget (default: 20/s, burst 15)
  - SWAPI_REFERENCE_CONCURRENCY: Max in-flight homeworld lookups per request (default: 16)
  - SWAPI_BREAKER_ENABLED, SWAPI_BREAKER_FAILURES, SWAPI_BREAKER_TIMEOUT: Circuit breaker tuning

Resource cache (CacheConfig):
  - CACHE_BACKEND: memory or ristretto (default: memory)
  - CACHE_TTL: Collection time-to-live (default: 168h)
  - CACHE_CLEANUP_INTERVAL: Expired entry purge interval for the memory backend (default: 10m)
  - CACHE_MAX_ENTRIES: Cost bound for the ristretto backend (default: 64)

HTTP server (ServerConfig, APIConfig, SecurityConfig):
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8000)
  - API_PAGE_SIZE: Listing page size (default: 15)
  - API_LINK_PREFIX: Path prefix for next/previous links (default: /api)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT: Inbound per-IP limit

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
