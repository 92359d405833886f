// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

/*
Package metrics provides Prometheus metrics for Holocron.

All collectors are registered on the default registry through promauto and
exposed at /metrics by the API router. The package covers:

  - API request latency and throughput
  - Outbound upstream calls (collection and reference fetches)
  - Resource cache hits, misses, sets and evictions
  - Outbound rate limiter wait time
  - Homeworld resolution outcomes
  - Circuit breaker state and transitions

Example:

	start := time.Now()
	resp, err := client.Do(req)
	metrics.RecordUpstreamRequest("collection", resp.StatusCode, time.Since(start))
*/
package metrics
