// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

/*
Package swapi is the HTTP client for the upstream Star Wars catalog.

It issues single GET requests, either for a whole resource collection
({base}/{resource}) or for one absolute resource URL taken from another
record (for example a person's homeworld).

# Collection fetches

FetchCollection accepts both response shapes the catalog is known to return:

	[ {...}, {...} ]                      // bare array (swapi.info)
	{ "count": 82, "results": [ ... ] }   // envelope (swapi.dev)

A non-2xx status, a transport fault, a timeout or an undecodable body
all fail with *UpstreamError. Nothing is retried at this layer.

# Reference fetches

FetchByReference never fails. Any problem (bad URL, non-2xx status,
network fault, timeout, non-object body) yields (nil, false) and the
caller decides on a fallback.

# Resilience

CircuitBreakerClient wraps collection fetches in a sony/gobreaker breaker.
Server-side failures (5xx, 429, transport faults) count against it and
client errors (4xx) do not. While open, FetchCollection fails fast with an
*UpstreamError wrapping gobreaker.ErrOpenState.
*/
package swapi
