// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

/*
Package api exposes the catalog over HTTP using the chi router.

Routes (all under /api):

	GET /                      welcome message
	GET /people                paginated people, each with homeworld_name
	GET /planets               paginated planets
	GET /{resource}/insight    mock AI insight for one named record
	GET /health/live           liveness probe
	GET /health/ready          readiness probe (503 while the upstream breaker is open)

plus /metrics (Prometheus) and /swagger/* (Swagger UI) at the root.

# Listing parameters

	page     int >= 1, default 1
	search   case-insensitive substring of name, at most 100 characters
	sort_by  name | created, default name
	order    asc | desc, default asc

Listing responses are the bare {count, next, previous, results} page.
Every error uses the standard envelope:

	{"status":"error","data":null,"error":{"code":"...","message":"..."},"metadata":{"timestamp":"..."}}

Error codes:

	400 VALIDATION_ERROR         page, order or search out of range
	400 INVALID_SORT_FIELD       sort_by not name or created
	404 NOT_FOUND                unknown resource
	429 RATE_LIMIT_EXCEEDED      inbound per-IP limit hit
	502 EXTERNAL_SERVICE_FAILED  upstream collection could not be fetched

# Caching

Successful JSON responses carry an ETag (FNV-1a of the body) and
Cache-Control: public, max-age=60. A matching If-None-Match yields 304.
*/
package api
