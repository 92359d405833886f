// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

/*
Package middleware provides the HTTP middleware owned by Holocron.

Components:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - AccessLog: one zerolog line per completed request

All three use the http.HandlerFunc wrapper shape. The api package adapts them
to chi's func(http.Handler) http.Handler and stacks them alongside chi's own
RealIP, Recoverer and Compress, go-chi/cors and go-chi/httprate:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

RequestID must run first so that later layers log with request_id.
*/
package middleware
