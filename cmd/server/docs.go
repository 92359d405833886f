// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

// Package main provides the Holocron HTTP server
//
// @title Holocron API
// @version 1.0
// @description Read-only catalog of Star Wars people and planets backed by SWAPI.
// @description
// @description ## Listing
// @description
// @description `/people` and `/planets` accept `page`, `search`, `sort_by` (`name` or `created`)
// @description and `order` (`asc` or `desc`). Pages hold 15 records and carry `next` and
// @description `previous` links that preserve the query.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Upstream calls to SWAPI are limited separately to 5 per second.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable message"
// @description   },
// @description   "metadata": {"timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name Holocron Project
// @contact.url https://github.com/tomtom215/holocron
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api
// @schemes http https
//
// @tag.name Core
// @tag.description Welcome and health endpoints
//
// @tag.name Catalog
// @tag.description People and planets listings
package main
