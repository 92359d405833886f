// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

/*
Package models defines the data structures shared across Holocron.

  - Record: the loosely-typed upstream entity used inside the pipeline
  - Person, Planet: typed response schemas applied at serialization
  - PaginatedResponse: the {count, next, previous, results} listing envelope
  - APIResponse, APIError: the standard envelope for errors and other endpoints
*/
package models
