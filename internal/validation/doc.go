// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

// Package validation validates request structs with go-playground/validator v10.
//
// A single validator instance is built on first use and shared. Field names
// in messages come from the `query` struct tag, so a failure on
//
//	type ListRequest struct {
//	    Page int `query:"page" validate:"min=1"`
//	}
//
// reads "page must be at least 1" rather than naming the Go field.
//
// Custom tags:
//   - nocontrol: string contains no control characters
//
// ToAPIError converts failures to the VALIDATION_ERROR shape used by the
// API error envelope.
package validation
