// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package api

// ListRequest holds the query parameters of /api/people and /api/planets.
// SortBy is only required here. The catalog engine owns the permitted sort
// fields and reports INVALID_SORT_FIELD.
type ListRequest struct {
	Page   int    `query:"page" validate:"min=1"`
	Search string `query:"search" validate:"max=100,nocontrol"`
	SortBy string `query:"sort_by" validate:"required"`
	Order  string `query:"order" validate:"oneof=asc desc"`
}

// InsightRequest holds the query parameters of /api/{resource}/insight.
type InsightRequest struct {
	Name string `query:"name" validate:"required,max=100,nocontrol"`
}
