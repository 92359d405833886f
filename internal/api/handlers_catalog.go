// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/holocron/internal/catalog"
	"github.com/tomtom215/holocron/internal/logging"
	"github.com/tomtom215/holocron/internal/models"
)

// welcomeMessage is served at the API root.
const welcomeMessage = "Welcome, Star Wars fans!"

// insightTemplate renders the mock AI insight. Arguments: name, resource.
const insightTemplate = "%s stands out among the %s of a galaxy far, far away. " +
	"Scholars of the Holocron note a story shaped by the Force and by the choices of those around them."

// Welcome godoc
// @Summary API welcome message
// @Description Returns a greeting. Useful as a cheap connectivity check.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.WelcomeMessage
// @Router / [get]
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.WelcomeMessage{Message: welcomeMessage})
}

// People godoc
// @Summary List people
// @Description Paginated, searchable, sortable list of people. Each person carries homeworld_name resolved from its homeworld reference.
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number (>= 1)" default(1)
// @Param search query string false "Case-insensitive substring of name"
// @Param sort_by query string false "Sort field" Enums(name, created) default(name)
// @Param order query string false "Sort order" Enums(asc, desc) default(asc)
// @Success 200 {object} models.PaginatedResponse[models.Person]
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 502 {object} models.APIResponse "Upstream catalog unavailable"
// @Router /people [get]
func (h *Handler) People(w http.ResponseWriter, r *http.Request) {
	page, ok := h.listPage(w, r, catalog.ResourcePeople)
	if !ok {
		return
	}
	respondTyped[models.Person](w, r, page)
}

// Planets godoc
// @Summary List planets
// @Description Paginated, searchable, sortable list of planets.
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number (>= 1)" default(1)
// @Param search query string false "Case-insensitive substring of name"
// @Param sort_by query string false "Sort field" Enums(name, created) default(name)
// @Param order query string false "Sort order" Enums(asc, desc) default(asc)
// @Success 200 {object} models.PaginatedResponse[models.Planet]
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 502 {object} models.APIResponse "Upstream catalog unavailable"
// @Router /planets [get]
func (h *Handler) Planets(w http.ResponseWriter, r *http.Request) {
	page, ok := h.listPage(w, r, catalog.ResourcePlanets)
	if !ok {
		return
	}
	respondTyped[models.Planet](w, r, page)
}

// Insight godoc
// @Summary Mock AI insight
// @Description Returns a canned insight paragraph for a named catalog entry.
// @Tags Catalog
// @Produce json
// @Param resource path string true "Resource" Enums(people, planets)
// @Param name query string true "Entry name"
// @Success 200 {object} models.Insight
// @Failure 400 {object} models.APIResponse "Missing name"
// @Failure 404 {object} models.APIResponse "Unknown resource"
// @Router /{resource}/insight [get]
func (h *Handler) Insight(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	if !h.catalog.Serves(resource) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil)
		return
	}

	req := InsightRequest{Name: getStringParam(r, "name", "")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	respondJSON(w, r, http.StatusOK, models.Insight{
		Resource: resource,
		Name:     req.Name,
		Insight:  fmt.Sprintf(insightTemplate, req.Name, resource),
	})
}

// listPage parses and validates the listing parameters and runs the catalog
// pipeline. It writes the error response itself and reports ok=false.
func (h *Handler) listPage(w http.ResponseWriter, r *http.Request, resource string) (*catalog.PageResult, bool) {
	pageNum, err := parsePageParam(r)
	if err != nil {
		respondAPIError(w, http.StatusBadRequest, &models.APIError{
			Code:    ErrCodeValidation,
			Message: err.Error(),
			Details: map[string]interface{}{"field": "page", "value": r.URL.Query().Get("page")},
		}, nil)
		return nil, false
	}

	req := ListRequest{
		Page:   pageNum,
		Search: getStringParam(r, "search", ""),
		SortBy: getStringParam(r, "sort_by", catalog.SortName),
		Order:  getStringParam(r, "order", "asc"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return nil, false
	}

	page, err := h.catalog.ListPage(r.Context(), catalog.ListQuery{
		Resource:   resource,
		Page:       req.Page,
		Search:     req.Search,
		SortField:  req.SortBy,
		Descending: req.Order == "desc",
	})
	if err != nil {
		logging.Ctx(r.Context()).Debug().
			Err(err).
			Str("resource", resource).
			Str("search", sanitizeLogValue(req.Search)).
			Msg("Listing failed")
		respondCatalogError(w, r, err)
		return nil, false
	}
	return page, true
}

// normalizable is a pointer to a response schema with list fields that must
// serialize as [] rather than null.
type normalizable[T any] interface {
	*T
	Normalize()
}

// respondTyped applies the typed response schema T to a page of records.
func respondTyped[T any, PT normalizable[T]](w http.ResponseWriter, r *http.Request, page *catalog.PageResult) {
	results, err := toTyped[T, PT](page.Results)
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to encode results", err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.PaginatedResponse[T]{
		Count:    page.Count,
		Next:     page.Next,
		Previous: page.Previous,
		Results:  results,
	})
}

func toTyped[T any, PT normalizable[T]](records []catalog.Record) ([]T, error) {
	out := make([]T, 0, len(records))
	if len(records) == 0 {
		return out, nil
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("apply response schema: %w", err)
	}
	for i := range out {
		PT(&out[i]).Normalize()
	}
	return out, nil
}
