// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/holocron/internal/catalog"
	"github.com/tomtom215/holocron/internal/swapi"
)

// Error codes for API responses
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeInvalidSortField    = "INVALID_SORT_FIELD"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeRateLimited         = "RATE_LIMIT_EXCEEDED"
	ErrCodeExternalServiceFail = "EXTERNAL_SERVICE_FAILED"
	ErrCodeGatewayTimeout      = "GATEWAY_TIMEOUT"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// statusClientClosedRequest is the de facto status for a client that went
// away before the response was ready. It is only ever logged.
const statusClientClosedRequest = 499

// respondCatalogError maps an error from the catalog pipeline to a response.
func respondCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	var upstreamErr *swapi.UpstreamError

	switch {
	case errors.Is(err, catalog.ErrInvalidSortField):
		respondError(w, http.StatusBadRequest, ErrCodeInvalidSortField, invalidSortMessage(err), nil)

	case errors.Is(err, catalog.ErrUnknownResource):
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil)

	case errors.As(err, &upstreamErr):
		respondError(w, http.StatusBadGateway, ErrCodeExternalServiceFail,
			"Failed to fetch data from the Star Wars API", err)

	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		// Nobody is listening; record it and move on.
		respondError(w, statusClientClosedRequest, ErrCodeInternalError, "Request canceled", nil)

	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, ErrCodeGatewayTimeout,
			"Timed out waiting for the Star Wars API", err)

	default:
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error", err)
	}
}

// invalidSortMessage turns "invalid sort field: x. Allowed..." into the
// capitalized user-facing form.
func invalidSortMessage(err error) string {
	msg := err.Error()
	if msg == "" {
		return "Invalid sort field"
	}
	return "I" + msg[1:]
}
