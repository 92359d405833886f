// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package swapi

import (
	"fmt"
	"net/http"
)

// maxErrorMessageBody caps how much of the upstream body appears in Error().
const maxErrorMessageBody = 256

// UpstreamError reports a failed collection fetch. StatusCode is 0 when no
// HTTP response was received (transport fault, timeout, open breaker) and
// Err then holds the cause.
type UpstreamError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		body := e.Body
		if len(body) > maxErrorMessageBody {
			body = body[:maxErrorMessageBody] + "..."
		}
		return fmt.Sprintf("upstream %s returned HTTP %d: %s", e.URL, e.StatusCode, body)
	}
	return fmt.Sprintf("upstream %s request failed: %v", e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ServerSide reports whether the failure lies with the upstream service
// rather than with the request: no response at all, 429, or any 5xx.
func (e *UpstreamError) ServerSide() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= http.StatusInternalServerError
}
