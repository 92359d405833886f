// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/holocron/internal/models"
)

// ===================================================================================================
// generateETag / etagMatches Tests
// ===================================================================================================

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte(`{"count":1}`))
	b := generateETag([]byte(`{"count":1}`))
	c := generateETag([]byte(`{"count":2}`))

	if a != b {
		t.Errorf("generateETag() not deterministic: %s vs %s", a, b)
	}
	if a == c {
		t.Error("different bodies should produce different ETags")
	}
	if !strings.HasPrefix(a, `"`) || !strings.HasSuffix(a, `"`) {
		t.Errorf("ETag %s should be quoted", a)
	}
	if generateETag(nil) != `"811c9dc5"` {
		t.Errorf("empty ETag = %s, want FNV-1a offset basis", generateETag(nil))
	}
}

func TestETagMatches(t *testing.T) {
	const etag = `"abc123"`
	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"empty", "", false},
		{"exact", `"abc123"`, true},
		{"weak", `W/"abc123"`, true},
		{"list", `"zzz", "abc123"`, true},
		{"wildcard", "*", true},
		{"mismatch", `"other"`, false},
		{"unquoted", "abc123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := etagMatches(tt.header, etag); got != tt.want {
				t.Errorf("etagMatches(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

// ===================================================================================================
// respondJSON / respondError Tests
// ===================================================================================================

func TestRespondJSON_Headers(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/", nil)

	respondJSON(w, r, http.StatusOK, models.WelcomeMessage{Message: "hi"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "public, max-age=60" {
		t.Errorf("Cache-Control = %q", cc)
	}
	if want := generateETag([]byte(`{"message":"hi"}`)); w.Header().Get("ETag") != want {
		t.Errorf("ETag = %q, want %q", w.Header().Get("ETag"), want)
	}
	if w.Body.String() != `{"message":"hi"}` {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRespondJSON_NotModified(t *testing.T) {
	etag := generateETag([]byte(`{"message":"hi"}`))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/", nil)
	r.Header.Set("If-None-Match", etag)

	respondJSON(w, r, http.StatusOK, models.WelcomeMessage{Message: "hi"})

	if w.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("304 body should be empty, got %q", w.Body.String())
	}
	if w.Header().Get("ETag") != etag {
		t.Errorf("304 should still carry the ETag")
	}
}

func TestRespondJSON_NonOKIgnoresIfNoneMatch(t *testing.T) {
	etag := generateETag([]byte(`{"message":"hi"}`))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/", nil)
	r.Header.Set("If-None-Match", etag)

	respondJSON(w, r, http.StatusServiceUnavailable, models.WelcomeMessage{Message: "hi"})

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestRespondError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	respondError(w, http.StatusBadGateway, ErrCodeExternalServiceFail, "upstream down", errors.New("secret detail"))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("Status = %q, want error", resp.Status)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeExternalServiceFail || resp.Error.Message != "upstream down" {
		t.Errorf("Error = %+v", resp.Error)
	}
	if resp.Metadata.Timestamp.IsZero() {
		t.Error("Metadata.Timestamp should be set")
	}
	if strings.Contains(w.Body.String(), "secret detail") {
		t.Error("internal error text must not reach the client")
	}
}

// ===================================================================================================
// Parameter parsing Tests
// ===================================================================================================

func TestParsePageParam(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 1, false},
		{"page=3", 3, false},
		{"page=%203%20", 3, false},
		{"page=0", 0, false}, // range is the validator's job
		{"page=-2", -2, false},
		{"page=abc", 0, true},
		{"page=1.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/people?"+tt.query, nil)
			got, err := parsePageParam(r)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("page = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"luke", "luke"},
		{"a\nb", `a\x0ab`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
		{"Padmé", "Padmé"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
