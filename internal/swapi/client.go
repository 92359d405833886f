// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package swapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/holocron/internal/config"
	"github.com/tomtom215/holocron/internal/logging"
	"github.com/tomtom215/holocron/internal/metrics"
	"github.com/tomtom215/holocron/internal/models"
)

const (
	// maxErrorBodySize bounds how much of a failed response is kept for diagnostics.
	maxErrorBodySize = 64 * 1024

	// maxResponseBodySize bounds a successful response. The largest catalog
	// collection is well under 1 MiB.
	maxResponseBodySize = 16 * 1024 * 1024

	userAgent = "holocron/1.0"

	kindCollection = "collection"
	kindReference  = "reference"
)

// API is the upstream surface consumed by the rest of the service.
// Client and CircuitBreakerClient both implement it.
type API interface {
	CollectionURL(resource string) string
	FetchCollection(ctx context.Context, resource string) ([]models.Record, error)
	FetchByReference(ctx context.Context, rawURL string) (models.Record, bool)
}

// Client talks to the upstream catalog over HTTP.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the catalog rooted at cfg.BaseURL.
func NewClient(cfg *config.SWAPIConfig, opts ...Option) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CollectionURL returns the upstream URL of a resource collection. It is also
// the cache key for that collection.
func (c *Client) CollectionURL(resource string) string {
	return c.baseURL + "/" + resource
}

// FetchCollection retrieves every record of a resource collection in one
// request. The body may be a bare JSON array or an object with a "results"
// array; both yield the same slice. An object without "results" is empty.
func (c *Client) FetchCollection(ctx context.Context, resource string) ([]models.Record, error) {
	target := c.CollectionURL(resource)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.get(ctx, target)
	if err != nil {
		metrics.RecordUpstreamRequest(kindCollection, 0, time.Since(start))
		return nil, &UpstreamError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	metrics.RecordUpstreamRequest(kindCollection, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       readBodyForError(resp.Body),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, &UpstreamError{URL: target, Err: fmt.Errorf("read body: %w", err)}
	}

	records, err := decodeCollection(body)
	if err != nil {
		return nil, &UpstreamError{URL: target, Err: err}
	}

	logging.Ctx(ctx).Debug().
		Str("url", target).
		Int("records", len(records)).
		Dur("duration", time.Since(start)).
		Msg("Fetched upstream collection")

	return records, nil
}

// FetchByReference retrieves one record by its absolute URL. Every failure
// mode reports (nil, false); a 404 is not distinguished from a timeout.
func (c *Client) FetchByReference(ctx context.Context, rawURL string) (models.Record, bool) {
	if !isFetchableURL(rawURL) {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.get(ctx, rawURL)
	if err != nil {
		metrics.RecordUpstreamRequest(kindReference, 0, time.Since(start))
		logging.Ctx(ctx).Debug().Err(err).Str("url", rawURL).Msg("Reference fetch failed")
		return nil, false
	}
	defer resp.Body.Close()

	metrics.RecordUpstreamRequest(kindReference, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.Ctx(ctx).Debug().
			Int("status", resp.StatusCode).
			Str("url", rawURL).
			Msg("Reference fetch returned non-success status")
		return nil, false
	}

	var record models.Record
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(&record); err != nil || record == nil {
		logging.Ctx(ctx).Debug().Err(err).Str("url", rawURL).Msg("Reference body is not a JSON object")
		return nil, false
	}
	return record, true
}

func (c *Client) get(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// decodeCollection accepts `[...]` or `{"results": [...]}`.
func decodeCollection(body []byte) ([]models.Record, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty response body")
	}

	switch trimmed[0] {
	case '[':
		var records []models.Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode collection array: %w", err)
		}
		return compact(records), nil
	case '{':
		var envelope struct {
			Results []models.Record `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("decode collection envelope: %w", err)
		}
		if envelope.Results == nil {
			return []models.Record{}, nil
		}
		return compact(envelope.Results), nil
	default:
		return nil, fmt.Errorf("unexpected collection body starting with %q", trimmed[0])
	}
}

// compact drops null array elements so the pipeline never sees a nil Record.
func compact(records []models.Record) []models.Record {
	out := records[:0]
	for _, r := range records {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func isFetchableURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// readBodyForError reads up to maxErrorBodySize bytes of an error response.
func readBodyForError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	if err != nil {
		return fmt.Sprintf("<failed to read body: %v>", err)
	}
	return string(data)
}
