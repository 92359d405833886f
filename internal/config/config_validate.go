// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Rate limit bounds for inbound requests
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validCacheBackends = map[string]bool{
	"memory":    true,
	"ristretto": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateSWAPI(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateSWAPI validates upstream client settings
func (c *Config) validateSWAPI() error {
	if err := validateBaseURL(c.SWAPI.BaseURL, "SWAPI_BASE_URL"); err != nil {
		return err
	}
	if c.SWAPI.RequestTimeout <= 0 {
		return fmt.Errorf("SWAPI_TIMEOUT must be positive")
	}
	if c.SWAPI.RateLimit <= 0 || c.SWAPI.RateBurst < 1 {
		return fmt.Errorf("SWAPI_RATE_LIMIT must be positive and SWAPI_RATE_BURST at least 1")
	}
	if c.SWAPI.ReferenceRateLimit <= 0 || c.SWAPI.ReferenceRateBurst < 1 {
		return fmt.Errorf("SWAPI_REFERENCE_RATE_LIMIT must be positive and SWAPI_REFERENCE_RATE_BURST at least 1")
	}
	if c.SWAPI.ReferenceConcurrency < 1 {
		return fmt.Errorf("SWAPI_REFERENCE_CONCURRENCY must be at least 1")
	}

	cb := c.SWAPI.CircuitBreaker
	if cb.Enabled && (cb.FailureThreshold == 0 || cb.Timeout <= 0) {
		return fmt.Errorf("SWAPI_BREAKER_FAILURES and SWAPI_BREAKER_TIMEOUT must be positive when the breaker is enabled")
	}
	return nil
}

// validateBaseURL accepts an absolute http(s) URL. Unlike a server root, the
// catalog base may carry a path (/api) but never a query or fragment.
func validateBaseURL(rawURL, fieldName string) error {
	if rawURL == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsedURL.RawQuery != "" || parsedURL.Fragment != "" {
		return fmt.Errorf("%s should not contain a query or fragment", fieldName)
	}
	return nil
}

// validateCache validates resource cache settings
func (c *Config) validateCache() error {
	if !validCacheBackends[c.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, ristretto")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if c.Cache.Backend == "memory" && c.Cache.CleanupInterval <= 0 {
		return fmt.Errorf("CACHE_CLEANUP_INTERVAL must be positive")
	}
	if c.Cache.Backend == "ristretto" && c.Cache.MaxEntries < 1 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be at least 1")
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	return nil
}

// validateAPI validates listing configuration
func (c *Config) validateAPI() error {
	if c.API.PageSize < 1 {
		return fmt.Errorf("API_PAGE_SIZE must be at least 1")
	}
	if c.API.LinkPrefix != "" && !strings.HasPrefix(c.API.LinkPrefix, "/") {
		return fmt.Errorf("API_LINK_PREFIX must start with /")
	}
	return nil
}

// validateRateLimits validates inbound rate limiting bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
