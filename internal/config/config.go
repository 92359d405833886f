// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// config file, and environment variables.
//
// Configuration Categories:
//
//  1. Upstream: SWAPI base URL, timeouts, outbound rate budgets, circuit breaker
//  2. Cache: Resource cache backend and time-to-live
//  3. Server/API: HTTP listener and listing behaviour
//  4. Security: CORS and inbound rate limiting
//  5. Logging: Log level and output format
type Config struct {
	SWAPI    SWAPIConfig    `koanf:"swapi"`
	Cache    CacheConfig    `koanf:"cache"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// SWAPIConfig holds settings for the upstream catalog client.
type SWAPIConfig struct {
	// BaseURL is the catalog root, e.g. https://swapi.info/api.
	// Collections are fetched from {BaseURL}/{resource}.
	BaseURL string `koanf:"base_url"`

	// RequestTimeout bounds every outbound call, collection or reference.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// RateLimit and RateBurst gate collection fetches that miss the cache.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	// ReferenceRateLimit and ReferenceRateBurst gate homeworld lookups.
	ReferenceRateLimit float64 `koanf:"reference_rate_limit"`
	ReferenceRateBurst int     `koanf:"reference_rate_burst"`

	// ReferenceConcurrency caps in-flight homeworld lookups for one request.
	ReferenceConcurrency int `koanf:"reference_concurrency"`

	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig tunes the breaker around collection fetches.
type CircuitBreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval is the cyclic period in the closed state after which counts reset.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration `koanf:"timeout"`

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32 `koanf:"failure_threshold"`
}

// CacheConfig holds Resource Cache settings.
type CacheConfig struct {
	// Backend selects the store implementation: "memory" or "ristretto".
	Backend string `koanf:"backend"`

	// TTL is how long a fetched collection stays fresh.
	TTL time.Duration `koanf:"ttl"`

	// CleanupInterval is how often the memory backend purges expired entries.
	CleanupInterval time.Duration `koanf:"cleanup_interval"`

	// MaxEntries bounds the ristretto backend (each collection costs 1).
	MaxEntries int64 `koanf:"max_entries"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds listing settings
type APIConfig struct {
	// PageSize is the fixed number of records per listing page.
	PageSize int `koanf:"page_size"`

	// LinkPrefix is prepended to next/previous links, e.g. /api/people?page=2.
	LinkPrefix string `koanf:"link_prefix"`
}

// SecurityConfig holds CORS and inbound rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all sources in order of increasing priority:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
