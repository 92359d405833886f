// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.SWAPI.BaseURL != DefaultSWAPIBaseURL {
		t.Errorf("SWAPI.BaseURL = %q, want %q", cfg.SWAPI.BaseURL, DefaultSWAPIBaseURL)
	}
	if cfg.SWAPI.RateLimit != 5 {
		t.Errorf("SWAPI.RateLimit = %v, want 5", cfg.SWAPI.RateLimit)
	}
	if cfg.Cache.TTL != 7*24*time.Hour {
		t.Errorf("Cache.TTL = %v, want one week", cfg.Cache.TTL)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("Cache.Backend = %q, want memory", cfg.Cache.Backend)
	}
	if cfg.API.PageSize != 15 {
		t.Errorf("API.PageSize = %d, want 15", cfg.API.PageSize)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.SWAPI.RequestTimeout != 10*time.Second {
		t.Errorf("SWAPI.RequestTimeout = %v, want 10s", cfg.SWAPI.RequestTimeout)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("SWAPI_BASE_URL", "http://localhost:9999/api/")
	t.Setenv("SWAPI_TIMEOUT", "3s")
	t.Setenv("SWAPI_RATE_LIMIT", "2.5")
	t.Setenv("CACHE_BACKEND", "ristretto")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://holocron.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.SWAPI.BaseURL != "http://localhost:9999/api" {
		t.Errorf("SWAPI.BaseURL = %q, want trailing slash trimmed", cfg.SWAPI.BaseURL)
	}
	if cfg.SWAPI.RequestTimeout != 3*time.Second {
		t.Errorf("SWAPI.RequestTimeout = %v, want 3s", cfg.SWAPI.RequestTimeout)
	}
	if cfg.SWAPI.RateLimit != 2.5 {
		t.Errorf("SWAPI.RateLimit = %v, want 2.5", cfg.SWAPI.RateLimit)
	}
	if cfg.Cache.Backend != "ristretto" {
		t.Errorf("Cache.Backend = %q, want ristretto", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://holocron.example.com" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
swapi:
  base_url: https://swapi.example.com/api
cache:
  ttl: 2h
api:
  page_size: 10
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("API_PAGE_SIZE", "20")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.SWAPI.BaseURL != "https://swapi.example.com/api" {
		t.Errorf("SWAPI.BaseURL = %q", cfg.SWAPI.BaseURL)
	}
	if cfg.Cache.TTL != 2*time.Hour {
		t.Errorf("Cache.TTL = %v, want 2h from file", cfg.Cache.TTL)
	}
	// Env wins over file
	if cfg.API.PageSize != 20 {
		t.Errorf("API.PageSize = %d, want 20 from env", cfg.API.PageSize)
	}
}

func TestLoadWithKoanf_InvalidEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("SWAPI_BASE_URL", "ftp://swapi.info/api")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("expected validation error for ftp base URL")
	}
	if !strings.Contains(err.Error(), "SWAPI_BASE_URL") {
		t.Errorf("error should name SWAPI_BASE_URL, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SWAPI_BASE_URL", "swapi.base_url"},
		{"SWAPI_BREAKER_FAILURES", "swapi.circuit_breaker.failure_threshold"},
		{"CACHE_TTL", "cache.ttl"},
		{"HTTP_PORT", "server.port"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.input); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
