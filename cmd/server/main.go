// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/holocron/docs" // Swagger docs

	"github.com/tomtom215/holocron/internal/api"
	"github.com/tomtom215/holocron/internal/cache"
	"github.com/tomtom215/holocron/internal/catalog"
	"github.com/tomtom215/holocron/internal/config"
	"github.com/tomtom215/holocron/internal/logging"
	"github.com/tomtom215/holocron/internal/ratelimit"
	"github.com/tomtom215/holocron/internal/supervisor"
	"github.com/tomtom215/holocron/internal/supervisor/services"
	"github.com/tomtom215/holocron/internal/swapi"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("swapi_base_url", cfg.SWAPI.BaseURL).
		Str("cache_backend", cfg.Cache.Backend).
		Dur("cache_ttl", cfg.Cache.TTL).
		Bool("circuit_breaker", cfg.SWAPI.CircuitBreaker.Enabled).
		Msg("Configuration loaded")

	app, err := newApp(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer app.Close()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if app.purger != nil {
		tree.AddMaintenanceService(services.NewCacheJanitorService(app.purger, cfg.Cache.Backend, cfg.Cache.CleanupInterval))
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           app.handler,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Holocron stopped")
}

// app is the wired object graph behind the HTTP handler.
type app struct {
	handler http.Handler
	engine  *catalog.Engine

	// purger is set only for the memory backend, which expires lazily.
	purger services.Purger
	closer func()
}

// Close releases cache resources.
func (a *app) Close() {
	if a.closer != nil {
		a.closer()
	}
}

// newApp builds limiters, cache, upstream client, catalog and router from cfg.
func newApp(cfg *config.Config) (*app, error) {
	collectionLimiter := ratelimit.NewTokenBucket("collection", cfg.SWAPI.RateLimit, cfg.SWAPI.RateBurst)
	referenceLimiter := ratelimit.NewTokenBucket("reference", cfg.SWAPI.ReferenceRateLimit, cfg.SWAPI.ReferenceRateBurst)

	store, err := cache.NewStore[[]catalog.Record](cache.Options{
		Backend:    cfg.Cache.Backend,
		MaxEntries: cfg.Cache.MaxEntries,
	})
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}

	a := &app{}
	if p, ok := store.(services.Purger); ok {
		a.purger = p
	}
	if c, ok := store.(interface{ Close() }); ok {
		a.closer = c.Close
	}

	var upstream swapi.API = swapi.NewClient(&cfg.SWAPI)
	var breaker api.BreakerState
	if cfg.SWAPI.CircuitBreaker.Enabled {
		cb := swapi.NewCircuitBreakerClient(upstream, &cfg.SWAPI.CircuitBreaker)
		upstream = cb
		breaker = cb
	}

	resolver := catalog.NewHomeworldResolver(upstream, referenceLimiter, cfg.SWAPI.ReferenceConcurrency)
	a.engine = catalog.NewEngine(store, collectionLimiter, upstream, catalog.EngineConfig{
		TTL:        cfg.Cache.TTL,
		PerPage:    cfg.API.PageSize,
		LinkPrefix: cfg.API.LinkPrefix,
		Enrichers: map[string]catalog.Enricher{
			catalog.ResourcePeople: resolver,
		},
	})

	handler := api.NewHandler(a.engine, breaker)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(cfg.Security))
	a.handler = router.SetupChi()

	return a, nil
}
