// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

/*
Package supervisor provides process supervision for Holocron using suture v4.

The tree separates background housekeeping from request serving:

	RootSupervisor ("holocron")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheJanitorService (memory cache backend only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Canceling the context
passed to Serve shuts every service down, each bounded by
TreeConfig.ShutdownTimeout.

Supervisor events (start, failure, backoff, restart) are logged through
sutureslog into a *slog.Logger. Holocron passes logging.NewSlogLogger() so
these events land in the same zerolog stream as everything else.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMaintenanceService(services.NewCacheJanitorService(store, cache.BackendMemory, time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tree.Serve(ctx)
*/
package supervisor
