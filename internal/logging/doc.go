// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

// Package logging provides centralized zerolog-based structured logging for Holocron.
//
// The package provides:
//   - A global zerolog logger configured once at startup via Init
//   - JSON output for production and console output for development
//   - Request ID propagation through context (Ctx)
//   - An slog.Handler adapter so Suture can log through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("resource", "people").Msg("Collection cached")
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Upstream fetch failed")
//
// Always terminate log chains with .Msg() or .Send(), and prefer structured
// fields over Msgf.
package logging
