// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

// Package logging provides the process-wide zerolog logger.
//
// JSON output is the default; console output is meant for development.
// Call Init once from main with values from config.LoggingConfig:
//
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
//	logging.Info().Msg("Server starting")
//
// Request-scoped logging picks up the request ID and acting user from the
// context:
//
//	logging.Ctx(ctx).Warn().Err(err).Msg("Activity event dropped")
//
// Libraries that want a *slog.Logger (the suture supervisor via
// sutureslog) get one from NewSlogLogger, which writes through zerolog.
//
// Always terminate an event chain with Msg or Send; an unterminated chain
// is never written.
package logging
