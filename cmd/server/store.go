// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package main

import (
	"fmt"

	"github.com/tomtom215/filmgraph/internal/config"
	"github.com/tomtom215/filmgraph/internal/database"
	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/store"
	"github.com/tomtom215/filmgraph/internal/store/memory"
	"github.com/tomtom215/filmgraph/internal/supervisor"
)

// openStore opens the configured backend. The checkpointer is nil unless
// the backend has a WAL worth flushing.
func openStore(cfg *config.DatabaseConfig) (store.FactStore, supervisor.Checkpointer, error) {
	if cfg.Driver == config.DriverMemory {
		logging.Warn().Msg("Using in-memory store; data is lost on exit")
		return memory.New(), nil, nil
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize database: %w", err)
	}
	logging.Info().Str("backend", db.Backend()).Msg("Database initialized successfully")

	if db.Backend() == config.DriverDuckDB {
		return db, db, nil
	}
	return db, nil, nil
}
