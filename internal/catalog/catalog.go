// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

// Package catalog manages users, films, directors and the genre and MPA
// lookups, plus film likes. It validates input, delegates integrity checks
// to the fact store and records like events in the activity log.
package catalog

import (
	"github.com/tomtom215/filmgraph/internal/activity"
	"github.com/tomtom215/filmgraph/internal/metrics"
	"github.com/tomtom215/filmgraph/internal/store"
)

// Service is the catalog service.
type Service struct {
	store    store.FactStore
	recorder activity.Recorder
}

// New creates a catalog service. rec may be nil to disable like events.
func New(st store.FactStore, rec activity.Recorder) *Service {
	return &Service{store: st, recorder: rec}
}

func observe(op string, err error) {
	metrics.RecordEngineOperation("catalog", op, metrics.Outcome(err))
}
