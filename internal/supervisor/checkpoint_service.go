// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package supervisor

import (
	"context"
	"time"

	"github.com/tomtom215/filmgraph/internal/logging"
)

// Checkpointer flushes the store's write-ahead log. Satisfied by
// *database.DB.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService checkpoints the fact store on a fixed interval.
// Failures are logged and retried on the next tick; they do not restart
// the service. It is store maintenance only: no engine operation waits on
// or observes a checkpoint, and the memory driver runs without one.
type CheckpointService struct {
	store    Checkpointer
	interval time.Duration
	name     string
}

// NewCheckpointService creates the service. interval must be positive.
func NewCheckpointService(store Checkpointer, interval time.Duration) *CheckpointService {
	return &CheckpointService{
		store:    store,
		interval: interval,
		name:     "store-checkpoint",
	}
}

// Serve implements suture.Service.
func (s *CheckpointService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Final flush so a clean shutdown leaves nothing in the WAL.
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			s.checkpoint(flushCtx)
			cancel()
			return ctx.Err()
		case <-ticker.C:
			s.checkpoint(ctx)
		}
	}
}

func (s *CheckpointService) checkpoint(ctx context.Context) {
	start := time.Now()
	if err := s.store.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Store checkpoint failed")
		return
	}
	logging.Debug().Dur("duration", time.Since(start)).Msg("Store checkpoint complete")
}

// String names the service in supervisor events.
func (s *CheckpointService) String() string {
	return s.name
}
