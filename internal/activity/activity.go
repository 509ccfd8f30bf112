// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/metrics"
	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
	"github.com/tomtom215/filmgraph/internal/validation"
)

//go:generate mockgen -destination=mocks/recorder_mock.go -package=mocks github.com/tomtom215/filmgraph/internal/activity Recorder

// Recorder appends activity events. Engines depend on this interface so the
// log can be replaced in tests.
type Recorder interface {
	Record(ctx context.Context, userID int64, category models.EventCategory, op models.EventOperation, entityID int64) error
}

// Log is the append-only activity log backed by an EventStore.
type Log struct {
	events store.EventStore
	now    func() time.Time
}

var _ Recorder = (*Log)(nil)

// New creates an activity log over events.
func New(events store.EventStore) *Log {
	return &Log{events: events, now: time.Now}
}

// Record appends one event with a server-assigned id and timestamp. It
// fails only for an unknown category or operation, a missing actor or an
// unavailable store.
func (l *Log) Record(ctx context.Context, userID int64, category models.EventCategory, op models.EventOperation, entityID int64) error {
	if !category.Valid() {
		return validation.NewError("eventType", "oneof", string(category), "unknown event type %q", category)
	}
	if !op.Valid() {
		return validation.NewError("operation", "oneof", string(op), "unknown operation %q", op)
	}

	e := &models.Event{
		Timestamp: l.now().UnixMilli(),
		UserID:    userID,
		Category:  category,
		Operation: op,
		EntityID:  entityID,
	}
	if err := l.events.AppendEvent(ctx, e); err != nil {
		return fmt.Errorf("append %s %s event: %w", category, op, err)
	}
	return nil
}

// FeedFor returns the user's events oldest first.
func (l *Log) FeedFor(ctx context.Context, userID int64) ([]models.Event, error) {
	events, err := l.events.ListEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("feed for user %d: %w", userID, err)
	}
	return events, nil
}

// Emit records an event on behalf of a mutation that has already committed.
// Failures are logged and counted but never returned, so the caller's
// mutation stands. A nil recorder disables recording.
func Emit(ctx context.Context, rec Recorder, userID int64, category models.EventCategory, op models.EventOperation, entityID int64) {
	if rec == nil {
		return
	}
	if err := rec.Record(ctx, userID, category, op, entityID); err != nil {
		metrics.RecordActivityFailure(string(category))
		if logging.UserIDFromContext(ctx) == 0 {
			ctx = logging.ContextWithUserID(ctx, userID)
		}
		logging.Ctx(ctx).Warn().Err(err).
			Int64("actor_id", userID).
			Str("event_type", string(category)).
			Str("operation", string(op)).
			Int64("entity_id", entityID).
			Msg("Activity event not recorded")
		return
	}
	metrics.RecordActivityEvent(string(category), string(op))
}
