// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/filmgraph/internal/models"
)

// AppendEvent inserts e and assigns its id.
func (db *DB) AppendEvent(ctx context.Context, e *models.Event) (err error) {
	ctx, done := db.track(ctx, "AppendEvent")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "users", "user", e.UserID); err != nil {
			return err
		}
		id, err := db.insertReturningID(ctx, tx,
			`INSERT INTO events (created_at_ms, user_id, event_type, operation, entity_id) VALUES (?, ?, ?, ?, ?)`,
			e.Timestamp, e.UserID, string(e.Category), string(e.Operation), e.EntityID)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
		e.ID = id
		return nil
	})
}

// ListEvents returns the actor's events in ascending id order.
func (db *DB) ListEvents(ctx context.Context, userID int64) (_ []models.Event, err error) {
	ctx, done := db.track(ctx, "ListEvents")
	defer func() { done(err) }()

	if err := requireRow(ctx, db.conn, "users", "user", userID); err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, created_at_ms, user_id, event_type, operation, entity_id
		FROM events WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer closeQuietly(rows)

	events := make([]models.Event, 0)
	for rows.Next() {
		var e models.Event
		var category, operation string
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.UserID, &category, &operation, &e.EntityID); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Category = models.EventCategory(category)
		e.Operation = models.EventOperation(operation)
		events = append(events, e)
	}
	return events, rows.Err()
}
