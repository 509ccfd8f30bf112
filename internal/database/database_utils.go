// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/filmgraph/internal/metrics"
	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
)

const defaultQueryTimeout = 30 * time.Second

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// ensureContext applies the configured query timeout when ctx has no deadline
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := db.cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	if ctx == nil {
		return context.WithTimeout(context.Background(), timeout)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	return ctx, func() {}
}

// track opens the tracing span and timeout for one store operation. The
// returned function must be called with the operation's final error.
func (db *DB) track(ctx context.Context, op string) (context.Context, func(error)) {
	start := time.Now()
	ctx, cancel := db.ensureContext(ctx)
	ctx, end := store.StartSpan(ctx, db.dialect.name, op)
	return ctx, func(err error) {
		metrics.RecordStoreQuery(db.dialect.name, op, time.Since(start), errorKind(err))
		end(err)
		cancel()
	}
}

// withTx runs fn in one transaction and commits it. Driver constraint
// failures come back as store.ErrConflict.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	if db.dialect.serializeWrites {
		db.writeMu.Lock()
		defer db.writeMu.Unlock()
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return classifyError(err)
	}
	if err = tx.Commit(); err != nil {
		return classifyError(fmt.Errorf("failed to commit transaction: %w", err))
	}
	return nil
}

// requireRow fails with store.ErrNotFound unless table has a row with id.
func requireRow(ctx context.Context, q querier, table, kind string, id int64) error {
	var n int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+" WHERE id = ?", id).Scan(&n); err != nil {
		return fmt.Errorf("failed to check %s %d: %w", kind, id, err)
	}
	if n == 0 {
		return store.NotFoundf("%s %d", kind, id)
	}
	return nil
}

// insertReturningID inserts one row and returns its generated id.
func (db *DB) insertReturningID(ctx context.Context, tx *sql.Tx, query string, args ...interface{}) (int64, error) {
	if db.dialect.returning {
		var id int64
		if err := tx.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Checkpoint forces a WAL checkpoint. It is a no-op for MySQL.
func (db *DB) Checkpoint(ctx context.Context) error {
	if !db.dialect.checkpoint {
		return nil
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// dateArg binds a calendar date, storing the zero date as NULL. Drivers
// receive a plain time.Time rather than the models.Date wrapper.
func dateArg(d models.Date) interface{} {
	if d.IsZero() {
		return nil
	}
	return d.Time
}
