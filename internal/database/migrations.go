// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/models"
)

// Migration represents a versioned database migration.
type Migration struct {
	Version     int           // Unique version number (monotonically increasing)
	Name        string        // Human-readable migration name
	Description string        // Description of what this migration does
	SQL         string        // SQL statement to execute
	Args        []interface{} // Bind arguments for SQL
	AppliedAt   time.Time     // When the migration was applied (populated on query)
}

// getMigrations returns all versioned migrations in order.
//
// Migrations MUST be append-only - never modify or remove existing migrations
// once databases with data exist.
func (db *DB) getMigrations() []Migration {
	genres := make([]lookupRow, 0, len(models.StandardGenres))
	for _, g := range models.StandardGenres {
		genres = append(genres, lookupRow{g.ID, g.Name})
	}
	ratings := make([]lookupRow, 0, len(models.StandardRatings))
	for _, m := range models.StandardRatings {
		ratings = append(ratings, lookupRow{m.ID, m.Name})
	}
	genreSQL, genreArgs := seedLookup("genres", genres)
	mpaSQL, mpaArgs := seedLookup("mpa_ratings", ratings)

	return []Migration{
		{Version: 1, Name: "seed_genres", Description: "Insert the standard genre lookup",
			SQL: genreSQL, Args: genreArgs},
		{Version: 2, Name: "seed_mpa_ratings", Description: "Insert the MPA rating lookup",
			SQL: mpaSQL, Args: mpaArgs},
	}
}

type lookupRow struct {
	ID   int64
	Name string
}

// seedLookup builds a single multi-row INSERT for a fixed-id lookup table.
func seedLookup(table string, rows []lookupRow) (string, []interface{}) {
	values := make([]string, len(rows))
	args := make([]interface{}, 0, 2*len(rows))
	for i, r := range rows {
		values[i] = "(?, ?)"
		args = append(args, r.ID, r.Name)
	}
	return fmt.Sprintf("INSERT INTO %s (id, name) VALUES %s", table, strings.Join(values, ", ")), args
}

// createMigrationsTable creates the schema_migrations table if it doesn't exist
func (db *DB) createMigrationsTable(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name %s NOT NULL,
	description %s,
	applied_at BIGINT NOT NULL
)%s`, db.dialect.varchar(255), db.dialect.text(), db.dialect.tableSuffix))
	return err
}

// getAppliedMigrations returns a map of version -> Migration for all applied migrations
func (db *DB) getAppliedMigrations(ctx context.Context) (map[int]Migration, error) {
	history, err := db.queryMigrations(ctx)
	if err != nil {
		return nil, err
	}
	applied := make(map[int]Migration, len(history))
	for _, m := range history {
		applied[m.Version] = m
	}
	return applied, nil
}

// runVersionedMigrations executes only new migrations that haven't been applied yet.
// Each migration and its bookkeeping row commit together.
func (db *DB) runVersionedMigrations() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if err := db.createMigrationsTable(ctx); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := db.getAppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	newMigrations := 0
	for _, m := range db.getMigrations() {
		if _, exists := applied[m.Version]; exists {
			continue
		}
		if err := db.applyMigration(ctx, m); err != nil {
			return err
		}
		newMigrations++
	}

	if newMigrations > 0 {
		logging.Info().Int("count", newMigrations).Msg("Applied database migrations")
	}
	return nil
}

func (db *DB) applyMigration(ctx context.Context, m Migration) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration v%d: %w", m.Version, err)
	}
	if _, err := tx.ExecContext(ctx, m.SQL, m.Args...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to execute migration v%d (%s): %w", m.Version, m.Name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, description, applied_at) VALUES (?, ?, ?, ?)`,
		m.Version, m.Name, m.Description, time.Now().Unix()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to record migration v%d: %w", m.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration v%d: %w", m.Version, err)
	}
	return nil
}

// GetCurrentSchemaVersion returns the highest applied migration version
func (db *DB) GetCurrentSchemaVersion(ctx context.Context) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var version int
	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// GetMigrationHistory returns all applied migrations in order
func (db *DB) GetMigrationHistory(ctx context.Context) ([]Migration, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	return db.queryMigrations(ctx)
}

func (db *DB) queryMigrations(ctx context.Context) ([]Migration, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT version, name, COALESCE(description, ''), applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query migration history: %w", err)
	}
	defer closeQuietly(rows)

	var history []Migration
	for rows.Next() {
		var m Migration
		var appliedAt int64
		if err := rows.Scan(&m.Version, &m.Name, &m.Description, &appliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration: %w", err)
		}
		m.AppliedAt = time.Unix(appliedAt, 0).UTC()
		history = append(history, m)
	}
	return history, rows.Err()
}
