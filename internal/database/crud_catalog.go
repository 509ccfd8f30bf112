// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
)

// ListGenres returns the genre lookup ordered by id.
func (db *DB) ListGenres(ctx context.Context) (_ []models.Genre, err error) {
	ctx, done := db.track(ctx, "ListGenres")
	defer func() { done(err) }()

	pairs, err := listNamed(ctx, db.conn, "genres")
	if err != nil {
		return nil, err
	}
	out := make([]models.Genre, len(pairs))
	for i, p := range pairs {
		out[i] = models.Genre{ID: p.ID, Name: p.Name}
	}
	return out, nil
}

// GetGenre returns one genre.
func (db *DB) GetGenre(ctx context.Context, id int64) (_ *models.Genre, err error) {
	ctx, done := db.track(ctx, "GetGenre")
	defer func() { done(err) }()

	p, err := getNamed(ctx, db.conn, "genres", "genre", id)
	if err != nil {
		return nil, err
	}
	return &models.Genre{ID: p.ID, Name: p.Name}, nil
}

// ListMpa returns the MPA rating lookup ordered by id.
func (db *DB) ListMpa(ctx context.Context) (_ []models.Mpa, err error) {
	ctx, done := db.track(ctx, "ListMpa")
	defer func() { done(err) }()

	pairs, err := listNamed(ctx, db.conn, "mpa_ratings")
	if err != nil {
		return nil, err
	}
	out := make([]models.Mpa, len(pairs))
	for i, p := range pairs {
		out[i] = models.Mpa{ID: p.ID, Name: p.Name}
	}
	return out, nil
}

// GetMpa returns one MPA rating.
func (db *DB) GetMpa(ctx context.Context, id int64) (_ *models.Mpa, err error) {
	ctx, done := db.track(ctx, "GetMpa")
	defer func() { done(err) }()

	p, err := getNamed(ctx, db.conn, "mpa_ratings", "mpa rating", id)
	if err != nil {
		return nil, err
	}
	return &models.Mpa{ID: p.ID, Name: p.Name}, nil
}

// CreateDirector inserts d and assigns its id.
func (db *DB) CreateDirector(ctx context.Context, d *models.Director) (err error) {
	ctx, done := db.track(ctx, "CreateDirector")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		id, err := db.insertReturningID(ctx, tx, `INSERT INTO directors (name) VALUES (?)`, d.Name)
		if err != nil {
			return fmt.Errorf("failed to insert director: %w", err)
		}
		d.ID = id
		return nil
	})
}

// UpdateDirector renames an existing director.
func (db *DB) UpdateDirector(ctx context.Context, d *models.Director) (err error) {
	ctx, done := db.track(ctx, "UpdateDirector")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "directors", "director", d.ID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE directors SET name = ? WHERE id = ?`, d.Name, d.ID); err != nil {
			return fmt.Errorf("failed to update director %d: %w", d.ID, err)
		}
		return nil
	})
}

// GetDirector returns one director.
func (db *DB) GetDirector(ctx context.Context, id int64) (_ *models.Director, err error) {
	ctx, done := db.track(ctx, "GetDirector")
	defer func() { done(err) }()

	p, err := getNamed(ctx, db.conn, "directors", "director", id)
	if err != nil {
		return nil, err
	}
	return &models.Director{ID: p.ID, Name: p.Name}, nil
}

// ListDirectors returns every director ordered by id.
func (db *DB) ListDirectors(ctx context.Context) (_ []models.Director, err error) {
	ctx, done := db.track(ctx, "ListDirectors")
	defer func() { done(err) }()

	pairs, err := listNamed(ctx, db.conn, "directors")
	if err != nil {
		return nil, err
	}
	out := make([]models.Director, len(pairs))
	for i, p := range pairs {
		out[i] = models.Director{ID: p.ID, Name: p.Name}
	}
	return out, nil
}

// DeleteDirector removes the director and its film credits.
func (db *DB) DeleteDirector(ctx context.Context, id int64) (err error) {
	ctx, done := db.track(ctx, "DeleteDirector")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "directors", "director", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM film_directors WHERE director_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete credits of director %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM directors WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete director %d: %w", id, err)
		}
		return nil
	})
}

func listNamed(ctx context.Context, q querier, table string) ([]lookupRow, error) {
	rows, err := q.QueryContext(ctx, "SELECT id, name FROM "+table+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer closeQuietly(rows)

	out := make([]lookupRow, 0)
	for rows.Next() {
		var r lookupRow
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func getNamed(ctx context.Context, q querier, table, kind string, id int64) (lookupRow, error) {
	var r lookupRow
	err := q.QueryRowContext(ctx, "SELECT id, name FROM "+table+" WHERE id = ?", id).Scan(&r.ID, &r.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return r, store.NotFoundf("%s %d", kind, id)
	}
	if err != nil {
		return r, fmt.Errorf("failed to get %s %d: %w", kind, id, err)
	}
	return r, nil
}
