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
	"github.com/tomtom215/filmgraph/internal/store"
)

const filmSelect = `SELECT f.id, f.name, f.description, f.release_date, f.duration, f.mpa_id, m.name,
	(SELECT COUNT(*) FROM likes l WHERE l.film_id = f.id)
FROM films f
LEFT JOIN mpa_ratings m ON m.id = f.mpa_id`

// CreateFilm inserts f with its genre and director sets.
func (db *DB) CreateFilm(ctx context.Context, f *models.Film) (err error) {
	ctx, done := db.track(ctx, "CreateFilm")
	defer func() { done(err) }()

	err = db.withTx(ctx, func(tx *sql.Tx) error {
		if err := checkFilmReferences(ctx, tx, f); err != nil {
			return err
		}
		id, err := db.insertReturningID(ctx, tx,
			`INSERT INTO films (name, description, release_date, duration, mpa_id) VALUES (?, ?, ?, ?, ?)`,
			f.Name, f.Description, dateArg(f.ReleaseDate), f.Duration, mpaID(f))
		if err != nil {
			return fmt.Errorf("failed to insert film: %w", err)
		}
		if err := insertLinks(ctx, tx, "film_genres", "genre_id", id, f.GenreIDs()); err != nil {
			return err
		}
		if err := insertLinks(ctx, tx, "film_directors", "director_id", id, f.DirectorIDs()); err != nil {
			return err
		}
		f.ID = id
		return nil
	})
	if err != nil {
		return err
	}
	return db.refreshFilm(ctx, f)
}

// UpdateFilm replaces an existing film and its genre and director sets.
// Link rows are diffed rather than rewritten.
func (db *DB) UpdateFilm(ctx context.Context, f *models.Film) (err error) {
	ctx, done := db.track(ctx, "UpdateFilm")
	defer func() { done(err) }()

	err = db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "films", "film", f.ID); err != nil {
			return err
		}
		if err := checkFilmReferences(ctx, tx, f); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE films SET name = ?, description = ?, release_date = ?, duration = ?, mpa_id = ? WHERE id = ?`,
			f.Name, f.Description, dateArg(f.ReleaseDate), f.Duration, mpaID(f), f.ID); err != nil {
			return fmt.Errorf("failed to update film %d: %w", f.ID, err)
		}
		if err := syncLinks(ctx, tx, "film_genres", "genre_id", f.ID, f.GenreIDs()); err != nil {
			return err
		}
		return syncLinks(ctx, tx, "film_directors", "director_id", f.ID, f.DirectorIDs())
	})
	if err != nil {
		return err
	}
	return db.refreshFilm(ctx, f)
}

// GetFilm returns the film with its like count.
func (db *DB) GetFilm(ctx context.Context, id int64) (_ *models.Film, err error) {
	ctx, done := db.track(ctx, "GetFilm")
	defer func() { done(err) }()

	return db.getFilm(ctx, id)
}

func (db *DB) getFilm(ctx context.Context, id int64) (*models.Film, error) {
	films, err := loadFilms(ctx, db.conn, "f.id = ?", []interface{}{id})
	if err != nil {
		return nil, err
	}
	if len(films) == 0 {
		return nil, store.NotFoundf("film %d", id)
	}
	return &films[0], nil
}

// refreshFilm reloads f from the committed row so lookup names are filled.
func (db *DB) refreshFilm(ctx context.Context, f *models.Film) error {
	stored, err := db.getFilm(ctx, f.ID)
	if err != nil {
		return err
	}
	*f = *stored
	return nil
}

// ListFilms returns the films matching filter in ascending id order.
func (db *DB) ListFilms(ctx context.Context, filter store.FilmFilter) (_ []models.Film, err error) {
	ctx, done := db.track(ctx, "ListFilms")
	defer func() { done(err) }()

	if filter.IDs != nil && len(filter.IDs) == 0 {
		return []models.Film{}, nil
	}
	where, args := buildFilmConditions(filter)
	return loadFilms(ctx, db.conn, where, args)
}

// DeleteFilm removes the film with its links, likes, reviews and their
// reactions.
func (db *DB) DeleteFilm(ctx context.Context, id int64) (err error) {
	ctx, done := db.track(ctx, "DeleteFilm")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "films", "film", id); err != nil {
			return err
		}
		statements := []struct {
			what  string
			query string
		}{
			{"reactions", `DELETE FROM review_reactions WHERE review_id IN (SELECT id FROM reviews WHERE film_id = ?)`},
			{"reviews", `DELETE FROM reviews WHERE film_id = ?`},
			{"likes", `DELETE FROM likes WHERE film_id = ?`},
			{"genres", `DELETE FROM film_genres WHERE film_id = ?`},
			{"directors", `DELETE FROM film_directors WHERE film_id = ?`},
			{"film", `DELETE FROM films WHERE id = ?`},
		}
		for _, st := range statements {
			if _, err := tx.ExecContext(ctx, st.query, id); err != nil {
				return fmt.Errorf("failed to delete %s of film %d: %w", st.what, id, err)
			}
		}
		return nil
	})
}

func mpaID(f *models.Film) interface{} {
	if f.Mpa == nil {
		return nil
	}
	return f.Mpa.ID
}

// checkFilmReferences verifies the MPA rating, genres and directors exist.
func checkFilmReferences(ctx context.Context, q querier, f *models.Film) error {
	if f.Mpa != nil {
		if err := requireRow(ctx, q, "mpa_ratings", "mpa rating", f.Mpa.ID); err != nil {
			return err
		}
	}
	for _, id := range f.GenreIDs() {
		if err := requireRow(ctx, q, "genres", "genre", id); err != nil {
			return err
		}
	}
	for _, id := range f.DirectorIDs() {
		if err := requireRow(ctx, q, "directors", "director", id); err != nil {
			return err
		}
	}
	return nil
}

func insertLinks(ctx context.Context, tx *sql.Tx, table, column string, filmID int64, ids []int64) error {
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("INSERT INTO %s (film_id, %s) VALUES (?, ?)", table, column), filmID, id); err != nil {
			return fmt.Errorf("failed to link film %d in %s: %w", filmID, table, err)
		}
	}
	return nil
}

// syncLinks makes the link table hold exactly want for filmID.
func syncLinks(ctx context.Context, tx *sql.Tx, table, column string, filmID int64, want []int64) error {
	have, err := scanIDs(ctx, tx,
		fmt.Sprintf("SELECT %s FROM %s WHERE film_id = ?", column, table), filmID)
	if err != nil {
		return err
	}

	wanted := make(map[int64]struct{}, len(want))
	for _, id := range want {
		wanted[id] = struct{}{}
	}
	existing := make(map[int64]struct{}, len(have))
	for _, id := range have {
		existing[id] = struct{}{}
		if _, keep := wanted[id]; keep {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE film_id = ? AND %s = ?", table, column), filmID, id); err != nil {
			return fmt.Errorf("failed to unlink film %d in %s: %w", filmID, table, err)
		}
	}

	var added []int64
	for _, id := range want {
		if _, ok := existing[id]; !ok {
			added = append(added, id)
		}
	}
	return insertLinks(ctx, tx, table, column, filmID, added)
}

// loadFilms runs filmSelect with an optional WHERE clause and attaches
// genres and directors in two batched queries.
func loadFilms(ctx context.Context, q querier, where string, args []interface{}) ([]models.Film, error) {
	query := filmSelect
	if where != "" {
		query += "\nWHERE " + where
	}
	query += "\nORDER BY f.id"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query films: %w", err)
	}
	defer closeQuietly(rows)

	films := make([]models.Film, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var (
			f       models.Film
			mpaID   sql.NullInt64
			mpaName sql.NullString
		)
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.ReleaseDate, &f.Duration,
			&mpaID, &mpaName, &f.Likes); err != nil {
			return nil, fmt.Errorf("failed to scan film: %w", err)
		}
		if mpaID.Valid {
			f.Mpa = &models.Mpa{ID: mpaID.Int64, Name: mpaName.String}
		}
		f.Genres = []models.Genre{}
		f.Directors = []models.Director{}
		index[f.ID] = len(films)
		films = append(films, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate films: %w", err)
	}
	if len(films) == 0 {
		return films, nil
	}

	ids := make([]int64, len(films))
	for i, f := range films {
		ids[i] = f.ID
	}
	placeholders, idArgs := buildInClause(ids)

	err = forEachLink(ctx, q, `SELECT fg.film_id, g.id, g.name FROM film_genres fg
		JOIN genres g ON g.id = fg.genre_id
		WHERE fg.film_id IN (`+placeholders+`) ORDER BY fg.film_id, g.id`, idArgs,
		func(filmID, id int64, name string) {
			f := &films[index[filmID]]
			f.Genres = append(f.Genres, models.Genre{ID: id, Name: name})
		})
	if err != nil {
		return nil, err
	}

	err = forEachLink(ctx, q, `SELECT fd.film_id, d.id, d.name FROM film_directors fd
		JOIN directors d ON d.id = fd.director_id
		WHERE fd.film_id IN (`+placeholders+`) ORDER BY fd.film_id, d.id`, idArgs,
		func(filmID, id int64, name string) {
			f := &films[index[filmID]]
			f.Directors = append(f.Directors, models.Director{ID: id, Name: name})
		})
	if err != nil {
		return nil, err
	}
	return films, nil
}

func forEachLink(ctx context.Context, q querier, query string, args []interface{}, fn func(filmID, id int64, name string)) error {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query film links: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var filmID, id int64
		var name string
		if err := rows.Scan(&filmID, &id, &name); err != nil {
			return fmt.Errorf("failed to scan film link: %w", err)
		}
		fn(filmID, id, name)
	}
	return rows.Err()
}
