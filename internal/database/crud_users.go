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

const userColumns = "id, email, login, name, birthday"

// CreateUser inserts u and assigns its id.
func (db *DB) CreateUser(ctx context.Context, u *models.User) (err error) {
	ctx, done := db.track(ctx, "CreateUser")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		id, err := db.insertReturningID(ctx, tx,
			`INSERT INTO users (email, login, name, birthday) VALUES (?, ?, ?, ?)`,
			u.Email, u.Login, u.Name, dateArg(u.Birthday))
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
		u.ID = id
		return nil
	})
}

// UpdateUser replaces every field of an existing user.
func (db *DB) UpdateUser(ctx context.Context, u *models.User) (err error) {
	ctx, done := db.track(ctx, "UpdateUser")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "users", "user", u.ID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET email = ?, login = ?, name = ?, birthday = ? WHERE id = ?`,
			u.Email, u.Login, u.Name, dateArg(u.Birthday), u.ID); err != nil {
			return fmt.Errorf("failed to update user %d: %w", u.ID, err)
		}
		return nil
	})
}

// GetUser returns one user.
func (db *DB) GetUser(ctx context.Context, id int64) (_ *models.User, err error) {
	ctx, done := db.track(ctx, "GetUser")
	defer func() { done(err) }()

	var u models.User
	err = db.conn.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id).
		Scan(&u.ID, &u.Email, &u.Login, &u.Name, &u.Birthday)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.NotFoundf("user %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &u, nil
}

// ListUsers returns every user, or the existing subset of ids, ascending.
func (db *DB) ListUsers(ctx context.Context, ids []int64) (_ []models.User, err error) {
	ctx, done := db.track(ctx, "ListUsers")
	defer func() { done(err) }()

	out := make([]models.User, 0)
	if ids != nil && len(ids) == 0 {
		return out, nil
	}

	query := "SELECT " + userColumns + " FROM users"
	var args []interface{}
	if ids != nil {
		placeholders, idArgs := buildInClause(ids)
		query += " WHERE id IN (" + placeholders + ")"
		args = idArgs
	}
	query += " ORDER BY id"

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &u.Birthday); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// DeleteUser removes the user with its likes, friendships, reviews,
// reactions and events, then recomputes usefulness of reviews the user
// had reacted to.
func (db *DB) DeleteUser(ctx context.Context, id int64) (err error) {
	ctx, done := db.track(ctx, "DeleteUser")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "users", "user", id); err != nil {
			return err
		}

		reacted, err := scanIDs(ctx, tx,
			`SELECT review_id FROM review_reactions WHERE user_id = ? ORDER BY review_id`, id)
		if err != nil {
			return err
		}

		statements := []struct {
			what  string
			query string
			args  []interface{}
		}{
			{"reactions to authored reviews", `DELETE FROM review_reactions WHERE review_id IN (SELECT id FROM reviews WHERE user_id = ?)`, []interface{}{id}},
			{"reactions", `DELETE FROM review_reactions WHERE user_id = ?`, []interface{}{id}},
			{"reviews", `DELETE FROM reviews WHERE user_id = ?`, []interface{}{id}},
			{"likes", `DELETE FROM likes WHERE user_id = ?`, []interface{}{id}},
			{"friendships", `DELETE FROM friendships WHERE user_id = ? OR friend_id = ?`, []interface{}{id, id}},
			{"events", `DELETE FROM events WHERE user_id = ?`, []interface{}{id}},
			{"user", `DELETE FROM users WHERE id = ?`, []interface{}{id}},
		}
		for _, st := range statements {
			if _, err := tx.ExecContext(ctx, st.query, st.args...); err != nil {
				return fmt.Errorf("failed to delete %s of user %d: %w", st.what, id, err)
			}
		}

		for _, reviewID := range reacted {
			if err := recomputeUseful(ctx, tx, reviewID); err != nil {
				return err
			}
		}
		return nil
	})
}

// scanIDs runs a single-column id query.
func scanIDs(ctx context.Context, q querier, query string, args ...interface{}) ([]int64, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ids: %w", err)
	}
	defer closeQuietly(rows)

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
