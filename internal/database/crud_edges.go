// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/filmgraph/internal/store"
)

// AddLike records that userID likes filmID.
func (db *DB) AddLike(ctx context.Context, filmID, userID int64) (err error) {
	ctx, done := db.track(ctx, "AddLike")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "films", "film", filmID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, "users", "user", userID); err != nil {
			return err
		}
		exists, err := edgeExists(ctx, tx, "likes", "film_id", "user_id", filmID, userID)
		if err != nil {
			return err
		}
		if exists {
			return store.Conflictf("user %d already likes film %d", userID, filmID)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO likes (film_id, user_id) VALUES (?, ?)`, filmID, userID); err != nil {
			return fmt.Errorf("failed to insert like: %w", err)
		}
		return nil
	})
}

// RemoveLike deletes the like if present.
func (db *DB) RemoveLike(ctx context.Context, filmID, userID int64) (err error) {
	ctx, done := db.track(ctx, "RemoveLike")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "films", "film", filmID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, "users", "user", userID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM likes WHERE film_id = ? AND user_id = ?`, filmID, userID); err != nil {
			return fmt.Errorf("failed to delete like: %w", err)
		}
		return nil
	})
}

// LikedFilms returns the ids of films the user likes, ascending.
func (db *DB) LikedFilms(ctx context.Context, userID int64) (_ []int64, err error) {
	ctx, done := db.track(ctx, "LikedFilms")
	defer func() { done(err) }()

	if err := requireRow(ctx, db.conn, "users", "user", userID); err != nil {
		return nil, err
	}
	return scanIDs(ctx, db.conn, `SELECT film_id FROM likes WHERE user_id = ? ORDER BY film_id`, userID)
}

// LikeGraph returns every like edge grouped by user.
func (db *DB) LikeGraph(ctx context.Context) (_ map[int64][]int64, err error) {
	ctx, done := db.track(ctx, "LikeGraph")
	defer func() { done(err) }()

	rows, err := db.conn.QueryContext(ctx, `SELECT user_id, film_id FROM likes ORDER BY user_id, film_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query like graph: %w", err)
	}
	defer closeQuietly(rows)

	graph := make(map[int64][]int64)
	for rows.Next() {
		var userID, filmID int64
		if err := rows.Scan(&userID, &filmID); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		graph[userID] = append(graph[userID], filmID)
	}
	return graph, rows.Err()
}

// AddFriend creates the directed edge userID -> friendID.
func (db *DB) AddFriend(ctx context.Context, userID, friendID int64) (err error) {
	ctx, done := db.track(ctx, "AddFriend")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "users", "user", userID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, "users", "user", friendID); err != nil {
			return err
		}
		exists, err := edgeExists(ctx, tx, "friendships", "user_id", "friend_id", userID, friendID)
		if err != nil {
			return err
		}
		if exists {
			return store.Conflictf("user %d already follows user %d", userID, friendID)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO friendships (user_id, friend_id) VALUES (?, ?)`, userID, friendID); err != nil {
			return fmt.Errorf("failed to insert friendship: %w", err)
		}
		return nil
	})
}

// RemoveFriend deletes the edge userID -> friendID if present.
func (db *DB) RemoveFriend(ctx context.Context, userID, friendID int64) (err error) {
	ctx, done := db.track(ctx, "RemoveFriend")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "users", "user", userID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, "users", "user", friendID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM friendships WHERE user_id = ? AND friend_id = ?`, userID, friendID); err != nil {
			return fmt.Errorf("failed to delete friendship: %w", err)
		}
		return nil
	})
}

// FriendIDs returns the ids userID follows, ascending.
func (db *DB) FriendIDs(ctx context.Context, userID int64) (_ []int64, err error) {
	ctx, done := db.track(ctx, "FriendIDs")
	defer func() { done(err) }()

	if err := requireRow(ctx, db.conn, "users", "user", userID); err != nil {
		return nil, err
	}
	return scanIDs(ctx, db.conn,
		`SELECT friend_id FROM friendships WHERE user_id = ? ORDER BY friend_id`, userID)
}

func edgeExists(ctx context.Context, q querier, table, leftCol, rightCol string, left, right int64) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ? AND %s = ?", table, leftCol, rightCol),
		left, right).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check %s edge: %w", table, err)
	}
	return n > 0, nil
}
