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

const reviewColumns = "id, content, is_positive, user_id, film_id, useful"

// CreateReview inserts r with usefulness 0.
func (db *DB) CreateReview(ctx context.Context, r *models.Review) (err error) {
	ctx, done := db.track(ctx, "CreateReview")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "users", "user", r.UserID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, "films", "film", r.FilmID); err != nil {
			return err
		}
		id, err := db.insertReturningID(ctx, tx,
			`INSERT INTO reviews (content, is_positive, user_id, film_id, useful) VALUES (?, ?, ?, ?, 0)`,
			r.Content, r.Positive(), r.UserID, r.FilmID)
		if err != nil {
			return fmt.Errorf("failed to insert review: %w", err)
		}
		r.ID = id
		r.Useful = 0
		return nil
	})
}

// UpdateReview changes content and polarity only, then refreshes r.
func (db *DB) UpdateReview(ctx context.Context, r *models.Review) (err error) {
	ctx, done := db.track(ctx, "UpdateReview")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "reviews", "review", r.ID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE reviews SET content = ?, is_positive = ? WHERE id = ?`,
			r.Content, r.Positive(), r.ID); err != nil {
			return fmt.Errorf("failed to update review %d: %w", r.ID, err)
		}
		stored, err := getReview(ctx, tx, r.ID)
		if err != nil {
			return err
		}
		*r = *stored
		return nil
	})
}

// GetReview returns one review.
func (db *DB) GetReview(ctx context.Context, id int64) (_ *models.Review, err error) {
	ctx, done := db.track(ctx, "GetReview")
	defer func() { done(err) }()

	return getReview(ctx, db.conn, id)
}

func getReview(ctx context.Context, q querier, id int64) (*models.Review, error) {
	r, err := scanReview(q.QueryRowContext(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.NotFoundf("review %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review %d: %w", id, err)
	}
	return r, nil
}

// ListReviews returns up to limit reviews, most useful first. A negative
// limit means no limit.
func (db *DB) ListReviews(ctx context.Context, filmID int64, limit int) (_ []models.Review, err error) {
	ctx, done := db.track(ctx, "ListReviews")
	defer func() { done(err) }()

	out := make([]models.Review, 0)
	if limit == 0 {
		return out, nil
	}

	query := "SELECT " + reviewColumns + " FROM reviews"
	var args []interface{}
	if filmID != 0 {
		query += " WHERE film_id = ?"
		args = append(args, filmID)
	}
	query += " ORDER BY useful DESC, id ASC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// DeleteReview removes the review and its reactions.
func (db *DB) DeleteReview(ctx context.Context, id int64) (err error) {
	ctx, done := db.track(ctx, "DeleteReview")
	defer func() { done(err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "reviews", "review", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM review_reactions WHERE review_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete reactions of review %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete review %d: %w", id, err)
		}
		return nil
	})
}

// SetReaction upserts the (review, user) reaction and recomputes usefulness
// in the same transaction.
func (db *DB) SetReaction(ctx context.Context, reviewID, userID int64, helpful bool) (_ models.ReactionOutcome, err error) {
	ctx, done := db.track(ctx, "SetReaction")
	defer func() { done(err) }()

	var out models.ReactionOutcome
	err = db.withTx(ctx, func(tx *sql.Tx) error {
		previous, err := db.lockReaction(ctx, tx, reviewID, userID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, db.dialect.upsertReaction(), reviewID, userID, helpful); err != nil {
			return fmt.Errorf("failed to store reaction: %w", err)
		}
		useful, err := recomputeAndRead(ctx, tx, reviewID)
		if err != nil {
			return err
		}
		out = models.ReactionOutcome{Useful: useful, Previous: previous}
		return nil
	})
	return out, err
}

// DeleteReaction removes the (review, user) reaction if present and
// recomputes usefulness in the same transaction.
func (db *DB) DeleteReaction(ctx context.Context, reviewID, userID int64) (_ models.ReactionOutcome, err error) {
	ctx, done := db.track(ctx, "DeleteReaction")
	defer func() { done(err) }()

	var out models.ReactionOutcome
	err = db.withTx(ctx, func(tx *sql.Tx) error {
		previous, err := db.lockReaction(ctx, tx, reviewID, userID)
		if err != nil {
			return err
		}
		if previous != nil {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM review_reactions WHERE review_id = ? AND user_id = ?`, reviewID, userID); err != nil {
				return fmt.Errorf("failed to delete reaction: %w", err)
			}
		}
		useful, err := recomputeAndRead(ctx, tx, reviewID)
		if err != nil {
			return err
		}
		out = models.ReactionOutcome{Useful: useful, Previous: previous}
		return nil
	})
	return out, err
}

// lockReaction checks both ends of a reaction, locks the review row where
// the dialect supports it, and returns the current reaction if any.
func (db *DB) lockReaction(ctx context.Context, tx *sql.Tx, reviewID, userID int64) (*bool, error) {
	var useful int
	err := tx.QueryRowContext(ctx,
		"SELECT useful FROM reviews WHERE id = ?"+db.dialect.lockSuffix, reviewID).Scan(&useful)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.NotFoundf("review %d", reviewID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock review %d: %w", reviewID, err)
	}
	if err := requireRow(ctx, tx, "users", "user", userID); err != nil {
		return nil, err
	}

	var helpful bool
	err = tx.QueryRowContext(ctx,
		`SELECT helpful FROM review_reactions WHERE review_id = ? AND user_id = ?`,
		reviewID, userID).Scan(&helpful)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read reaction: %w", err)
	}
	return &helpful, nil
}

// recomputeUseful rewrites the cached usefulness of one review from its
// reaction set. A missing review is left alone.
func recomputeUseful(ctx context.Context, tx *sql.Tx, reviewID int64) error {
	_, err := tx.ExecContext(ctx, `UPDATE reviews SET useful =
		(SELECT COUNT(*) FROM review_reactions r WHERE r.review_id = ? AND r.helpful = TRUE) -
		(SELECT COUNT(*) FROM review_reactions r WHERE r.review_id = ? AND r.helpful = FALSE)
		WHERE id = ?`, reviewID, reviewID, reviewID)
	if err != nil {
		return fmt.Errorf("failed to recompute usefulness of review %d: %w", reviewID, err)
	}
	return nil
}

func recomputeAndRead(ctx context.Context, tx *sql.Tx, reviewID int64) (int, error) {
	if err := recomputeUseful(ctx, tx, reviewID); err != nil {
		return 0, err
	}
	var useful int
	if err := tx.QueryRowContext(ctx, `SELECT useful FROM reviews WHERE id = ?`, reviewID).Scan(&useful); err != nil {
		return 0, fmt.Errorf("failed to read usefulness of review %d: %w", reviewID, err)
	}
	return useful, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReview(row rowScanner) (*models.Review, error) {
	var r models.Review
	var positive bool
	if err := row.Scan(&r.ID, &r.Content, &positive, &r.UserID, &r.FilmID, &r.Useful); err != nil {
		return nil, err
	}
	r.IsPositive = &positive
	return &r, nil
}
