// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package reputation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/filmgraph/internal/activity"
	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/metrics"
	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
	"github.com/tomtom215/filmgraph/internal/validation"
)

// DefaultLimit is the number of reviews listed when no limit is given.
const DefaultLimit = 10

// Config tunes the engine.
type Config struct {
	// DefaultLimit replaces an unspecified list limit. Zero means DefaultLimit.
	DefaultLimit int
}

// reviewEdit holds the fields an update may change.
type reviewEdit struct {
	ID         int64  `json:"reviewId" validate:"gt=0"`
	Content    string `json:"content" validate:"required,notblank"`
	IsPositive *bool  `json:"isPositive" validate:"required"`
}

// Engine manages reviews and keeps each review's usefulness equal to its
// helpful reactions minus its unhelpful ones. Every change goes through a
// single store transaction; the engine itself holds no state.
type Engine struct {
	reviews      store.ReviewStore
	recorder     activity.Recorder
	defaultLimit int
	logger       zerolog.Logger
}

// New creates a reputation engine. rec may be nil to disable activity
// recording.
func New(reviews store.ReviewStore, rec activity.Recorder, cfg Config) *Engine {
	limit := cfg.DefaultLimit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Engine{
		reviews:      reviews,
		recorder:     rec,
		defaultLimit: limit,
		logger:       logging.WithComponent("reputation"),
	}
}

// Create stores a new review with usefulness 0. The author and the film
// must exist.
func (e *Engine) Create(ctx context.Context, r *models.Review) (_ *models.Review, err error) {
	defer func() { observe("create", err) }()

	if verr := validation.ValidateStruct(r); verr != nil {
		return nil, verr
	}
	created := *r
	created.ID = 0
	if err := e.reviews.CreateReview(ctx, &created); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	activity.Emit(ctx, e.recorder, created.UserID, models.EventReview, models.OperationAdd, created.ID)
	return &created, nil
}

// Update changes the content and polarity of an existing review. Author,
// film and usefulness are kept.
func (e *Engine) Update(ctx context.Context, r *models.Review) (_ *models.Review, err error) {
	defer func() { observe("update", err) }()

	edit := reviewEdit{ID: r.ID, Content: r.Content, IsPositive: r.IsPositive}
	if verr := validation.ValidateStruct(&edit); verr != nil {
		return nil, verr
	}
	updated := models.Review{ID: edit.ID, Content: edit.Content, IsPositive: edit.IsPositive}
	if err := e.reviews.UpdateReview(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update review %d: %w", edit.ID, err)
	}

	activity.Emit(ctx, e.recorder, updated.UserID, models.EventReview, models.OperationUpdate, updated.ID)
	return &updated, nil
}

// Delete removes a review and its reactions.
func (e *Engine) Delete(ctx context.Context, id int64) (err error) {
	defer func() { observe("delete", err) }()

	r, err := e.reviews.GetReview(ctx, id)
	if err != nil {
		return fmt.Errorf("review %d: %w", id, err)
	}
	if err := e.reviews.DeleteReview(ctx, id); err != nil {
		return fmt.Errorf("delete review %d: %w", id, err)
	}

	activity.Emit(ctx, e.recorder, r.UserID, models.EventReview, models.OperationRemove, id)
	return nil
}

// Get returns one review.
func (e *Engine) Get(ctx context.Context, id int64) (*models.Review, error) {
	r, err := e.reviews.GetReview(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("review %d: %w", id, err)
	}
	return r, nil
}

// ListForFilm returns a film's reviews, most useful first. filmID 0 lists
// reviews of every film. A nil limit uses the default, zero returns nothing
// and a negative limit is a validation error.
func (e *Engine) ListForFilm(ctx context.Context, filmID int64, limit *int) (_ []models.Review, err error) {
	defer func() { observe("list", err) }()

	n := e.defaultLimit
	if limit != nil {
		n = *limit
	}
	if n < 0 {
		return nil, validation.NewError("count", "gte", n, "count must not be negative")
	}
	if n == 0 {
		return []models.Review{}, nil
	}

	reviews, err := e.reviews.ListReviews(ctx, filmID, n)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// React records the user's verdict on a review, replacing any earlier one
// from the same user, and returns the recomputed usefulness.
func (e *Engine) React(ctx context.Context, reviewID, userID int64, helpful bool) (_ int, err error) {
	defer func() { observe("react", err) }()

	out, err := e.reviews.SetReaction(ctx, reviewID, userID, helpful)
	if err != nil {
		return 0, fmt.Errorf("react to review %d: %w", reviewID, err)
	}

	op := models.OperationAdd
	if out.Previous != nil {
		op = models.OperationUpdate
	}
	activity.Emit(ctx, e.recorder, userID, models.EventReaction, op, reviewID)

	e.logger.Debug().
		Int64("review_id", reviewID).
		Int64("user_id", userID).
		Bool("helpful", helpful).
		Int("useful", out.Useful).
		Msg("reaction stored")
	return out.Useful, nil
}

// RemoveReaction deletes the user's reaction to a review and returns the
// recomputed usefulness. Removing an absent reaction changes nothing.
func (e *Engine) RemoveReaction(ctx context.Context, reviewID, userID int64) (_ int, err error) {
	defer func() { observe("remove_reaction", err) }()

	out, err := e.reviews.DeleteReaction(ctx, reviewID, userID)
	if err != nil {
		return 0, fmt.Errorf("remove reaction from review %d: %w", reviewID, err)
	}
	if out.Previous != nil {
		activity.Emit(ctx, e.recorder, userID, models.EventReaction, models.OperationRemove, reviewID)
	}
	return out.Useful, nil
}

func observe(op string, err error) {
	metrics.RecordEngineOperation("reputation", op, metrics.Outcome(err))
}
