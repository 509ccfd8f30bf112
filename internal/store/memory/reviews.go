// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package memory

import (
	"context"
	"sort"

	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
)

// CreateReview inserts r with usefulness 0.
func (s *Store) CreateReview(ctx context.Context, r *models.Review) (err error) {
	end := span(ctx, "CreateReview")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser(r.UserID); err != nil {
		return err
	}
	if err := s.requireFilm(r.FilmID); err != nil {
		return err
	}

	s.nextReview++
	r.ID = s.nextReview
	r.Useful = 0
	s.reviews[r.ID] = copyReview(*r)
	return nil
}

// UpdateReview changes content and polarity only.
func (s *Store) UpdateReview(ctx context.Context, r *models.Review) (err error) {
	end := span(ctx, "UpdateReview")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.reviews[r.ID]
	if !ok {
		return store.NotFoundf("review %d", r.ID)
	}
	positive := r.Positive()
	stored.Content = r.Content
	stored.IsPositive = &positive
	s.reviews[r.ID] = stored
	*r = copyReview(stored)
	return nil
}

// GetReview returns a copy of the review.
func (s *Store) GetReview(ctx context.Context, id int64) (_ *models.Review, err error) {
	end := span(ctx, "GetReview")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reviews[id]
	if !ok {
		return nil, store.NotFoundf("review %d", id)
	}
	out := copyReview(r)
	return &out, nil
}

// ListReviews returns up to limit reviews, most useful first.
func (s *Store) ListReviews(ctx context.Context, filmID int64, limit int) (_ []models.Review, err error) {
	end := span(ctx, "ListReviews")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Review, 0)
	for _, r := range s.reviews {
		if filmID != 0 && r.FilmID != filmID {
			continue
		}
		out = append(out, copyReview(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Useful != out[j].Useful {
			return out[i].Useful > out[j].Useful
		}
		return out[i].ID < out[j].ID
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// DeleteReview removes the review and its reactions.
func (s *Store) DeleteReview(ctx context.Context, id int64) (err error) {
	end := span(ctx, "DeleteReview")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return store.NotFoundf("review %d", id)
	}
	s.deleteReviewLocked(id)
	return nil
}

// SetReaction upserts the reaction and recomputes usefulness.
func (s *Store) SetReaction(ctx context.Context, reviewID, userID int64, helpful bool) (_ models.ReactionOutcome, err error) {
	end := span(ctx, "SetReaction")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[reviewID]; !ok {
		return models.ReactionOutcome{}, store.NotFoundf("review %d", reviewID)
	}
	if err := s.requireUser(userID); err != nil {
		return models.ReactionOutcome{}, err
	}

	byUser, ok := s.reactions[reviewID]
	if !ok {
		byUser = make(map[int64]bool)
		s.reactions[reviewID] = byUser
	}
	var previous *bool
	if prev, ok := byUser[userID]; ok {
		previous = &prev
	}
	byUser[userID] = helpful

	return models.ReactionOutcome{Useful: s.recomputeLocked(reviewID), Previous: previous}, nil
}

// DeleteReaction removes the reaction if present and recomputes usefulness.
func (s *Store) DeleteReaction(ctx context.Context, reviewID, userID int64) (_ models.ReactionOutcome, err error) {
	end := span(ctx, "DeleteReaction")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[reviewID]; !ok {
		return models.ReactionOutcome{}, store.NotFoundf("review %d", reviewID)
	}
	if err := s.requireUser(userID); err != nil {
		return models.ReactionOutcome{}, err
	}

	var previous *bool
	if prev, ok := s.reactions[reviewID][userID]; ok {
		previous = &prev
		delete(s.reactions[reviewID], userID)
	}

	return models.ReactionOutcome{Useful: s.recomputeLocked(reviewID), Previous: previous}, nil
}

// recomputeLocked rewrites the cached usefulness from the reaction set.
func (s *Store) recomputeLocked(reviewID int64) int {
	useful := 0
	for _, helpful := range s.reactions[reviewID] {
		if helpful {
			useful++
		} else {
			useful--
		}
	}
	if r, ok := s.reviews[reviewID]; ok {
		r.Useful = useful
		s.reviews[reviewID] = r
	}
	return useful
}

func (s *Store) deleteReviewLocked(id int64) {
	delete(s.reactions, id)
	delete(s.reviews, id)
}

func copyReview(r models.Review) models.Review {
	if r.IsPositive != nil {
		v := *r.IsPositive
		r.IsPositive = &v
	}
	return r
}
