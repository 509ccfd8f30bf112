// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package catalog

import (
	"context"
	"fmt"

	"github.com/tomtom215/filmgraph/internal/activity"
	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
	"github.com/tomtom215/filmgraph/internal/validation"
)

// CreateFilm adds a film. Unknown genre, MPA or director ids are
// ErrNotFound. The returned film carries the lookup names.
func (s *Service) CreateFilm(ctx context.Context, f *models.Film) (_ *models.Film, err error) {
	defer func() { observe("create_film", err) }()

	if verr := validation.ValidateStruct(f); verr != nil {
		return nil, verr
	}
	created := *f
	created.ID = 0
	if err := s.store.CreateFilm(ctx, &created); err != nil {
		return nil, fmt.Errorf("create film: %w", err)
	}
	return &created, nil
}

// UpdateFilm replaces every field of an existing film, including its genre
// and director sets.
func (s *Service) UpdateFilm(ctx context.Context, f *models.Film) (_ *models.Film, err error) {
	defer func() { observe("update_film", err) }()

	if f.ID <= 0 {
		return nil, validation.NewError("id", "gt", f.ID, "id must be greater than 0")
	}
	if verr := validation.ValidateStruct(f); verr != nil {
		return nil, verr
	}
	updated := *f
	if err := s.store.UpdateFilm(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update film %d: %w", f.ID, err)
	}
	return &updated, nil
}

// GetFilm returns one film with its like count.
func (s *Service) GetFilm(ctx context.Context, id int64) (*models.Film, error) {
	f, err := s.store.GetFilm(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("film %d: %w", id, err)
	}
	return f, nil
}

// ListFilms returns every film by ascending id.
func (s *Service) ListFilms(ctx context.Context) ([]models.Film, error) {
	films, err := s.store.ListFilms(ctx, store.FilmFilter{})
	if err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	return films, nil
}

// DeleteFilm removes a film with its likes, reviews and their reactions.
func (s *Service) DeleteFilm(ctx context.Context, id int64) (err error) {
	defer func() { observe("delete_film", err) }()

	if err := s.store.DeleteFilm(ctx, id); err != nil {
		return fmt.Errorf("delete film %d: %w", id, err)
	}
	return nil
}

// Like records that userID likes filmID. A repeated like is ErrConflict.
func (s *Service) Like(ctx context.Context, filmID, userID int64) (err error) {
	defer func() { observe("like", err) }()

	if err := s.store.AddLike(ctx, filmID, userID); err != nil {
		return fmt.Errorf("like film %d by user %d: %w", filmID, userID, err)
	}
	activity.Emit(ctx, s.recorder, userID, models.EventLike, models.OperationAdd, filmID)
	return nil
}

// Unlike removes a like. Removing an absent like succeeds.
func (s *Service) Unlike(ctx context.Context, filmID, userID int64) (err error) {
	defer func() { observe("unlike", err) }()

	if err := s.store.RemoveLike(ctx, filmID, userID); err != nil {
		return fmt.Errorf("unlike film %d by user %d: %w", filmID, userID, err)
	}
	activity.Emit(ctx, s.recorder, userID, models.EventLike, models.OperationRemove, filmID)
	return nil
}
