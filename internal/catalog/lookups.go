// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package catalog

import (
	"context"
	"fmt"

	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/validation"
)

// directorInput is validated on create and update.
type directorInput struct {
	Name string `json:"name" validate:"required,notblank"`
}

func (s *Service) ListGenres(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.store.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

func (s *Service) GetGenre(ctx context.Context, id int64) (*models.Genre, error) {
	g, err := s.store.GetGenre(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("genre %d: %w", id, err)
	}
	return g, nil
}

func (s *Service) ListMpa(ctx context.Context) ([]models.Mpa, error) {
	ratings, err := s.store.ListMpa(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mpa ratings: %w", err)
	}
	return ratings, nil
}

func (s *Service) GetMpa(ctx context.Context, id int64) (*models.Mpa, error) {
	m, err := s.store.GetMpa(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mpa rating %d: %w", id, err)
	}
	return m, nil
}

// CreateDirector adds a director.
func (s *Service) CreateDirector(ctx context.Context, d *models.Director) (_ *models.Director, err error) {
	defer func() { observe("create_director", err) }()

	if verr := validation.ValidateStruct(&directorInput{Name: d.Name}); verr != nil {
		return nil, verr
	}
	created := models.Director{Name: d.Name}
	if err := s.store.CreateDirector(ctx, &created); err != nil {
		return nil, fmt.Errorf("create director: %w", err)
	}
	return &created, nil
}

// UpdateDirector renames an existing director.
func (s *Service) UpdateDirector(ctx context.Context, d *models.Director) (_ *models.Director, err error) {
	defer func() { observe("update_director", err) }()

	if verr := validation.ValidateStruct(&directorInput{Name: d.Name}); verr != nil {
		return nil, verr
	}
	updated := *d
	if err := s.store.UpdateDirector(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update director %d: %w", d.ID, err)
	}
	return &updated, nil
}

func (s *Service) GetDirector(ctx context.Context, id int64) (*models.Director, error) {
	d, err := s.store.GetDirector(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("director %d: %w", id, err)
	}
	return d, nil
}

func (s *Service) ListDirectors(ctx context.Context) ([]models.Director, error) {
	directors, err := s.store.ListDirectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list directors: %w", err)
	}
	return directors, nil
}

// DeleteDirector removes a director and its film credits.
func (s *Service) DeleteDirector(ctx context.Context, id int64) (err error) {
	defer func() { observe("delete_director", err) }()

	if err := s.store.DeleteDirector(ctx, id); err != nil {
		return fmt.Errorf("delete director %d: %w", id, err)
	}
	return nil
}
