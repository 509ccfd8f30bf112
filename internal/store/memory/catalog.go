// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package memory

import (
	"context"

	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
)

// ListGenres returns every genre by id.
func (s *Store) ListGenres(ctx context.Context) (_ []models.Genre, err error) {
	end := span(ctx, "ListGenres")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Genre, 0, len(s.genres))
	for _, id := range sortedKeys(s.genres) {
		out = append(out, s.genres[id])
	}
	return out, nil
}

// GetGenre returns one genre.
func (s *Store) GetGenre(ctx context.Context, id int64) (_ *models.Genre, err error) {
	end := span(ctx, "GetGenre")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.genres[id]
	if !ok {
		return nil, store.NotFoundf("genre %d", id)
	}
	return &g, nil
}

// ListMpa returns every MPA rating by id.
func (s *Store) ListMpa(ctx context.Context) (_ []models.Mpa, err error) {
	end := span(ctx, "ListMpa")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Mpa, 0, len(s.ratings))
	for _, id := range sortedKeys(s.ratings) {
		out = append(out, s.ratings[id])
	}
	return out, nil
}

// GetMpa returns one MPA rating.
func (s *Store) GetMpa(ctx context.Context, id int64) (_ *models.Mpa, err error) {
	end := span(ctx, "GetMpa")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.ratings[id]
	if !ok {
		return nil, store.NotFoundf("mpa rating %d", id)
	}
	return &m, nil
}

// CreateDirector inserts d and assigns its id.
func (s *Store) CreateDirector(ctx context.Context, d *models.Director) (err error) {
	end := span(ctx, "CreateDirector")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextDirector++
	d.ID = s.nextDirector
	s.directors[d.ID] = *d
	return nil
}

// UpdateDirector renames an existing director.
func (s *Store) UpdateDirector(ctx context.Context, d *models.Director) (err error) {
	end := span(ctx, "UpdateDirector")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directors[d.ID]; !ok {
		return store.NotFoundf("director %d", d.ID)
	}
	s.directors[d.ID] = *d
	return nil
}

// GetDirector returns one director.
func (s *Store) GetDirector(ctx context.Context, id int64) (_ *models.Director, err error) {
	end := span(ctx, "GetDirector")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.directors[id]
	if !ok {
		return nil, store.NotFoundf("director %d", id)
	}
	return &d, nil
}

// ListDirectors returns every director by id.
func (s *Store) ListDirectors(ctx context.Context) (_ []models.Director, err error) {
	end := span(ctx, "ListDirectors")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Director, 0, len(s.directors))
	for _, id := range sortedKeys(s.directors) {
		out = append(out, s.directors[id])
	}
	return out, nil
}

// DeleteDirector removes the director and its film credits.
func (s *Store) DeleteDirector(ctx context.Context, id int64) (err error) {
	end := span(ctx, "DeleteDirector")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directors[id]; !ok {
		return store.NotFoundf("director %d", id)
	}
	for _, row := range s.films {
		kept := row.directorIDs[:0]
		for _, d := range row.directorIDs {
			if d != id {
				kept = append(kept, d)
			}
		}
		row.directorIDs = kept
	}
	delete(s.directors, id)
	return nil
}
