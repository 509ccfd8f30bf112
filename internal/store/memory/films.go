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

// CreateFilm inserts f, assigns its id and fills lookup names.
func (s *Store) CreateFilm(ctx context.Context, f *models.Film) (err error) {
	end := span(ctx, "CreateFilm")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.newFilmRowLocked(f)
	if err != nil {
		return err
	}
	s.nextFilm++
	row.film.ID = s.nextFilm
	s.films[row.film.ID] = row
	*f = s.buildFilmLocked(row)
	return nil
}

// UpdateFilm replaces an existing film and its genre and director sets.
func (s *Store) UpdateFilm(ctx context.Context, f *models.Film) (err error) {
	end := span(ctx, "UpdateFilm")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFilm(f.ID); err != nil {
		return err
	}
	row, err := s.newFilmRowLocked(f)
	if err != nil {
		return err
	}
	s.films[f.ID] = row
	*f = s.buildFilmLocked(row)
	return nil
}

// GetFilm returns the film with its like count.
func (s *Store) GetFilm(ctx context.Context, id int64) (_ *models.Film, err error) {
	end := span(ctx, "GetFilm")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.films[id]
	if !ok {
		return nil, store.NotFoundf("film %d", id)
	}
	f := s.buildFilmLocked(row)
	return &f, nil
}

// ListFilms returns the films matching filter in ascending id order.
func (s *Store) ListFilms(ctx context.Context, filter store.FilmFilter) (_ []models.Film, err error) {
	end := span(ctx, "ListFilms")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []int64
	if filter.IDs != nil {
		ids = make([]int64, 0, len(filter.IDs))
		seen := make(map[int64]struct{}, len(filter.IDs))
		for _, id := range filter.IDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if _, ok := s.films[id]; ok {
				ids = append(ids, id)
			}
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	} else {
		ids = sortedKeys(s.films)
	}

	out := make([]models.Film, 0, len(ids))
	for _, id := range ids {
		row := s.films[id]
		if filter.GenreID != 0 && !containsID(row.genreIDs, filter.GenreID) {
			continue
		}
		if filter.DirectorID != 0 && !containsID(row.directorIDs, filter.DirectorID) {
			continue
		}
		if filter.Year != 0 && (row.film.ReleaseDate.IsZero() || row.film.ReleaseDate.Year() != filter.Year) {
			continue
		}
		f := s.buildFilmLocked(row)
		if !filter.MatchesQuery(&f) {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// DeleteFilm removes the film with its likes, reviews and their reactions.
func (s *Store) DeleteFilm(ctx context.Context, id int64) (err error) {
	end := span(ctx, "DeleteFilm")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFilm(id); err != nil {
		return err
	}
	delete(s.likes, id)
	for reviewID, r := range s.reviews {
		if r.FilmID == id {
			s.deleteReviewLocked(reviewID)
		}
	}
	delete(s.films, id)
	return nil
}

// newFilmRowLocked checks every lookup reference of f.
func (s *Store) newFilmRowLocked(f *models.Film) (*filmRow, error) {
	row := &filmRow{
		film: models.Film{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			ReleaseDate: f.ReleaseDate,
			Duration:    f.Duration,
		},
		genreIDs:    f.GenreIDs(),
		directorIDs: f.DirectorIDs(),
	}

	if f.Mpa != nil {
		if _, ok := s.ratings[f.Mpa.ID]; !ok {
			return nil, store.NotFoundf("mpa rating %d", f.Mpa.ID)
		}
		row.mpaID = f.Mpa.ID
	}
	for _, id := range row.genreIDs {
		if _, ok := s.genres[id]; !ok {
			return nil, store.NotFoundf("genre %d", id)
		}
	}
	for _, id := range row.directorIDs {
		if _, ok := s.directors[id]; !ok {
			return nil, store.NotFoundf("director %d", id)
		}
	}

	sort.Slice(row.genreIDs, func(i, j int) bool { return row.genreIDs[i] < row.genreIDs[j] })
	sort.Slice(row.directorIDs, func(i, j int) bool { return row.directorIDs[i] < row.directorIDs[j] })
	return row, nil
}

func (s *Store) buildFilmLocked(row *filmRow) models.Film {
	f := row.film
	if row.mpaID != 0 {
		m := s.ratings[row.mpaID]
		f.Mpa = &m
	}
	f.Genres = make([]models.Genre, 0, len(row.genreIDs))
	for _, id := range row.genreIDs {
		f.Genres = append(f.Genres, s.genres[id])
	}
	f.Directors = make([]models.Director, 0, len(row.directorIDs))
	for _, id := range row.directorIDs {
		f.Directors = append(f.Directors, s.directors[id])
	}
	f.Likes = len(s.likes[f.ID])
	return f
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
