// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package ranking

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/metrics"
	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
	"github.com/tomtom215/filmgraph/internal/validation"
)

const engineName = "ranking"

// Store is the slice of the fact store the ranking engine reads.
type Store interface {
	ListFilms(ctx context.Context, filter store.FilmFilter) ([]models.Film, error)
	LikedFilms(ctx context.Context, userID int64) ([]int64, error)
	GetDirector(ctx context.Context, id int64) (*models.Director, error)
}

// Sort keys accepted by ByDirector.
const (
	SortKeyYear  = "year"
	SortKeyLikes = "likes"
)

// Search fields accepted by Search.
const (
	FieldTitle    = "title"
	FieldDirector = "director"
)

// PopularQuery selects the most liked films. Zero GenreID and Year do not
// filter.
type PopularQuery struct {
	Limit   int   `json:"count" validate:"gt=0"`
	GenreID int64 `json:"genreId" validate:"gte=0"`
	Year    int   `json:"year" validate:"gte=0"`
}

// DirectorQuery lists the films of one director.
type DirectorQuery struct {
	DirectorID int64  `json:"directorId" validate:"gt=0"`
	SortBy     string `json:"sortBy" validate:"required,oneof=year likes"`
}

// SearchQuery matches films by title and director name. Empty Fields
// searches titles only.
type SearchQuery struct {
	Query  string   `json:"query" validate:"required,notblank"`
	Fields []string `json:"by" validate:"dive,oneof=title director"`
}

// Engine orders films by popularity. It holds no state between calls and
// is safe for concurrent use.
type Engine struct {
	store  Store
	logger zerolog.Logger
}

// New creates a ranking engine over st.
func New(st Store) *Engine {
	return &Engine{
		store:  st,
		logger: logging.WithComponent(engineName),
	}
}

// Popular returns at most q.Limit films ordered by like count, optionally
// restricted to a genre and a release year. Films without likes are
// included.
func (e *Engine) Popular(ctx context.Context, q PopularQuery) (_ []models.Film, err error) {
	defer func() { observe("popular", err) }()

	if verr := validation.ValidateStruct(&q); verr != nil {
		return nil, verr
	}

	films, err := e.store.ListFilms(ctx, store.FilmFilter{GenreID: q.GenreID, Year: q.Year})
	if err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	SortByPopularity(films)
	if len(films) > q.Limit {
		films = films[:q.Limit]
	}

	e.logger.Debug().
		Int("limit", q.Limit).
		Int64("genre_id", q.GenreID).
		Int("year", q.Year).
		Int("results", len(films)).
		Msg("popular films ranked")
	return films, nil
}

// Common returns the films liked by both users, most liked first. The
// result is the same for either argument order.
func (e *Engine) Common(ctx context.Context, userID, otherID int64) (_ []models.Film, err error) {
	defer func() { observe("common", err) }()

	mine, err := e.store.LikedFilms(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("likes of user %d: %w", userID, err)
	}
	theirs, err := e.store.LikedFilms(ctx, otherID)
	if err != nil {
		return nil, fmt.Errorf("likes of user %d: %w", otherID, err)
	}

	shared := Intersect(mine, theirs)
	if len(shared) == 0 {
		return []models.Film{}, nil
	}
	films, err := e.store.ListFilms(ctx, store.FilmFilter{IDs: shared})
	if err != nil {
		return nil, fmt.Errorf("list common films: %w", err)
	}
	SortByPopularity(films)
	return films, nil
}

// ByDirector returns every film credited to the director, ordered by
// release year ascending or by like count descending.
func (e *Engine) ByDirector(ctx context.Context, q DirectorQuery) (_ []models.Film, err error) {
	defer func() { observe("by_director", err) }()

	if verr := validation.ValidateStruct(&q); verr != nil {
		return nil, verr
	}
	if _, err := e.store.GetDirector(ctx, q.DirectorID); err != nil {
		return nil, fmt.Errorf("director %d: %w", q.DirectorID, err)
	}

	films, err := e.store.ListFilms(ctx, store.FilmFilter{DirectorID: q.DirectorID})
	if err != nil {
		return nil, fmt.Errorf("list films of director %d: %w", q.DirectorID, err)
	}
	if q.SortBy == SortKeyYear {
		SortByYear(films)
	} else {
		SortByPopularity(films)
	}
	return films, nil
}

// Search returns films whose title or director name contains the query,
// case-insensitively, most liked first. A film matching several fields is
// returned once.
func (e *Engine) Search(ctx context.Context, q SearchQuery) (_ []models.Film, err error) {
	defer func() { observe("search", err) }()

	if verr := validation.ValidateStruct(&q); verr != nil {
		return nil, verr
	}

	filter := store.FilmFilter{Query: q.Query}
	if len(q.Fields) == 0 {
		filter.ByTitle = true
	}
	for _, f := range q.Fields {
		switch f {
		case FieldTitle:
			filter.ByTitle = true
		case FieldDirector:
			filter.ByDirector = true
		}
	}

	films, err := e.store.ListFilms(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search films: %w", err)
	}
	SortByPopularity(films)
	return films, nil
}

func observe(op string, err error) {
	metrics.RecordEngineOperation(engineName, op, metrics.Outcome(err))
}
