// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package recommend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/metrics"
	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/ranking"
	"github.com/tomtom215/filmgraph/internal/store"
)

// DataProvider is the slice of the fact store the engine reads.
type DataProvider interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// LikeGraph returns every like edge grouped by user, film ids ascending.
	LikeGraph(ctx context.Context) (map[int64][]int64, error)
	ListFilms(ctx context.Context, filter store.FilmFilter) ([]models.Film, error)
}

// Engine computes collaborative-filtering recommendations. It reads the
// like graph on every call, holds no state and is safe for concurrent use.
type Engine struct {
	data   DataProvider
	logger zerolog.Logger
}

// NewEngine creates a recommendation engine over dp.
func NewEngine(dp DataProvider) *Engine {
	return &Engine{
		data:   dp,
		logger: logging.WithComponent("recommend"),
	}
}

// Recommend returns the films liked by the user's nearest neighbours that
// the user has not liked yet, most popular first. The neighbours are every
// other user tied at the largest positive number of shared likes.
//
// An unknown user is ErrNotFound. A user without likes, or without any
// neighbour sharing a like, gets an empty result.
func (e *Engine) Recommend(ctx context.Context, userID int64) (_ []models.Film, err error) {
	defer func() {
		metrics.RecordEngineOperation("recommend", "recommend", metrics.Outcome(err))
	}()

	if _, err := e.data.GetUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("user %d: %w", userID, err)
	}

	graph, err := e.data.LikeGraph(ctx)
	if err != nil {
		return nil, fmt.Errorf("load like graph: %w", err)
	}

	neighbours, overlap := NearestNeighbours(graph, userID)
	candidates := Candidates(graph, userID, neighbours)

	e.logger.Debug().
		Int64("user_id", userID).
		Int("neighbours", len(neighbours)).
		Int("overlap", overlap).
		Int("candidates", len(candidates)).
		Msg("neighbourhood computed")

	if len(candidates) == 0 {
		metrics.RecordRecommendations(0)
		return []models.Film{}, nil
	}

	films, err := e.data.ListFilms(ctx, store.FilmFilter{IDs: candidates})
	if err != nil {
		return nil, fmt.Errorf("load recommended films: %w", err)
	}
	ranking.SortByPopularity(films)
	metrics.RecordRecommendations(len(films))
	return films, nil
}
