// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

// Package memory implements store.FactStore in process memory.
//
// A single RWMutex serializes writers, so every write is atomic. Uniqueness
// and referential integrity are checked explicitly before each mutation,
// mirroring the constraints of the relational schema. Values are copied in
// and out; callers never share memory with the store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
)

const backend = "memory"

type filmRow struct {
	film        models.Film
	mpaID       int64
	genreIDs    []int64
	directorIDs []int64
}

// Store is an in-memory fact store.
type Store struct {
	mu sync.RWMutex

	users     map[int64]models.User
	films     map[int64]*filmRow
	likes     map[int64]map[int64]struct{} // film -> users
	friends   map[int64]map[int64]struct{} // user -> followed users
	reviews   map[int64]models.Review
	reactions map[int64]map[int64]bool // review -> user -> helpful
	events    []models.Event

	genres    map[int64]models.Genre
	ratings   map[int64]models.Mpa
	directors map[int64]models.Director

	nextUser, nextFilm, nextReview, nextEvent, nextDirector int64
}

var _ store.FactStore = (*Store)(nil)

// New returns an empty store with the standard genre and MPA lookups.
func New() *Store {
	s := &Store{
		users:     make(map[int64]models.User),
		films:     make(map[int64]*filmRow),
		likes:     make(map[int64]map[int64]struct{}),
		friends:   make(map[int64]map[int64]struct{}),
		reviews:   make(map[int64]models.Review),
		reactions: make(map[int64]map[int64]bool),
		genres:    make(map[int64]models.Genre),
		ratings:   make(map[int64]models.Mpa),
		directors: make(map[int64]models.Director),
	}
	for _, g := range models.StandardGenres {
		s.genres[g.ID] = g
	}
	for _, m := range models.StandardRatings {
		s.ratings[m.ID] = m
	}
	return s
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close releases nothing.
func (s *Store) Close() error { return nil }

func span(ctx context.Context, op string) func(error) {
	_, end := store.StartSpan(ctx, backend, op)
	return end
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (s *Store) requireUser(id int64) error {
	if _, ok := s.users[id]; !ok {
		return store.NotFoundf("user %d", id)
	}
	return nil
}

func (s *Store) requireFilm(id int64) error {
	if _, ok := s.films[id]; !ok {
		return store.NotFoundf("film %d", id)
	}
	return nil
}
