// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/tomtom215/filmgraph/internal/models"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	nf := NotFoundf("film %d", 7)
	if !IsNotFound(nf) || IsConflict(nf) {
		t.Errorf("NotFoundf kind mismatch: %v", nf)
	}
	if nf.Error() != "film 7: not found" {
		t.Errorf("NotFoundf() = %q", nf.Error())
	}

	wrapped := fmt.Errorf("add like: %w", Conflictf("like (%d,%d)", 1, 2))
	if !IsConflict(wrapped) || IsNotFound(wrapped) {
		t.Errorf("Conflictf kind mismatch: %v", wrapped)
	}
	if !errors.Is(wrapped, ErrConflict) {
		t.Error("errors.Is(wrapped, ErrConflict) = false")
	}
}

func TestFilmFilter_MatchesQuery(t *testing.T) {
	t.Parallel()

	film := &models.Film{
		Name:      "The Crow",
		Directors: []models.Director{{ID: 1, Name: "Alex Proyas"}},
	}

	tests := []struct {
		name   string
		filter FilmFilter
		want   bool
	}{
		{name: "empty query", filter: FilmFilter{}, want: true},
		{name: "title case-insensitive", filter: FilmFilter{Query: "cRoW", ByTitle: true}, want: true},
		{name: "title not requested", filter: FilmFilter{Query: "crow", ByDirector: true}, want: false},
		{name: "director", filter: FilmFilter{Query: "proy", ByDirector: true}, want: true},
		{name: "both fields", filter: FilmFilter{Query: "alex", ByTitle: true, ByDirector: true}, want: true},
		{name: "no match", filter: FilmFilter{Query: "zzz", ByTitle: true, ByDirector: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.MatchesQuery(film); got != tt.want {
				t.Errorf("MatchesQuery() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartSpan_NoProvider(t *testing.T) {
	t.Parallel()

	ctx, end := StartSpan(context.Background(), "memory", "GetFilm")
	if ctx == nil {
		t.Fatal("StartSpan returned nil context")
	}
	end(errors.New("boom"))
	end2 := func() func(error) { _, e := StartSpan(ctx, "memory", "GetUser"); return e }()
	end2(nil)
}
