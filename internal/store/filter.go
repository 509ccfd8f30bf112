// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package store

import (
	"strings"

	"github.com/tomtom215/filmgraph/internal/models"
)

// FilmFilter restricts ListFilms. Zero fields do not filter; set fields
// combine with AND.
type FilmFilter struct {
	// IDs restricts the result to these films. A non-nil empty slice
	// matches nothing.
	IDs []int64

	GenreID    int64
	DirectorID int64
	Year       int

	// Query is matched case-insensitively as a substring of the film title
	// (ByTitle) or any credited director name (ByDirector). A film matching
	// both is returned once.
	Query      string
	ByTitle    bool
	ByDirector bool
}

// MatchesQuery reports whether the film matches the text part of the filter.
// Backends that filter in process share it so matching is identical.
func (f FilmFilter) MatchesQuery(film *models.Film) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	if f.ByTitle && strings.Contains(strings.ToLower(film.Name), q) {
		return true
	}
	if f.ByDirector {
		for _, d := range film.Directors {
			if strings.Contains(strings.ToLower(d.Name), q) {
				return true
			}
		}
	}
	return false
}
