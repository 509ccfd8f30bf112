// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package database

import (
	"strings"

	"github.com/tomtom215/filmgraph/internal/store"
)

// buildInClause creates a parameterized IN clause for SQL queries.
// Returns the placeholder string and the arguments slice.
//
// Example:
//
//	placeholders, args := buildInClause([]int64{3, 5, 8})
//	// placeholders = "?,?,?"
//	// args = []interface{}{int64(3), int64(5), int64(8)}
func buildInClause(ids []int64) (string, []interface{}) {
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	return strings.Join(placeholders, ","), args
}

// buildFilmConditions translates a FilmFilter into WHERE conditions on the
// films table aliased as f. The caller must handle a non-nil empty IDs
// slice before calling, since "IN ()" is not valid SQL.
//
// Returns conditions (without the WHERE keyword) joined with AND, and the
// matching arguments.
func buildFilmConditions(filter store.FilmFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if len(filter.IDs) > 0 {
		placeholders, idArgs := buildInClause(filter.IDs)
		conditions = append(conditions, "f.id IN ("+placeholders+")")
		args = append(args, idArgs...)
	}

	if filter.GenreID != 0 {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM film_genres fg WHERE fg.film_id = f.id AND fg.genre_id = ?)")
		args = append(args, filter.GenreID)
	}

	if filter.DirectorID != 0 {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM film_directors fd WHERE fd.film_id = f.id AND fd.director_id = ?)")
		args = append(args, filter.DirectorID)
	}

	if filter.Year != 0 {
		conditions = append(conditions, "EXTRACT(YEAR FROM f.release_date) = ?")
		args = append(args, filter.Year)
	}

	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		var text []string
		if filter.ByTitle {
			text = append(text, "INSTR(LOWER(f.name), ?) > 0")
			args = append(args, q)
		}
		if filter.ByDirector {
			text = append(text, `EXISTS (SELECT 1 FROM film_directors fd
				JOIN directors d ON d.id = fd.director_id
				WHERE fd.film_id = f.id AND INSTR(LOWER(d.name), ?) > 0)`)
			args = append(args, q)
		}
		if len(text) == 0 {
			// A query with no searchable field matches nothing.
			text = append(text, "1 = 0")
		}
		conditions = append(conditions, "("+strings.Join(text, " OR ")+")")
	}

	return strings.Join(conditions, " AND "), args
}
