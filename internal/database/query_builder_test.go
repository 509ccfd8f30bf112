// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package database

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/filmgraph/internal/store"
)

func TestBuildInClause(t *testing.T) {
	placeholders, args := buildInClause([]int64{3, 5, 8})
	if placeholders != "?,?,?" {
		t.Errorf("placeholders = %q", placeholders)
	}
	if diff := cmp.Diff([]interface{}{int64(3), int64(5), int64(8)}, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}

	placeholders, args = buildInClause(nil)
	if placeholders != "" || len(args) != 0 {
		t.Errorf("empty input produced %q %v", placeholders, args)
	}
}

func TestBuildFilmConditions(t *testing.T) {
	tests := []struct {
		name     string
		filter   store.FilmFilter
		contains []string
		args     []interface{}
	}{
		{
			name:   "no filter",
			filter: store.FilmFilter{},
		},
		{
			name:     "ids and genre",
			filter:   store.FilmFilter{IDs: []int64{1, 2}, GenreID: 4},
			contains: []string{"f.id IN (?,?)", "fg.genre_id = ?"},
			args:     []interface{}{int64(1), int64(2), int64(4)},
		},
		{
			name:     "director and year",
			filter:   store.FilmFilter{DirectorID: 9, Year: 1999},
			contains: []string{"fd.director_id = ?", "EXTRACT(YEAR FROM f.release_date) = ?"},
			args:     []interface{}{int64(9), 1999},
		},
		{
			name:     "query lowercased for both fields",
			filter:   store.FilmFilter{Query: "Kubr", ByTitle: true, ByDirector: true},
			contains: []string{"INSTR(LOWER(f.name), ?) > 0", " OR ", "INSTR(LOWER(d.name), ?) > 0"},
			args:     []interface{}{"kubr", "kubr"},
		},
		{
			name:     "query without fields matches nothing",
			filter:   store.FilmFilter{Query: "x"},
			contains: []string{"1 = 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildFilmConditions(tt.filter)
			if len(tt.contains) == 0 && where != "" {
				t.Errorf("expected empty conditions, got %q", where)
			}
			for _, want := range tt.contains {
				if !strings.Contains(where, want) {
					t.Errorf("conditions %q missing %q", where, want)
				}
			}
			if diff := cmp.Diff(tt.args, args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
