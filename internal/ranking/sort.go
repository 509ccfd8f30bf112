// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package ranking

import (
	"sort"

	"github.com/tomtom215/filmgraph/internal/models"
)

// SortByPopularity orders films by like count descending. Equal counts are
// ordered by ascending film id so results are reproducible.
func SortByPopularity(films []models.Film) {
	sort.Slice(films, func(i, j int) bool {
		if films[i].Likes != films[j].Likes {
			return films[i].Likes > films[j].Likes
		}
		return films[i].ID < films[j].ID
	})
}

// SortByYear orders films by release year ascending, then film id. Films
// without a release date sort last.
func SortByYear(films []models.Film) {
	sort.Slice(films, func(i, j int) bool {
		a, b := films[i].ReleaseDate, films[j].ReleaseDate
		switch {
		case a.IsZero() != b.IsZero():
			return b.IsZero()
		case !a.IsZero() && a.Year() != b.Year():
			return a.Year() < b.Year()
		}
		return films[i].ID < films[j].ID
	})
}

// Intersect returns the ids present in both ascending slices, ascending.
func Intersect(a, b []int64) []int64 {
	out := make([]int64, 0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
