// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package models

// Film is a catalog entry. Likes is derived from the like edges and ignored on input.
type Film struct {
	ID          int64      `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name" validate:"required,notblank"`
	Description string     `json:"description" yaml:"description" validate:"max=200"`
	ReleaseDate Date       `json:"releaseDate" yaml:"release_date" validate:"releasedate"`
	Duration    int        `json:"duration" yaml:"duration" validate:"gt=0"`
	Mpa         *Mpa       `json:"mpa" yaml:"mpa" validate:"required"`
	Genres      []Genre    `json:"genres" yaml:"genres"`
	Directors   []Director `json:"directors" yaml:"directors"`
	Likes       int        `json:"likes" yaml:"-"`
}

// GenreIDs returns the distinct genre ids in first-seen order.
func (f *Film) GenreIDs() []int64 {
	return distinctIDs(len(f.Genres), func(i int) int64 { return f.Genres[i].ID })
}

// DirectorIDs returns the distinct director ids in first-seen order.
func (f *Film) DirectorIDs() []int64 {
	return distinctIDs(len(f.Directors), func(i int) int64 { return f.Directors[i].ID })
}

func distinctIDs(n int, at func(int) int64) []int64 {
	ids := make([]int64, 0, n)
	seen := make(map[int64]struct{}, n)
	for i := 0; i < n; i++ {
		id := at(i)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Genre is a lookup record.
type Genre struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Mpa is a Motion Picture Association rating lookup record.
type Mpa struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Director credits films. Only ID is read when a director is referenced from a film.
type Director struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}
