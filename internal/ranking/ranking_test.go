// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package ranking

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
	"github.com/tomtom215/filmgraph/internal/store/memory"
	"github.com/tomtom215/filmgraph/internal/store/storetest"
	"github.com/tomtom215/filmgraph/internal/validation"
)

func filmIDs(films []models.Film) []int64 {
	ids := make([]int64, len(films))
	for i, f := range films {
		ids[i] = f.ID
	}
	return ids
}

func likeAll(t *testing.T, s store.LikeStore, film models.Film, users ...models.User) {
	t.Helper()
	for _, u := range users {
		require.NoError(t, s.AddLike(context.Background(), film.ID, u.ID))
	}
}

func TestPopularGenreScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()

	u1 := storetest.MustUser(t, st, "u1")
	u2 := storetest.MustUser(t, st, "u2")
	u3 := storetest.MustUser(t, st, "u3")

	y := storetest.MustFilm(t, st, "Film Y", 2001, 1)
	x := storetest.MustFilm(t, st, "Film X", 2002, 1)
	other := storetest.MustFilm(t, st, "Other", 2002, 2)
	likeAll(t, st, x, u1, u2, u3)
	likeAll(t, st, y, u1)
	likeAll(t, st, other, u1, u2, u3)

	got, err := New(st).Popular(ctx, PopularQuery{Limit: 10, GenreID: 1})
	require.NoError(t, err)
	if diff := cmp.Diff([]int64{x.ID, y.ID}, filmIDs(got)); diff != "" {
		t.Errorf("popular by genre mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, got[0].Likes)
	assert.Equal(t, 1, got[1].Likes)
}

func TestPopularOrderingAndFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	eng := New(st)

	a := storetest.MustUser(t, st, "a")
	b := storetest.MustUser(t, st, "b")

	f1 := storetest.MustFilm(t, st, "One", 1999, 1)
	f2 := storetest.MustFilm(t, st, "Two", 2005, 1, 2)
	f3 := storetest.MustFilm(t, st, "Three", 2005, 3)
	f4 := storetest.MustFilm(t, st, "Four", 2010)
	likeAll(t, st, f2, a, b)
	likeAll(t, st, f3, a)
	likeAll(t, st, f4, b)

	tests := []struct {
		name string
		q    PopularQuery
		want []int64
	}{
		{"all films, zero likes included", PopularQuery{Limit: 10}, []int64{f2.ID, f3.ID, f4.ID, f1.ID}},
		{"limit caps the result", PopularQuery{Limit: 2}, []int64{f2.ID, f3.ID}},
		{"year filter", PopularQuery{Limit: 10, Year: 2005}, []int64{f2.ID, f3.ID}},
		{"genre and year", PopularQuery{Limit: 10, GenreID: 1, Year: 2005}, []int64{f2.ID}},
		{"no match", PopularQuery{Limit: 10, Year: 1950}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eng.Popular(ctx, tt.q)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, filmIDs(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			for i := 1; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i-1].Likes, got[i].Likes)
			}
		})
	}
}

func TestPopularRejectsBadLimit(t *testing.T) {
	t.Parallel()
	eng := New(memory.New())
	for _, limit := range []int{0, -1} {
		_, err := eng.Popular(context.Background(), PopularQuery{Limit: limit})
		assert.ErrorIs(t, err, validation.ErrValidation, "limit %d", limit)
	}
}

func TestCommon(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	eng := New(st)

	a := storetest.MustUser(t, st, "a")
	b := storetest.MustUser(t, st, "b")
	c := storetest.MustUser(t, st, "c")
	f1 := storetest.MustFilm(t, st, "One", 2000)
	f2 := storetest.MustFilm(t, st, "Two", 2000)
	f3 := storetest.MustFilm(t, st, "Three", 2000)
	likeAll(t, st, f1, a, b)
	likeAll(t, st, f2, a, b, c)
	likeAll(t, st, f3, a)

	ab, err := eng.Common(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{f2.ID, f1.ID}, filmIDs(ab))

	ba, err := eng.Common(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, filmIDs(ab), filmIDs(ba))

	none, err := eng.Common(ctx, c.ID, storetest.MustUser(t, st, "d").ID)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = eng.Common(ctx, a.ID, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestByDirector(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	eng := New(st)

	d := models.Director{Name: "Agnes Varda"}
	require.NoError(t, st.CreateDirector(ctx, &d))
	u := storetest.MustUser(t, st, "u")

	film := func(name string, year int) models.Film {
		f := models.Film{
			Name:        name,
			ReleaseDate: models.NewDate(year, time.May, 1),
			Duration:    90,
			Mpa:         &models.Mpa{ID: 2},
			Directors:   []models.Director{{ID: d.ID}},
		}
		require.NoError(t, st.CreateFilm(ctx, &f))
		return f
	}
	late := film("Late", 2000)
	early := film("Early", 1962)
	storetest.MustFilm(t, st, "Uncredited", 1950)
	likeAll(t, st, late, u)

	byYear, err := eng.ByDirector(ctx, DirectorQuery{DirectorID: d.ID, SortBy: SortKeyYear})
	require.NoError(t, err)
	assert.Equal(t, []int64{early.ID, late.ID}, filmIDs(byYear))

	byLikes, err := eng.ByDirector(ctx, DirectorQuery{DirectorID: d.ID, SortBy: SortKeyLikes})
	require.NoError(t, err)
	assert.Equal(t, []int64{late.ID, early.ID}, filmIDs(byLikes))

	_, err = eng.ByDirector(ctx, DirectorQuery{DirectorID: d.ID, SortBy: "rating"})
	assert.ErrorIs(t, err, validation.ErrValidation)

	_, err = eng.ByDirector(ctx, DirectorQuery{DirectorID: 999, SortBy: SortKeyYear})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	eng := New(st)

	d := models.Director{Name: "Christopher Nolan"}
	require.NoError(t, st.CreateDirector(ctx, &d))
	u := storetest.MustUser(t, st, "u")

	noir := storetest.MustFilm(t, st, "Nolan Noir", 2001)
	tenet := models.Film{
		Name:        "Tenet",
		ReleaseDate: models.NewDate(2020, time.August, 26),
		Duration:    150,
		Mpa:         &models.Mpa{ID: 3},
		Directors:   []models.Director{{ID: d.ID}},
	}
	require.NoError(t, st.CreateFilm(ctx, &tenet))
	likeAll(t, st, tenet, u)

	tests := []struct {
		name  string
		q     SearchQuery
		want  []int64
		errIs error
	}{
		{"title by default", SearchQuery{Query: "NOLAN"}, []int64{noir.ID}, nil},
		{"director only", SearchQuery{Query: "nolan", Fields: []string{FieldDirector}}, []int64{tenet.ID}, nil},
		{"both fields, popular first", SearchQuery{Query: "nolan", Fields: []string{FieldTitle, FieldDirector}}, []int64{tenet.ID, noir.ID}, nil},
		{"unknown field", SearchQuery{Query: "nolan", Fields: []string{"genre"}}, nil, validation.ErrValidation},
		{"empty query", SearchQuery{Query: " "}, nil, validation.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eng.Search(ctx, tt.q)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, filmIDs(got))
		})
	}
}

func TestSortByYearMissingDatesLast(t *testing.T) {
	t.Parallel()
	films := []models.Film{
		{ID: 4},
		{ID: 3, ReleaseDate: models.NewDate(2001, time.January, 1)},
		{ID: 1, ReleaseDate: models.NewDate(2001, time.December, 1)},
		{ID: 2, ReleaseDate: models.NewDate(1990, time.January, 1)},
		{ID: 5},
	}
	SortByYear(films)
	assert.Equal(t, []int64{2, 1, 3, 4, 5}, filmIDs(films))
}

func TestIntersect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, want []int64
	}{
		{[]int64{1, 2, 3}, []int64{2, 3, 4}, []int64{2, 3}},
		{nil, []int64{1}, []int64{}},
		{[]int64{1, 5}, []int64{2, 6}, []int64{}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Intersect(tt.a, tt.b)); diff != "" {
			t.Errorf("Intersect(%v, %v) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
		}
	}
}
