// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

// Package storetest is a conformance suite run against every store.FactStore
// backend, so the in-memory and relational stores honor the same
// uniqueness, referential and ordering guarantees.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
)

// Factory returns a fresh, empty store for one subtest.
type Factory func(t *testing.T) store.FactStore

// Run executes the full suite.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s store.FactStore)
	}{
		{"Users", testUsers},
		{"FilmsAndLookups", testFilms},
		{"FilmFilters", testFilmFilters},
		{"Likes", testLikes},
		{"Friends", testFriends},
		{"Reviews", testReviews},
		{"Reactions", testReactions},
		{"Events", testEvents},
		{"Directors", testDirectors},
		{"DeleteUserCascade", testDeleteUserCascade},
		{"DeleteFilmCascade", testDeleteFilmCascade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close() })
			tt.fn(t, s)
		})
	}
}

// MustUser creates a user with the given login.
func MustUser(t *testing.T, s store.UserStore, login string) models.User {
	t.Helper()
	u := models.User{
		Email:    login + "@example.com",
		Login:    login,
		Name:     login,
		Birthday: models.NewDate(1990, time.January, 1),
	}
	require.NoError(t, s.CreateUser(context.Background(), &u))
	return u
}

// MustFilm creates a film with the given name, release year and genres.
func MustFilm(t *testing.T, s store.FilmStore, name string, year int, genres ...int64) models.Film {
	t.Helper()
	f := models.Film{
		Name:        name,
		Description: name + " description",
		ReleaseDate: models.NewDate(year, time.June, 1),
		Duration:    100,
		Mpa:         &models.Mpa{ID: 1},
	}
	for _, g := range genres {
		f.Genres = append(f.Genres, models.Genre{ID: g})
	}
	require.NoError(t, s.CreateFilm(context.Background(), &f))
	return f
}

func boolPtr(b bool) *bool { return &b }

func testUsers(t *testing.T, s store.FactStore) {
	ctx := context.Background()

	a := MustUser(t, s, "alice")
	b := MustUser(t, s, "bob")
	assert.NotZero(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	got, err := s.GetUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Login)
	assert.Equal(t, "1990-01-01", got.Birthday.String())

	got.Name = "Alice L."
	require.NoError(t, s.UpdateUser(ctx, got))
	got, err = s.GetUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice L.", got.Name)

	missing := models.User{ID: 999, Email: "x@y.z", Login: "x"}
	assert.ErrorIs(t, s.UpdateUser(ctx, &missing), store.ErrNotFound)

	_, err = s.GetUser(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err := s.ListUsers(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)

	some, err := s.ListUsers(ctx, []int64{b.ID, 999})
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, b.ID, some[0].ID)

	none, err := s.ListUsers(ctx, []int64{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testFilms(t *testing.T, s store.FactStore) {
	ctx := context.Background()

	genres, err := s.ListGenres(ctx)
	require.NoError(t, err)
	assert.Len(t, genres, len(models.StandardGenres))

	ratings, err := s.ListMpa(ctx)
	require.NoError(t, err)
	assert.Len(t, ratings, len(models.StandardRatings))

	g, err := s.GetGenre(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Drama", g.Name)
	_, err = s.GetGenre(ctx, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)

	m, err := s.GetMpa(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "PG-13", m.Name)
	_, err = s.GetMpa(ctx, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)

	d := models.Director{Name: "Agnès Varda"}
	require.NoError(t, s.CreateDirector(ctx, &d))

	f := models.Film{
		Name:        "Cléo from 5 to 7",
		Description: "Two hours in Paris.",
		ReleaseDate: models.NewDate(1962, time.April, 11),
		Duration:    90,
		Mpa:         &models.Mpa{ID: 2},
		Genres:      []models.Genre{{ID: 2}, {ID: 1}, {ID: 2}},
		Directors:   []models.Director{{ID: d.ID}},
	}
	require.NoError(t, s.CreateFilm(ctx, &f))
	assert.NotZero(t, f.ID)
	assert.Equal(t, "PG", f.Mpa.Name)

	got, err := s.GetFilm(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cléo from 5 to 7", got.Name)
	assert.Equal(t, "1962-04-11", got.ReleaseDate.String())
	require.Len(t, got.Genres, 2)
	assert.Equal(t, int64(1), got.Genres[0].ID)
	assert.Equal(t, "Comedy", got.Genres[0].Name)
	assert.Equal(t, int64(2), got.Genres[1].ID)
	require.Len(t, got.Directors, 1)
	assert.Equal(t, "Agnès Varda", got.Directors[0].Name)
	assert.Equal(t, 0, got.Likes)

	// Full replace: genres and directors are swapped out.
	got.Genres = []models.Genre{{ID: 5}}
	got.Directors = nil
	got.Duration = 89
	require.NoError(t, s.UpdateFilm(ctx, got))
	got, err = s.GetFilm(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, int64(5), got.Genres[0].ID)
	assert.Empty(t, got.Directors)
	assert.Equal(t, 89, got.Duration)

	bad := f
	bad.ID = 0
	bad.Genres = []models.Genre{{ID: 42}}
	assert.ErrorIs(t, s.CreateFilm(ctx, &bad), store.ErrNotFound)

	bad.Genres = nil
	bad.Mpa = &models.Mpa{ID: 42}
	assert.ErrorIs(t, s.CreateFilm(ctx, &bad), store.ErrNotFound)

	bad.Mpa = &models.Mpa{ID: 1}
	bad.Directors = []models.Director{{ID: 42}}
	assert.ErrorIs(t, s.CreateFilm(ctx, &bad), store.ErrNotFound)

	missing := f
	missing.ID = 999
	assert.ErrorIs(t, s.UpdateFilm(ctx, &missing), store.ErrNotFound)

	_, err = s.GetFilm(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testFilmFilters(t *testing.T, s store.FactStore) {
	ctx := context.Background()

	kubrick := models.Director{Name: "Stanley Kubrick"}
	require.NoError(t, s.CreateDirector(ctx, &kubrick))

	shining := MustFilm(t, s, "The Shining", 1980, 4)
	spartacus := MustFilm(t, s, "Spartacus", 1960, 2, 6)
	airplane := MustFilm(t, s, "Airplane!", 1980, 1)

	shining.Directors = []models.Director{{ID: kubrick.ID}}
	require.NoError(t, s.UpdateFilm(ctx, &shining))
	spartacus.Directors = []models.Director{{ID: kubrick.ID}}
	require.NoError(t, s.UpdateFilm(ctx, &spartacus))

	ids := func(films []models.Film) []int64 {
		out := make([]int64, 0, len(films))
		for _, f := range films {
			out = append(out, f.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter store.FilmFilter
		want   []int64
	}{
		{"all", store.FilmFilter{}, []int64{shining.ID, spartacus.ID, airplane.ID}},
		{"genre", store.FilmFilter{GenreID: 2}, []int64{spartacus.ID}},
		{"year", store.FilmFilter{Year: 1980}, []int64{shining.ID, airplane.ID}},
		{"genre and year", store.FilmFilter{GenreID: 1, Year: 1980}, []int64{airplane.ID}},
		{"director", store.FilmFilter{DirectorID: kubrick.ID}, []int64{shining.ID, spartacus.ID}},
		{"ids", store.FilmFilter{IDs: []int64{airplane.ID, shining.ID, 999}}, []int64{shining.ID, airplane.ID}},
		{"empty ids", store.FilmFilter{IDs: []int64{}}, []int64{}},
		{"title query", store.FilmFilter{Query: "SHIN", ByTitle: true}, []int64{shining.ID}},
		{"director query", store.FilmFilter{Query: "kubr", ByDirector: true}, []int64{shining.ID, spartacus.ID}},
		{"title or director", store.FilmFilter{Query: "a", ByTitle: true, ByDirector: true}, []int64{shining.ID, spartacus.ID, airplane.ID}},
		{"no match", store.FilmFilter{Query: "zzz", ByTitle: true}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			films, err := s.ListFilms(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(films))
		})
	}
}

func testLikes(t *testing.T, s store.FactStore) {
	ctx := context.Background()

	a := MustUser(t, s, "a")
	b := MustUser(t, s, "b")
	f1 := MustFilm(t, s, "One", 2000)
	f2 := MustFilm(t, s, "Two", 2001)

	require.NoError(t, s.AddLike(ctx, f1.ID, a.ID))
	require.NoError(t, s.AddLike(ctx, f1.ID, b.ID))
	require.NoError(t, s.AddLike(ctx, f2.ID, a.ID))

	assert.ErrorIs(t, s.AddLike(ctx, f1.ID, a.ID), store.ErrConflict)
	assert.ErrorIs(t, s.AddLike(ctx, 999, a.ID), store.ErrNotFound)
	assert.ErrorIs(t, s.AddLike(ctx, f1.ID, 999), store.ErrNotFound)

	got, err := s.GetFilm(ctx, f1.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Likes)

	liked, err := s.LikedFilms(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{f1.ID, f2.ID}, liked)

	_, err = s.LikedFilms(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	graph, err := s.LikeGraph(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64][]int64{a.ID: {f1.ID, f2.ID}, b.ID: {f1.ID}}, graph)

	require.NoError(t, s.RemoveLike(ctx, f1.ID, a.ID))
	require.NoError(t, s.RemoveLike(ctx, f1.ID, a.ID), "removing an absent like is a no-op")
	assert.ErrorIs(t, s.RemoveLike(ctx, 999, a.ID), store.ErrNotFound)

	got, err = s.GetFilm(ctx, f1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)

	// The like can be recreated after removal.
	require.NoError(t, s.AddLike(ctx, f1.ID, a.ID))
}

func testFriends(t *testing.T, s store.FactStore) {
	ctx := context.Background()

	a := MustUser(t, s, "a")
	b := MustUser(t, s, "b")
	c := MustUser(t, s, "c")

	require.NoError(t, s.AddFriend(ctx, a.ID, c.ID))
	require.NoError(t, s.AddFriend(ctx, a.ID, b.ID))
	assert.ErrorIs(t, s.AddFriend(ctx, a.ID, b.ID), store.ErrConflict)
	assert.ErrorIs(t, s.AddFriend(ctx, a.ID, 999), store.ErrNotFound)
	assert.ErrorIs(t, s.AddFriend(ctx, 999, a.ID), store.ErrNotFound)

	friends, err := s.FriendIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID, c.ID}, friends)

	// Directed: b does not follow a.
	friends, err = s.FriendIDs(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	require.NoError(t, s.RemoveFriend(ctx, a.ID, b.ID))
	require.NoError(t, s.RemoveFriend(ctx, a.ID, b.ID))
	assert.ErrorIs(t, s.RemoveFriend(ctx, a.ID, 999), store.ErrNotFound)

	friends, err = s.FriendIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID}, friends)

	_, err = s.FriendIDs(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testReviews(t *testing.T, s store.FactStore) {
	ctx := context.Background()

	u := MustUser(t, s, "critic")
	f := MustFilm(t, s, "Film", 2010)
	g := MustFilm(t, s, "Other", 2011)

	r := models.Review{Content: "Great", IsPositive: boolPtr(true), UserID: u.ID, FilmID: f.ID, Useful: 7}
	require.NoError(t, s.CreateReview(ctx, &r))
	assert.NotZero(t, r.ID)
	assert.Equal(t, 0, r.Useful, "usefulness starts at zero")

	bad := models.Review{Content: "x", IsPositive: boolPtr(true), UserID: 999, FilmID: f.ID}
	assert.ErrorIs(t, s.CreateReview(ctx, &bad), store.ErrNotFound)
	bad = models.Review{Content: "x", IsPositive: boolPtr(true), UserID: u.ID, FilmID: 999}
	assert.ErrorIs(t, s.CreateReview(ctx, &bad), store.ErrNotFound)

	upd := models.Review{ID: r.ID, Content: "Actually dull", IsPositive: boolPtr(false), UserID: 555, FilmID: 555, Useful: 100}
	require.NoError(t, s.UpdateReview(ctx, &upd))
	assert.Equal(t, u.ID, upd.UserID, "update never changes the author")
	assert.Equal(t, f.ID, upd.FilmID, "update never changes the film")
	assert.Equal(t, 0, upd.Useful, "update never touches usefulness")

	got, err := s.GetReview(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Actually dull", got.Content)
	assert.False(t, got.Positive())

	missing := models.Review{ID: 999, Content: "x", IsPositive: boolPtr(true)}
	assert.ErrorIs(t, s.UpdateReview(ctx, &missing), store.ErrNotFound)

	r2 := models.Review{Content: "Fine", IsPositive: boolPtr(true), UserID: u.ID, FilmID: g.ID}
	require.NoError(t, s.CreateReview(ctx, &r2))
	_, err = s.SetReaction(ctx, r2.ID, u.ID, true)
	require.NoError(t, err)

	all, err := s.ListReviews(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, r2.ID, all[0].ID, "most useful first")
	assert.Equal(t, r.ID, all[1].ID)

	limited, err := s.ListReviews(ctx, 0, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	forFilm, err := s.ListReviews(ctx, f.ID, 10)
	require.NoError(t, err)
	require.Len(t, forFilm, 1)
	assert.Equal(t, r.ID, forFilm[0].ID)

	require.NoError(t, s.DeleteReview(ctx, r2.ID))
	_, err = s.GetReview(ctx, r2.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteReview(ctx, r2.ID), store.ErrNotFound)
}

func testReactions(t *testing.T, s store.FactStore) {
	ctx := context.Background()

	author := MustUser(t, s, "author")
	u1 := MustUser(t, s, "u1")
	u2 := MustUser(t, s, "u2")
	f := MustFilm(t, s, "Film", 2010)

	r := models.Review{Content: "ok", IsPositive: boolPtr(true), UserID: author.ID, FilmID: f.ID}
	require.NoError(t, s.CreateReview(ctx, &r))

	out, err := s.SetReaction(ctx, r.ID, u1.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Useful)
	assert.Nil(t, out.Previous)

	out, err = s.SetReaction(ctx, r.ID, u1.ID, false)
	require.NoError(t, err)
	assert.Equal(t, -1, out.Useful, "a second reaction replaces the first")
	require.NotNil(t, out.Previous)
	assert.True(t, *out.Previous)

	out, err = s.SetReaction(ctx, r.ID, u2.ID, false)
	require.NoError(t, err)
	assert.Equal(t, -2, out.Useful)

	got, err := s.GetReview(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, -2, got.Useful)

	out, err = s.DeleteReaction(ctx, r.ID, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, out.Useful)
	require.NotNil(t, out.Previous)
	assert.False(t, *out.Previous)

	out, err = s.DeleteReaction(ctx, r.ID, u1.ID)
	require.NoError(t, err, "removing an absent reaction is a no-op")
	assert.Equal(t, -1, out.Useful)
	assert.Nil(t, out.Previous)

	_, err = s.SetReaction(ctx, 999, u1.ID, true)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.SetReaction(ctx, r.ID, 999, true)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.DeleteReaction(ctx, 999, u1.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testEvents(t *testing.T, s store.FactStore) {
	ctx := context.Background()

	a := MustUser(t, s, "a")
	b := MustUser(t, s, "b")

	for i, e := range []models.Event{
		{Timestamp: 1000, UserID: a.ID, Category: models.EventFriend, Operation: models.OperationAdd, EntityID: b.ID},
		{Timestamp: 1001, UserID: b.ID, Category: models.EventLike, Operation: models.OperationAdd, EntityID: 5},
		{Timestamp: 1002, UserID: a.ID, Category: models.EventFriend, Operation: models.OperationRemove, EntityID: b.ID},
	} {
		e := e
		require.NoError(t, s.AppendEvent(ctx, &e), "event %d", i)
		assert.NotZero(t, e.ID)
	}

	bad := models.Event{Timestamp: 1, UserID: 999, Category: models.EventLike, Operation: models.OperationAdd, EntityID: 1}
	assert.ErrorIs(t, s.AppendEvent(ctx, &bad), store.ErrNotFound)

	feed, err := s.ListEvents(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Less(t, feed[0].ID, feed[1].ID)
	assert.Equal(t, models.OperationAdd, feed[0].Operation)
	assert.Equal(t, models.OperationRemove, feed[1].Operation)
	assert.Equal(t, int64(1002), feed[1].Timestamp)
	assert.Equal(t, b.ID, feed[1].EntityID)

	_, err = s.ListEvents(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testDirectors(t *testing.T, s store.FactStore) {
	ctx := context.Background()

	d := models.Director{Name: "Hitchcock"}
	require.NoError(t, s.CreateDirector(ctx, &d))
	d2 := models.Director{Name: "Lang"}
	require.NoError(t, s.CreateDirector(ctx, &d2))

	d.Name = "Alfred Hitchcock"
	require.NoError(t, s.UpdateDirector(ctx, &d))
	got, err := s.GetDirector(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alfred Hitchcock", got.Name)

	assert.ErrorIs(t, s.UpdateDirector(ctx, &models.Director{ID: 999, Name: "x"}), store.ErrNotFound)

	all, err := s.ListDirectors(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, d.ID, all[0].ID)

	f := MustFilm(t, s, "Rear Window", 1954)
	f.Directors = []models.Director{{ID: d.ID}}
	require.NoError(t, s.UpdateFilm(ctx, &f))

	require.NoError(t, s.DeleteDirector(ctx, d.ID))
	_, err = s.GetDirector(ctx, d.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteDirector(ctx, d.ID), store.ErrNotFound)

	film, err := s.GetFilm(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, film.Directors, "credits are removed with the director")
}

func testDeleteUserCascade(t *testing.T, s store.FactStore) {
	ctx := context.Background()

	gone := MustUser(t, s, "gone")
	stay := MustUser(t, s, "stay")
	f := MustFilm(t, s, "Film", 2000)

	require.NoError(t, s.AddLike(ctx, f.ID, gone.ID))
	require.NoError(t, s.AddLike(ctx, f.ID, stay.ID))
	require.NoError(t, s.AddFriend(ctx, gone.ID, stay.ID))
	require.NoError(t, s.AddFriend(ctx, stay.ID, gone.ID))

	own := models.Review{Content: "mine", IsPositive: boolPtr(true), UserID: gone.ID, FilmID: f.ID}
	require.NoError(t, s.CreateReview(ctx, &own))
	other := models.Review{Content: "theirs", IsPositive: boolPtr(true), UserID: stay.ID, FilmID: f.ID}
	require.NoError(t, s.CreateReview(ctx, &other))
	_, err := s.SetReaction(ctx, other.ID, gone.ID, true)
	require.NoError(t, err)

	ev := models.Event{Timestamp: 1, UserID: gone.ID, Category: models.EventLike, Operation: models.OperationAdd, EntityID: f.ID}
	require.NoError(t, s.AppendEvent(ctx, &ev))
	stayEvent := models.Event{Timestamp: 2, UserID: stay.ID, Category: models.EventFriend, Operation: models.OperationAdd, EntityID: gone.ID}
	require.NoError(t, s.AppendEvent(ctx, &stayEvent))

	require.NoError(t, s.DeleteUser(ctx, gone.ID))
	assert.ErrorIs(t, s.DeleteUser(ctx, gone.ID), store.ErrNotFound)

	film, err := s.GetFilm(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, film.Likes)

	friends, err := s.FriendIDs(ctx, stay.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	_, err = s.GetReview(ctx, own.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	kept, err := s.GetReview(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, kept.Useful, "usefulness is recomputed without the deleted user's reaction")

	_, err = s.ListEvents(ctx, gone.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	feed, err := s.ListEvents(ctx, stay.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1, "other actors' events survive untouched")
	assert.Equal(t, stayEvent.ID, feed[0].ID)
	assert.Equal(t, gone.ID, feed[0].EntityID)
}

func testDeleteFilmCascade(t *testing.T, s store.FactStore) {
	ctx := context.Background()

	u := MustUser(t, s, "u")
	f := MustFilm(t, s, "Film", 2000)
	require.NoError(t, s.AddLike(ctx, f.ID, u.ID))

	r := models.Review{Content: "ok", IsPositive: boolPtr(true), UserID: u.ID, FilmID: f.ID}
	require.NoError(t, s.CreateReview(ctx, &r))
	_, err := s.SetReaction(ctx, r.ID, u.ID, false)
	require.NoError(t, err)

	require.NoError(t, s.DeleteFilm(ctx, f.ID))
	assert.ErrorIs(t, s.DeleteFilm(ctx, f.ID), store.ErrNotFound)

	_, err = s.GetReview(ctx, r.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	liked, err := s.LikedFilms(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, liked)
}
