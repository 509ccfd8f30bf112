// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

// Package store defines the fact store contract shared by every backend.
//
// The contract is split into capability interfaces (users, films, likes,
// friendships, reviews, events, catalog lookups) that are composed into
// FactStore. Engines depend on the narrowest capability they use.
//
// Every write method is a single atomic transaction. Backends enforce
// uniqueness and referential integrity themselves and report violations
// with the error kinds in errors.go; they never silently drop a write.
package store

import (
	"context"

	"github.com/tomtom215/filmgraph/internal/models"
)

// UserStore stores user accounts.
type UserStore interface {
	// CreateUser inserts u and assigns u.ID.
	CreateUser(ctx context.Context, u *models.User) error
	// UpdateUser replaces every field of an existing user.
	UpdateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// ListUsers returns users in ascending id order. A nil ids slice lists
	// every user; otherwise only the given ids that exist are returned.
	ListUsers(ctx context.Context, ids []int64) ([]models.User, error)
	// DeleteUser removes the user and every edge, review and event that
	// references it.
	DeleteUser(ctx context.Context, id int64) error
}

// FilmStore stores films with their genre, director and MPA references.
type FilmStore interface {
	// CreateFilm inserts f, assigns f.ID and fills the lookup names.
	CreateFilm(ctx context.Context, f *models.Film) error
	// UpdateFilm replaces every field of an existing film, including its
	// genre and director sets.
	UpdateFilm(ctx context.Context, f *models.Film) error
	GetFilm(ctx context.Context, id int64) (*models.Film, error)
	// ListFilms returns the films matching filter in ascending id order,
	// each carrying its current like count.
	ListFilms(ctx context.Context, filter FilmFilter) ([]models.Film, error)
	DeleteFilm(ctx context.Context, id int64) error
}

// LikeStore stores (film, user) like edges.
type LikeStore interface {
	// AddLike fails with ErrNotFound for a missing film or user and with
	// ErrConflict when the like already exists.
	AddLike(ctx context.Context, filmID, userID int64) error
	// RemoveLike fails with ErrNotFound for a missing film or user. Removing
	// an absent like is a no-op.
	RemoveLike(ctx context.Context, filmID, userID int64) error
	// LikedFilms returns the ids of films the user likes, ascending.
	LikedFilms(ctx context.Context, userID int64) ([]int64, error)
	// LikeGraph returns every like edge grouped by user id. Film ids in
	// each group are ascending.
	LikeGraph(ctx context.Context) (map[int64][]int64, error)
}

// FriendStore stores directed friendship edges.
type FriendStore interface {
	// AddFriend creates the edge userID -> friendID. It fails with
	// ErrNotFound when either user is missing and with ErrConflict when the
	// edge already exists.
	AddFriend(ctx context.Context, userID, friendID int64) error
	// RemoveFriend deletes the edge userID -> friendID if present.
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	// FriendIDs returns the ids userID follows, ascending.
	FriendIDs(ctx context.Context, userID int64) ([]int64, error)
}

// ReviewStore stores reviews and their reactions.
type ReviewStore interface {
	// CreateReview inserts r with usefulness 0 and assigns r.ID.
	CreateReview(ctx context.Context, r *models.Review) error
	// UpdateReview changes content and polarity only and refreshes r from
	// the stored row.
	UpdateReview(ctx context.Context, r *models.Review) error
	GetReview(ctx context.Context, id int64) (*models.Review, error)
	// ListReviews returns reviews ordered by usefulness descending, then id
	// ascending. filmID 0 lists reviews of every film.
	ListReviews(ctx context.Context, filmID int64, limit int) ([]models.Review, error)
	// DeleteReview removes the review and its reactions.
	DeleteReview(ctx context.Context, id int64) error
	// SetReaction upserts the (review, user) reaction and recomputes
	// usefulness in the same transaction.
	SetReaction(ctx context.Context, reviewID, userID int64, helpful bool) (models.ReactionOutcome, error)
	// DeleteReaction removes the (review, user) reaction if present and
	// recomputes usefulness in the same transaction.
	DeleteReaction(ctx context.Context, reviewID, userID int64) (models.ReactionOutcome, error)
}

// EventStore is the append-only activity log. Events are never updated;
// the only removal is DeleteUser, which drops the deleted actor's events
// together with the user row.
type EventStore interface {
	// AppendEvent inserts e and assigns e.ID. The actor must exist.
	AppendEvent(ctx context.Context, e *models.Event) error
	// ListEvents returns the actor's events in ascending id order.
	ListEvents(ctx context.Context, userID int64) ([]models.Event, error)
}

// CatalogStore serves genre and MPA lookups and stores directors.
type CatalogStore interface {
	ListGenres(ctx context.Context) ([]models.Genre, error)
	GetGenre(ctx context.Context, id int64) (*models.Genre, error)
	ListMpa(ctx context.Context) ([]models.Mpa, error)
	GetMpa(ctx context.Context, id int64) (*models.Mpa, error)

	CreateDirector(ctx context.Context, d *models.Director) error
	UpdateDirector(ctx context.Context, d *models.Director) error
	GetDirector(ctx context.Context, id int64) (*models.Director, error)
	ListDirectors(ctx context.Context) ([]models.Director, error)
	// DeleteDirector removes the director and its film credits.
	DeleteDirector(ctx context.Context, id int64) error
}

// FactStore is the full capability set implemented by every backend.
type FactStore interface {
	UserStore
	FilmStore
	LikeStore
	FriendStore
	ReviewStore
	EventStore
	CatalogStore

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}
