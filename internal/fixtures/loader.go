// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/models"
)

// Catalog creates the reference entities and likes.
type Catalog interface {
	CreateDirector(ctx context.Context, d *models.Director) (*models.Director, error)
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
	CreateFilm(ctx context.Context, f *models.Film) (*models.Film, error)
	Like(ctx context.Context, filmID, userID int64) error
}

// Social adds friendships.
type Social interface {
	AddFriend(ctx context.Context, userID, friendID int64) error
}

// Reviews creates reviews and reactions.
type Reviews interface {
	Create(ctx context.Context, r *models.Review) (*models.Review, error)
	React(ctx context.Context, reviewID, userID int64, helpful bool) (int, error)
}

// IDs maps seed keys to the ids the store assigned.
type IDs struct {
	Directors map[string]int64
	Users     map[string]int64
	Films     map[string]int64
	Reviews   map[string]int64
}

// Loader applies seeds through the engines, so fixtures pass the same
// validation and emit the same activity events as API traffic.
type Loader struct {
	catalog Catalog
	social  Social
	reviews Reviews
}

// NewLoader creates a Loader.
func NewLoader(c Catalog, s Social, r Reviews) *Loader {
	return &Loader{catalog: c, social: s, reviews: r}
}

// Apply inserts the seed in dependency order and stops at the first error.
// Entities created before the error stay in the store.
func (l *Loader) Apply(ctx context.Context, seed *Seed) (*IDs, *Stats, error) {
	ids := &IDs{
		Directors: make(map[string]int64, len(seed.Directors)),
		Users:     make(map[string]int64, len(seed.Users)),
		Films:     make(map[string]int64, len(seed.Films)),
		Reviews:   make(map[string]int64, len(seed.Reviews)),
	}
	stats := &Stats{StartTime: time.Now()}
	defer func() { stats.EndTime = time.Now() }()

	for _, d := range seed.Directors {
		created, err := l.catalog.CreateDirector(ctx, &models.Director{Name: d.Name})
		if err != nil {
			return ids, stats, fmt.Errorf("director %q: %w", d.Key, err)
		}
		ids.Directors[d.Key] = created.ID
		stats.Directors++
	}

	for _, u := range seed.Users {
		created, err := l.catalog.CreateUser(ctx, &models.User{
			Email:    u.Email,
			Login:    u.Login,
			Name:     u.Name,
			Birthday: u.Birthday,
		})
		if err != nil {
			return ids, stats, fmt.Errorf("user %q: %w", u.Key, err)
		}
		ids.Users[u.Key] = created.ID
		stats.Users++
	}

	for i := range seed.Films {
		f := &seed.Films[i]
		created, err := l.catalog.CreateFilm(ctx, f.model(ids))
		if err != nil {
			return ids, stats, fmt.Errorf("film %q: %w", f.Key, err)
		}
		ids.Films[f.Key] = created.ID
		stats.Films++
	}

	for _, like := range seed.Likes {
		if err := l.catalog.Like(ctx, ids.Films[like.Film], ids.Users[like.User]); err != nil {
			return ids, stats, fmt.Errorf("like %s->%s: %w", like.User, like.Film, err)
		}
		stats.Likes++
	}

	for _, f := range seed.Friendships {
		if err := l.social.AddFriend(ctx, ids.Users[f.User], ids.Users[f.Friend]); err != nil {
			return ids, stats, fmt.Errorf("friendship %s->%s: %w", f.User, f.Friend, err)
		}
		stats.Friendships++
	}

	for _, r := range seed.Reviews {
		positive := r.Positive
		created, err := l.reviews.Create(ctx, &models.Review{
			Content:    r.Content,
			IsPositive: &positive,
			UserID:     ids.Users[r.User],
			FilmID:     ids.Films[r.Film],
		})
		if err != nil {
			return ids, stats, fmt.Errorf("review %q: %w", r.Key, err)
		}
		ids.Reviews[r.Key] = created.ID
		stats.Reviews++
	}

	for _, r := range seed.Reactions {
		if _, err := l.reviews.React(ctx, ids.Reviews[r.Review], ids.Users[r.User], r.Helpful); err != nil {
			return ids, stats, fmt.Errorf("reaction %s->%s: %w", r.User, r.Review, err)
		}
		stats.Reactions++
	}

	logging.Info().
		Int("users", stats.Users).
		Int("films", stats.Films).
		Int("likes", stats.Likes).
		Int("friendships", stats.Friendships).
		Int("reviews", stats.Reviews).
		Int("reactions", stats.Reactions).
		Dur("duration", time.Since(stats.StartTime)).
		Msg("Seed applied")
	return ids, stats, nil
}

func (f *FilmSeed) model(ids *IDs) *models.Film {
	film := &models.Film{
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate,
		Duration:    f.Duration,
		Mpa:         &models.Mpa{ID: f.Mpa},
	}
	for _, g := range f.Genres {
		film.Genres = append(film.Genres, models.Genre{ID: g})
	}
	for _, d := range f.Directors {
		film.Directors = append(film.Directors, models.Director{ID: ids.Directors[d]})
	}
	return film
}
