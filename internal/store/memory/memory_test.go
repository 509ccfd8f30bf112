// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
	"github.com/tomtom215/filmgraph/internal/store/storetest"
)

func TestStoreConformance(t *testing.T) {
	t.Parallel()
	storetest.Run(t, func(t *testing.T) store.FactStore { return New() })
}

func TestStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	u := storetest.MustUser(t, s, "u")
	f := storetest.MustFilm(t, s, "Film", 2000, 1)

	positive := true
	r := models.Review{Content: "ok", IsPositive: &positive, UserID: u.ID, FilmID: f.ID}
	if err := s.CreateReview(ctx, &r); err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}

	positive = false
	got, err := s.GetReview(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetReview() error = %v", err)
	}
	if !got.Positive() {
		t.Error("stored review changed through the caller's pointer")
	}

	film, err := s.GetFilm(ctx, f.ID)
	if err != nil {
		t.Fatalf("GetFilm() error = %v", err)
	}
	film.Genres[0].Name = "mutated"
	again, _ := s.GetFilm(ctx, f.ID)
	if again.Genres[0].Name != "Comedy" {
		t.Errorf("genre name = %q, want Comedy", again.Genres[0].Name)
	}
}

func TestStore_ConcurrentReactions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	author := storetest.MustUser(t, s, "author")
	f := storetest.MustFilm(t, s, "Film", 2000)

	positive := true
	r := models.Review{Content: "ok", IsPositive: &positive, UserID: author.ID, FilmID: f.ID}
	if err := s.CreateReview(ctx, &r); err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}

	const n = 50
	users := make([]int64, n)
	for i := range users {
		u := models.User{Email: "r@example.com", Login: "r"}
		if err := s.CreateUser(ctx, &u); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		users[i] = u.ID
	}

	var wg sync.WaitGroup
	for i, id := range users {
		wg.Add(1)
		go func(helpful bool, userID int64) {
			defer wg.Done()
			if _, err := s.SetReaction(ctx, r.ID, userID, helpful); err != nil {
				t.Errorf("SetReaction() error = %v", err)
			}
		}(i%2 == 0, id)
	}
	wg.Wait()

	got, err := s.GetReview(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetReview() error = %v", err)
	}
	if got.Useful != 0 {
		t.Errorf("Useful = %d, want 0 after %d helpful and %d unhelpful", got.Useful, n/2, n/2)
	}
}
