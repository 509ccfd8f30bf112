// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/filmgraph/internal/activity"
	"github.com/tomtom215/filmgraph/internal/catalog"
	"github.com/tomtom215/filmgraph/internal/config"
	"github.com/tomtom215/filmgraph/internal/ranking"
	"github.com/tomtom215/filmgraph/internal/recommend"
	"github.com/tomtom215/filmgraph/internal/reputation"
	"github.com/tomtom215/filmgraph/internal/social"
	"github.com/tomtom215/filmgraph/internal/store/memory"
)

// envelope decodes the APIResponse with a typed payload.
type envelope[T any] struct {
	Status string    `json:"status"`
	Data   T         `json:"data"`
	Error  *APIError `json:"error"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithConfig(t, config.APIConfig{MaxListLimit: 100, RateLimitDisabled: true})
}

func newTestServerWithConfig(t *testing.T, cfg config.APIConfig) *testServer {
	t.Helper()
	st := memory.New()
	log := activity.New(st)
	svc := Services{
		Catalog:    catalog.New(st, log),
		Ranking:    ranking.New(st),
		Recommend:  recommend.NewEngine(st),
		Reputation: reputation.New(st, log, reputation.Config{}),
		Social:     social.New(st, log),
		Activity:   log,
		Store:      st,
	}
	h := NewHandler(svc, cfg)
	return &testServer{t: t, handler: NewRouter(h, NewChiMiddleware(MiddlewareConfigFromAPI(cfg))).SetupChi()}
}

func (s *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func (s *testServer) createUser(login string) int64 {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/users", map[string]interface{}{
		"email":    login + "@example.com",
		"login":    login,
		"birthday": "1990-05-05",
	})
	if rec.Code != http.StatusCreated {
		s.t.Fatalf("create user: status %d body %s", rec.Code, rec.Body.String())
	}
	return decode[struct {
		ID int64 `json:"id"`
	}](s.t, rec).Data.ID
}

func (s *testServer) createFilm(name string, genres ...int64) int64 {
	s.t.Helper()
	gs := make([]map[string]int64, 0, len(genres))
	for _, g := range genres {
		gs = append(gs, map[string]int64{"id": g})
	}
	rec := s.do(http.MethodPost, "/films", map[string]interface{}{
		"name":        name,
		"description": "desc",
		"releaseDate": "2000-01-01",
		"duration":    100,
		"mpa":         map[string]int64{"id": 1},
		"genres":      gs,
	})
	if rec.Code != http.StatusCreated {
		s.t.Fatalf("create film: status %d body %s", rec.Code, rec.Body.String())
	}
	return decode[struct {
		ID int64 `json:"id"`
	}](s.t, rec).Data.ID
}

func (s *testServer) expect(method, path string, want int) *httptest.ResponseRecorder {
	s.t.Helper()
	rec := s.do(method, path, nil)
	if rec.Code != want {
		s.t.Fatalf("%s %s: status %d, want %d, body %s", method, path, rec.Code, want, rec.Body.String())
	}
	return rec
}

type filmView struct {
	ID    int64 `json:"id"`
	Likes int   `json:"likes"`
}

func filmIDs(films []filmView) []int64 {
	out := make([]int64, len(films))
	for i, f := range films {
		out[i] = f.ID
	}
	return out
}

func TestUserLifecycle(t *testing.T) {
	s := newTestServer(t)
	id := s.createUser("alice")

	rec := s.expect(http.MethodGet, fmt.Sprintf("/users/%d", id), http.StatusOK)
	env := decode[struct {
		Name  string `json:"name"`
		Login string `json:"login"`
	}](t, rec)
	if env.Status != "success" || env.Data.Name != "alice" {
		t.Errorf("unexpected user response: %+v", env)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}

	rec = s.do(http.MethodPost, "/users", map[string]string{"email": "bad", "login": "has space"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid user: status %d", rec.Code)
	}
	if e := decode[any](t, rec).Error; e == nil || e.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %+v", e)
	}

	s.expect(http.MethodDelete, fmt.Sprintf("/users/%d", id), http.StatusNoContent)
	s.expect(http.MethodGet, fmt.Sprintf("/users/%d", id), http.StatusNotFound)
	s.expect(http.MethodGet, "/users/abc", http.StatusBadRequest)
}

func TestFriendsAndFeed(t *testing.T) {
	s := newTestServer(t)
	u1, u2, u3, u4 := s.createUser("u1"), s.createUser("u2"), s.createUser("u3"), s.createUser("u4")

	s.expect(http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", u1, u2), http.StatusNoContent)
	s.expect(http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", u1, u3), http.StatusNoContent)
	s.expect(http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", u4, u2), http.StatusNoContent)
	s.expect(http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", u4, u2), http.StatusConflict)
	s.expect(http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", u1, u1), http.StatusBadRequest)
	s.expect(http.MethodPut, fmt.Sprintf("/users/%d/friends/999", u1), http.StatusNotFound)

	rec := s.expect(http.MethodGet, fmt.Sprintf("/users/%d/friends/common/%d", u1, u4), http.StatusOK)
	common := decode[[]struct {
		ID int64 `json:"id"`
	}](t, rec).Data
	if len(common) != 1 || common[0].ID != u2 {
		t.Errorf("common friends = %+v, want [%d]", common, u2)
	}

	rec = s.expect(http.MethodGet, fmt.Sprintf("/users/%d/friends", u2), http.StatusOK)
	if got := decode[[]any](t, rec).Data; len(got) != 0 {
		t.Errorf("friendship must be directed, u2 follows %v", got)
	}

	s.expect(http.MethodDelete, fmt.Sprintf("/users/%d/friends/%d", u1, u3), http.StatusNoContent)

	rec = s.expect(http.MethodGet, fmt.Sprintf("/users/%d/feed", u1), http.StatusOK)
	feed := decode[[]struct {
		EventType string `json:"eventType"`
		Operation string `json:"operation"`
		EntityID  int64  `json:"entityId"`
	}](t, rec).Data
	if len(feed) != 3 {
		t.Fatalf("expected 3 events, got %+v", feed)
	}
	if feed[2].EventType != "FRIEND" || feed[2].Operation != "REMOVE" || feed[2].EntityID != u3 {
		t.Errorf("unexpected last event %+v", feed[2])
	}
}

func TestFilmRankingEndpoints(t *testing.T) {
	s := newTestServer(t)
	u1, u2, u3 := s.createUser("u1"), s.createUser("u2"), s.createUser("u3")
	y := s.createFilm("Film Y", 1)
	x := s.createFilm("Film X", 1)
	s.createFilm("Film Z", 2)

	for _, u := range []int64{u1, u2, u3} {
		s.expect(http.MethodPut, fmt.Sprintf("/films/%d/like/%d", x, u), http.StatusNoContent)
	}
	s.expect(http.MethodPut, fmt.Sprintf("/films/%d/like/%d", y, u1), http.StatusNoContent)
	s.expect(http.MethodPut, fmt.Sprintf("/films/%d/like/%d", y, u1), http.StatusConflict)

	rec := s.expect(http.MethodGet, "/films/popular?count=10&genreId=1", http.StatusOK)
	got := filmIDs(decode[[]filmView](t, rec).Data)
	if len(got) != 2 || got[0] != x || got[1] != y {
		t.Errorf("popular = %v, want [%d %d]", got, x, y)
	}

	s.expect(http.MethodGet, "/films/popular?count=0", http.StatusBadRequest)
	s.expect(http.MethodGet, "/films/popular?count=abc", http.StatusBadRequest)

	rec = s.expect(http.MethodGet, fmt.Sprintf("/films/common?userId=%d&friendId=%d", u1, u2), http.StatusOK)
	if got := filmIDs(decode[[]filmView](t, rec).Data); len(got) != 1 || got[0] != x {
		t.Errorf("common films = %v, want [%d]", got, x)
	}

	rec = s.expect(http.MethodGet, "/films/search?query=film%20x&by=title", http.StatusOK)
	if got := filmIDs(decode[[]filmView](t, rec).Data); len(got) != 1 || got[0] != x {
		t.Errorf("search = %v, want [%d]", got, x)
	}
	s.expect(http.MethodGet, "/films/search?query=x&by=genre", http.StatusBadRequest)

	rec = s.do(http.MethodPost, "/directors", map[string]string{"name": "Someone"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create director: %d", rec.Code)
	}
	s.expect(http.MethodGet, "/films/director/1?sortBy=rating", http.StatusBadRequest)
	s.expect(http.MethodGet, "/films/director/1?sortBy=year", http.StatusOK)
	s.expect(http.MethodGet, "/films/director/99?sortBy=year", http.StatusNotFound)

	s.expect(http.MethodDelete, fmt.Sprintf("/films/%d/like/%d", y, u1), http.StatusNoContent)
	rec = s.expect(http.MethodGet, fmt.Sprintf("/films/%d", y), http.StatusOK)
	if likes := decode[filmView](t, rec).Data.Likes; likes != 0 {
		t.Errorf("likes after unlike = %d", likes)
	}
}

func TestPopularFilmsCountCeiling(t *testing.T) {
	t.Parallel()
	s := newTestServerWithConfig(t, config.APIConfig{MaxListLimit: 2, RateLimitDisabled: true})

	u := s.createUser("fan")
	a := s.createFilm("A", 1)
	b := s.createFilm("B", 1)
	s.createFilm("C", 1)
	s.expect(http.MethodPut, fmt.Sprintf("/films/%d/like/%d", b, u), http.StatusNoContent)

	rec := s.expect(http.MethodGet, "/films/popular?count=50", http.StatusOK)
	got := filmIDs(decode[[]filmView](t, rec).Data)
	if len(got) != 2 || got[0] != b || got[1] != a {
		t.Errorf("popular above ceiling = %v, want [%d %d]", got, b, a)
	}

	rec = s.expect(http.MethodGet, "/films/popular?count=1", http.StatusOK)
	got = filmIDs(decode[[]filmView](t, rec).Data)
	if len(got) != 1 || got[0] != b {
		t.Errorf("popular count=1 = %v, want [%d]", got, b)
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	s := newTestServer(t)
	u1, u2, u3 := s.createUser("u1"), s.createUser("u2"), s.createUser("u3")
	a, b, c, d := s.createFilm("A"), s.createFilm("B"), s.createFilm("C"), s.createFilm("D")

	likes := [][2]int64{{a, u1}, {b, u1}, {a, u2}, {c, u2}, {d, u3}}
	for _, l := range likes {
		s.expect(http.MethodPut, fmt.Sprintf("/films/%d/like/%d", l[0], l[1]), http.StatusNoContent)
	}

	rec := s.expect(http.MethodGet, fmt.Sprintf("/users/%d/recommendations", u1), http.StatusOK)
	if got := filmIDs(decode[[]filmView](t, rec).Data); len(got) != 1 || got[0] != c {
		t.Errorf("recommendations = %v, want [%d]", got, c)
	}
	s.expect(http.MethodGet, "/users/999/recommendations", http.StatusNotFound)
}

func TestReviewEndpoints(t *testing.T) {
	s := newTestServer(t)
	u := s.createUser("critic")
	f := s.createFilm("Film")

	rec := s.do(http.MethodPost, "/reviews", map[string]interface{}{
		"content":    "Loved it",
		"isPositive": true,
		"userId":     u,
		"filmId":     f,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create review: %d %s", rec.Code, rec.Body.String())
	}
	review := decode[struct {
		ID     int64 `json:"reviewId"`
		Useful int   `json:"useful"`
	}](t, rec).Data
	if review.Useful != 0 {
		t.Errorf("new review useful = %d", review.Useful)
	}

	useful := func(method, path string) int {
		t.Helper()
		rec := s.expect(method, path, http.StatusOK)
		return decode[UsefulResponse](t, rec).Data.Useful
	}
	like := fmt.Sprintf("/reviews/%d/like/%d", review.ID, u)
	dislike := fmt.Sprintf("/reviews/%d/dislike/%d", review.ID, u)

	if got := useful(http.MethodPut, like); got != 1 {
		t.Errorf("after like useful = %d", got)
	}
	if got := useful(http.MethodPut, dislike); got != -1 {
		t.Errorf("after dislike useful = %d", got)
	}
	if got := useful(http.MethodDelete, dislike); got != 0 {
		t.Errorf("after removal useful = %d", got)
	}
	if got := useful(http.MethodDelete, like); got != 0 {
		t.Errorf("second removal useful = %d", got)
	}

	s.expect(http.MethodGet, fmt.Sprintf("/reviews?filmId=%d&count=-1", f), http.StatusBadRequest)
	rec = s.expect(http.MethodGet, fmt.Sprintf("/reviews?filmId=%d", f), http.StatusOK)
	if got := decode[[]any](t, rec).Data; len(got) != 1 {
		t.Errorf("expected one review, got %d", len(got))
	}

	s.expect(http.MethodDelete, fmt.Sprintf("/reviews/%d", review.ID), http.StatusNoContent)
	s.expect(http.MethodGet, fmt.Sprintf("/reviews/%d", review.ID), http.StatusNotFound)
}

func TestLookupsAndHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.expect(http.MethodGet, "/genres", http.StatusOK)
	if got := decode[[]any](t, rec).Data; len(got) != 6 {
		t.Errorf("expected 6 genres, got %d", len(got))
	}
	s.expect(http.MethodGet, "/mpa/5", http.StatusOK)
	s.expect(http.MethodGet, "/mpa/6", http.StatusNotFound)
	s.expect(http.MethodGet, "/health", http.StatusOK)
	s.expect(http.MethodGet, "/metrics", http.StatusOK)
	s.expect(http.MethodGet, "/nowhere", http.StatusNotFound)
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealthDegraded(t *testing.T) {
	h := NewHandler(Services{Store: failingPinger{}}, config.APIConfig{})
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}
