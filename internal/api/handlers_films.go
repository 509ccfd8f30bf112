// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/ranking"
	"github.com/tomtom215/filmgraph/internal/validation"
)

// defaultPopularCount is used when /films/popular omits count.
const defaultPopularCount = 10

func (h *Handler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var f models.Film
	if err := decodeJSON(r, &f); err != nil {
		respondErr(w, r, err)
		return
	}
	created, err := h.svc.Catalog.CreateFilm(r.Context(), &f)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondData(w, r, http.StatusCreated, created)
}

func (h *Handler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	var f models.Film
	if err := decodeJSON(r, &f); err != nil {
		respondErr(w, r, err)
		return
	}
	updated, err := h.svc.Catalog.UpdateFilm(r.Context(), &f)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, updated)
}

func (h *Handler) ListFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.svc.Catalog.ListFilms(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, films)
}

func (h *Handler) GetFilm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	f, err := h.svc.Catalog.GetFilm(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, f)
}

func (h *Handler) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	if err := h.svc.Catalog.DeleteFilm(r.Context(), id); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LikeFilm handles PUT /films/{id}/like/{userId}.
func (h *Handler) LikeFilm(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "id", "userId")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	ctx := logging.ContextWithUserID(r.Context(), ids[1])
	if err := h.svc.Catalog.Like(ctx, ids[0], ids[1]); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnlikeFilm handles DELETE /films/{id}/like/{userId}.
func (h *Handler) UnlikeFilm(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "id", "userId")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	ctx := logging.ContextWithUserID(r.Context(), ids[1])
	if err := h.svc.Catalog.Unlike(ctx, ids[0], ids[1]); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PopularFilms handles GET /films/popular?count=&genreId=&year=.
// count defaults to 10 and is lowered to api.max_list_limit when it exceeds
// that ceiling; the engine applies the resulting limit.
func (h *Handler) PopularFilms(w http.ResponseWriter, r *http.Request) {
	count, ok, err := queryInt(r, "count")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	if !ok {
		count = defaultPopularCount
	}
	genreID, err := queryInt64(r, "genreId")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	year, _, err := queryInt(r, "year")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	films, err := h.svc.Ranking.Popular(r.Context(), ranking.PopularQuery{
		Limit:   clampLimit(count, h.cfg.MaxListLimit),
		GenreID: genreID,
		Year:    year,
	})
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, films)
}

// CommonFilms handles GET /films/common?userId=&friendId=.
func (h *Handler) CommonFilms(w http.ResponseWriter, r *http.Request) {
	userID, err := queryInt64(r, "userId")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	friendID, err := queryInt64(r, "friendId")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	if userID <= 0 || friendID <= 0 {
		respondErr(w, r, validation.NewError("userId", "required", nil, "userId and friendId are required"))
		return
	}

	films, err := h.svc.Ranking.Common(r.Context(), userID, friendID)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, films)
}

// DirectorFilms handles GET /films/director/{directorId}?sortBy=year|likes.
func (h *Handler) DirectorFilms(w http.ResponseWriter, r *http.Request) {
	directorID, err := pathID(r, "directorId")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	films, err := h.svc.Ranking.ByDirector(r.Context(), ranking.DirectorQuery{
		DirectorID: directorID,
		SortBy:     r.URL.Query().Get("sortBy"),
	})
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, films)
}

// SearchFilms handles GET /films/search?query=&by=title,director.
func (h *Handler) SearchFilms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	films, err := h.svc.Ranking.Search(r.Context(), ranking.SearchQuery{
		Query:  q.Get("query"),
		Fields: parseCommaSeparated(q.Get("by")),
	})
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, films)
}

// filmRoutes mounts the /films subtree. chi matches static segments such
// as /popular before the {id} parameter.
func (h *Handler) filmRoutes(r chi.Router) {
	r.Post("/", h.CreateFilm)
	r.Put("/", h.UpdateFilm)
	r.Get("/", h.ListFilms)
	r.Get("/popular", h.PopularFilms)
	r.Get("/common", h.CommonFilms)
	r.Get("/search", h.SearchFilms)
	r.Get("/director/{directorId}", h.DirectorFilms)
	r.Get("/{id}", h.GetFilm)
	r.Delete("/{id}", h.DeleteFilm)
	r.Put("/{id}/like/{userId}", h.LikeFilm)
	r.Delete("/{id}/like/{userId}", h.UnlikeFilm)
}
