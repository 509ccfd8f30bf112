// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package api

import (
	"net/http"

	"github.com/tomtom215/filmgraph/internal/models"
)

func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.Catalog.ListGenres(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, genres)
}

func (h *Handler) GetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	g, err := h.svc.Catalog.GetGenre(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, g)
}

func (h *Handler) ListMpa(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.svc.Catalog.ListMpa(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, ratings)
}

func (h *Handler) GetMpa(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	m, err := h.svc.Catalog.GetMpa(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, m)
}

func (h *Handler) CreateDirector(w http.ResponseWriter, r *http.Request) {
	var d models.Director
	if err := decodeJSON(r, &d); err != nil {
		respondErr(w, r, err)
		return
	}
	created, err := h.svc.Catalog.CreateDirector(r.Context(), &d)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondData(w, r, http.StatusCreated, created)
}

func (h *Handler) UpdateDirector(w http.ResponseWriter, r *http.Request) {
	var d models.Director
	if err := decodeJSON(r, &d); err != nil {
		respondErr(w, r, err)
		return
	}
	updated, err := h.svc.Catalog.UpdateDirector(r.Context(), &d)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, updated)
}

func (h *Handler) ListDirectors(w http.ResponseWriter, r *http.Request) {
	directors, err := h.svc.Catalog.ListDirectors(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, directors)
}

func (h *Handler) GetDirector(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	d, err := h.svc.Catalog.GetDirector(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, d)
}

func (h *Handler) DeleteDirector(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	if err := h.svc.Catalog.DeleteDirector(r.Context(), id); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
