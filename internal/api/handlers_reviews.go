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
)

// UsefulResponse is returned by reaction endpoints.
type UsefulResponse struct {
	Useful int `json:"useful"`
}

func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var rv models.Review
	if err := decodeJSON(r, &rv); err != nil {
		respondErr(w, r, err)
		return
	}
	ctx := logging.ContextWithUserID(r.Context(), rv.UserID)
	created, err := h.svc.Reputation.Create(ctx, &rv)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondData(w, r, http.StatusCreated, created)
}

func (h *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var rv models.Review
	if err := decodeJSON(r, &rv); err != nil {
		respondErr(w, r, err)
		return
	}
	updated, err := h.svc.Reputation.Update(r.Context(), &rv)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, updated)
}

// ListReviews handles GET /reviews?filmId=&count=.
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	filmID, err := queryInt64(r, "filmId")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	count, ok, err := queryInt(r, "count")
	if err != nil {
		respondErr(w, r, err)
		return
	}

	var limit *int
	if ok {
		if count > 0 {
			count = clampLimit(count, h.cfg.MaxListLimit)
		}
		limit = &count
	}
	reviews, err := h.svc.Reputation.ListForFilm(r.Context(), filmID, limit)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, reviews)
}

func (h *Handler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	rv, err := h.svc.Reputation.Get(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, rv)
}

func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	if err := h.svc.Reputation.Delete(r.Context(), id); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// react returns the handler for PUT /reviews/{id}/like|dislike/{userId}.
func (h *Handler) react(helpful bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := pathIDs(r, "id", "userId")
		if err != nil {
			respondErr(w, r, err)
			return
		}
		ctx := logging.ContextWithUserID(r.Context(), ids[1])
		useful, err := h.svc.Reputation.React(ctx, ids[0], ids[1], helpful)
		if err != nil {
			respondErr(w, r, err)
			return
		}
		respondOK(w, r, UsefulResponse{Useful: useful})
	}
}

// RemoveReaction handles DELETE on both reaction paths. A user holds one
// reaction per review, so either path removes it.
func (h *Handler) RemoveReaction(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "id", "userId")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	ctx := logging.ContextWithUserID(r.Context(), ids[1])
	useful, err := h.svc.Reputation.RemoveReaction(ctx, ids[0], ids[1])
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, UsefulResponse{Useful: useful})
}

func (h *Handler) reviewRoutes(r chi.Router) {
	r.Post("/", h.CreateReview)
	r.Put("/", h.UpdateReview)
	r.Get("/", h.ListReviews)
	r.Get("/{id}", h.GetReview)
	r.Delete("/{id}", h.DeleteReview)
	r.Put("/{id}/like/{userId}", h.react(true))
	r.Put("/{id}/dislike/{userId}", h.react(false))
	r.Delete("/{id}/like/{userId}", h.RemoveReaction)
	r.Delete("/{id}/dislike/{userId}", h.RemoveReaction)
}
