// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package api

import (
	"net/http"

	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/models"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := decodeJSON(r, &u); err != nil {
		respondErr(w, r, err)
		return
	}
	created, err := h.svc.Catalog.CreateUser(r.Context(), &u)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondData(w, r, http.StatusCreated, created)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := decodeJSON(r, &u); err != nil {
		respondErr(w, r, err)
		return
	}
	updated, err := h.svc.Catalog.UpdateUser(r.Context(), &u)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, updated)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Catalog.ListUsers(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	u, err := h.svc.Catalog.GetUser(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, u)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	if err := h.svc.Catalog.DeleteUser(r.Context(), id); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddFriend handles PUT /users/{id}/friends/{friendId}.
func (h *Handler) AddFriend(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "id", "friendId")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	ctx := logging.ContextWithUserID(r.Context(), ids[0])
	if err := h.svc.Social.AddFriend(ctx, ids[0], ids[1]); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFriend handles DELETE /users/{id}/friends/{friendId}.
func (h *Handler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "id", "friendId")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	ctx := logging.ContextWithUserID(r.Context(), ids[0])
	if err := h.svc.Social.RemoveFriend(ctx, ids[0], ids[1]); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Friends(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	friends, err := h.svc.Social.FriendsOf(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, friends)
}

// CommonFriends handles GET /users/{id}/friends/common/{otherId}.
func (h *Handler) CommonFriends(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "id", "otherId")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	common, err := h.svc.Social.CommonFriends(r.Context(), ids[0], ids[1])
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, common)
}

// Feed handles GET /users/{id}/feed.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	events, err := h.svc.Activity.FeedFor(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, events)
}

// Recommendations handles GET /users/{id}/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, r, err)
		return
	}
	films, err := h.svc.Recommend.Recommend(r.Context(), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, r, films)
}
