// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/filmgraph/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses the default middleware config.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	// Applied to every route in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.CreateUser)
			r.Put("/", h.UpdateUser)
			r.Get("/", h.ListUsers)
			r.Get("/{id}", h.GetUser)
			r.Delete("/{id}", h.DeleteUser)
			r.Put("/{id}/friends/{friendId}", h.AddFriend)
			r.Delete("/{id}/friends/{friendId}", h.RemoveFriend)
			r.Get("/{id}/friends", h.Friends)
			r.Get("/{id}/friends/common/{otherId}", h.CommonFriends)
			r.Get("/{id}/feed", h.Feed)
			r.Get("/{id}/recommendations", h.Recommendations)
		})

		r.Route("/films", h.filmRoutes)
		r.Route("/reviews", h.reviewRoutes)

		r.Get("/genres", h.ListGenres)
		r.Get("/genres/{id}", h.GetGenre)
		r.Get("/mpa", h.ListMpa)
		r.Get("/mpa/{id}", h.GetMpa)

		r.Route("/directors", func(r chi.Router) {
			r.Post("/", h.CreateDirector)
			r.Put("/", h.UpdateDirector)
			r.Get("/", h.ListDirectors)
			r.Get("/{id}", h.GetDirector)
			r.Delete("/{id}", h.DeleteDirector)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, &APIError{Code: ErrCodeNotFound, Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, &APIError{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"})
	})

	return r
}
