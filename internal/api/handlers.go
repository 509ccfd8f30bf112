// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package api

import (
	"context"
	"time"

	"github.com/tomtom215/filmgraph/internal/activity"
	"github.com/tomtom215/filmgraph/internal/catalog"
	"github.com/tomtom215/filmgraph/internal/config"
	"github.com/tomtom215/filmgraph/internal/ranking"
	"github.com/tomtom215/filmgraph/internal/recommend"
	"github.com/tomtom215/filmgraph/internal/reputation"
	"github.com/tomtom215/filmgraph/internal/social"
)

// Pinger reports store reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services bundles the engines the handlers call.
type Services struct {
	Catalog    *catalog.Service
	Ranking    *ranking.Engine
	Recommend  *recommend.Engine
	Reputation *reputation.Engine
	Social     *social.Engine
	Activity   *activity.Log
	Store      Pinger
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files by resource:
//   - handlers_users.go: users, friendships, feed, recommendations
//   - handlers_films.go: films, likes and rankings
//   - handlers_reviews.go: reviews and reactions
//   - handlers_catalog.go: genres, MPA ratings and directors
//   - handlers_health.go: health check
type Handler struct {
	svc       Services
	cfg       config.APIConfig
	startTime time.Time
}

// NewHandler creates the API handler.
func NewHandler(svc Services, cfg config.APIConfig) *Handler {
	return &Handler{
		svc:       svc,
		cfg:       cfg,
		startTime: time.Now(),
	}
}
