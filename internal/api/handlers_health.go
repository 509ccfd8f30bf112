// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/filmgraph/internal/logging"
)

// healthPingTimeout bounds the store ping of a health check.
const healthPingTimeout = 2 * time.Second

// HealthStatus is the body of /health.
type HealthStatus struct {
	Status   string  `json:"status"`
	Store    string  `json:"store"`
	Uptime   float64 `json:"uptime_seconds"`
	Failures string  `json:"error,omitempty"`
}

// Health reports liveness and store reachability. An unreachable store
// answers 503.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status: "healthy",
		Store:  "connected",
		Uptime: time.Since(h.startTime).Seconds(),
	}

	if h.svc.Store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := h.svc.Store.Ping(ctx); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check: store unreachable")
			status.Status = "degraded"
			status.Store = "disconnected"
			status.Failures = err.Error()
			respondData(w, r, http.StatusServiceUnavailable, status)
			return
		}
	}
	respondOK(w, r, status)
}
