// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: reuses or generates an X-Request-ID and stores it in the
    context so every log line of the request carries request_id.
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern.

Both follow the func(http.Handler) http.Handler shape so they plug into
chi's r.Use directly:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
