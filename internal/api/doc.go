// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

/*
Package api is the HTTP layer of Filmgraph.

It decodes JSON requests with goccy/go-json, calls the engines and maps
their errors onto status codes:

	validation.ErrValidation  400 VALIDATION_ERROR
	store.ErrNotFound         404 NOT_FOUND
	store.ErrConflict         409 CONFLICT
	anything else             500 INTERNAL_ERROR

Every body uses the APIResponse envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "request_id": "..."}
	}

Routing uses chi with go-chi/cors, a per-IP go-chi/httprate limiter,
request ids and Prometheus instrumentation. /health and /metrics sit
outside the rate limiter.
*/
package api
