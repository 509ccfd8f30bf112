// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

/*
Package metrics provides Prometheus metrics collection for filmgraph.

All collectors are registered on the default registry through promauto and
exposed at /metrics by the API router.

# Available Metrics

Store:
  - filmgraph_store_query_duration_seconds{backend,operation}
  - filmgraph_store_query_errors_total{backend,operation,error_type}

API:
  - filmgraph_api_requests_total{method,endpoint,status_code}
  - filmgraph_api_request_duration_seconds{method,endpoint}
  - filmgraph_api_active_requests

Engines:
  - filmgraph_engine_operations_total{engine,operation,outcome}
  - filmgraph_recommendations_served

Activity log:
  - filmgraph_activity_events_total{event_type,operation}
  - filmgraph_activity_event_failures_total{event_type}
*/
package metrics
