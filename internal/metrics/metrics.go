// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/filmgraph/internal/store"
	"github.com/tomtom215/filmgraph/internal/validation"
)

var (
	// Store Metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filmgraph_store_query_duration_seconds",
			Help:    "Duration of fact store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmgraph_store_query_errors_total",
			Help: "Total number of failed fact store operations",
		},
		[]string{"backend", "operation", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmgraph_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filmgraph_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmgraph_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Engine Metrics
	EngineOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmgraph_engine_operations_total",
			Help: "Total number of engine operations by outcome",
		},
		[]string{"engine", "operation", "outcome"},
	)

	RecommendationsServed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "filmgraph_recommendations_served",
			Help:    "Number of films returned per recommendation request",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	// Activity Log Metrics
	ActivityEventsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmgraph_activity_events_total",
			Help: "Total number of activity events appended to the log",
		},
		[]string{"event_type", "operation"},
	)

	ActivityEventFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmgraph_activity_event_failures_total",
			Help: "Total number of activity events that could not be recorded",
		},
		[]string{"event_type"},
	)
)

// RecordStoreQuery records a fact store operation. errorType is empty on success.
func RecordStoreQuery(backend, operation string, duration time.Duration, errorType string) {
	StoreQueryDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if errorType != "" {
		StoreQueryErrors.WithLabelValues(backend, operation, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordEngineOperation counts an engine call. outcome is "ok" or an error kind.
func RecordEngineOperation(engine, operation, outcome string) {
	EngineOperations.WithLabelValues(engine, operation, outcome).Inc()
}

// Outcome maps an engine error to the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, validation.ErrValidation):
		return "validation"
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	case errors.Is(err, store.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

// RecordRecommendations observes the size of a recommendation result.
func RecordRecommendations(count int) {
	RecommendationsServed.Observe(float64(count))
}

// RecordActivityEvent counts an appended activity event.
func RecordActivityEvent(eventType, operation string) {
	ActivityEventsRecorded.WithLabelValues(eventType, operation).Inc()
}

// RecordActivityFailure counts an activity event that was dropped.
func RecordActivityFailure(eventType string) {
	ActivityEventFailures.WithLabelValues(eventType).Inc()
}
