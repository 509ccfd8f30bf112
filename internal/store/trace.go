// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package store

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerID = "filmgraph-store"

// StartSpan starts a "Store/<op>" span on the global tracer. Backends call
// it at the top of every method and pass the returned end function the
// method's error.
func StartSpan(ctx context.Context, backend, op string) (context.Context, func(error)) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/"+op,
		trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attribute.String("db.system", backend))
	return ctx, func(err error) {
		// Caller errors are expected outcomes, not span failures.
		if err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrConflict) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
