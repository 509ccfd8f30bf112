// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

/*
Package activity is the append-only activity log.

Every state-changing social action (likes, friendships, reviews and review
reactions) appends one immutable event carrying the actor, a category, an
operation and the id of the subject entity. Events are never updated or
deleted except when their actor is deleted.

Engines write through the Recorder interface using Emit, after their own
transaction has committed. Recording is best-effort: a failed append is
logged at warn level and counted in filmgraph_activity_event_failures_total,
and the mutation that triggered it still succeeds.

Usage:

	log := activity.New(store)
	activity.Emit(ctx, log, userID, models.EventFriend, models.OperationAdd, friendID)

	feed, err := log.FeedFor(ctx, userID)
*/
package activity
