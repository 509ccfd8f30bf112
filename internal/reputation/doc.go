// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

// Package reputation manages film reviews and their usefulness scores.
//
// Usefulness is a cached aggregate: the store recomputes it from the
// review's reaction set inside the same transaction that changes a
// reaction, so it always equals helpful minus unhelpful reactions. Update
// never touches it. Each user holds at most one reaction per review; a
// second reaction replaces the first.
//
// Review and reaction changes are recorded in the activity log after they
// commit. A failed log write does not fail the change.
package reputation
