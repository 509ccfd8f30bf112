// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

/*
Package recommend suggests films using user-based collaborative filtering
over the like graph.

# Algorithm

For a target user U:

 1. For every other user V, count the films both U and V like.
 2. Take the largest count. Only positive counts participate.
 3. Select every user whose count equals that maximum. Ties are all kept,
    so several equally similar users contribute together.
 4. Recommend every film liked by a selected user that U has not liked.

If U likes nothing, or nobody shares a liked film with U, the result is
empty. That is a normal outcome, not an error.

Results carry no duplicates and never include a film U already likes. They
are ordered by popularity (like count descending, then film id) so repeated
calls return the same order.

# Concurrency

The engine reads the full like graph through the fact store on each call
and keeps no model between calls. Concurrent likes may or may not be
visible to a running recommendation; the store's read consistency applies.
*/
package recommend
