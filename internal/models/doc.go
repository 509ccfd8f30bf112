// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

/*
Package models defines the entities shared by the fact store, the engines and
the HTTP API.

Entities:
  - Film, with its MPA rating, genres, directors and derived like count
  - User
  - Review, with its derived usefulness score
  - Event, the immutable activity log entry
  - Genre, Mpa and Director lookup records

Field tags carry both the JSON wire names and the validation rules applied by
internal/validation. Derived fields (Film.Likes, Review.Useful) are never read
from requests; the store always computes them.

Dates without a time of day use Date, which serializes as "2006-01-02".
*/
package models
