// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

// Package ranking orders films by popularity.
//
// Popularity is the number of distinct users liking a film, read from the
// fact store on every call. Equal like counts are broken by ascending film
// id everywhere a popularity order is produced (popular, common, director
// and search results, and recommendations).
package ranking
