// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package recommend

import "sort"

// NearestNeighbours returns the users sharing the most liked films with
// target, ascending, together with that overlap count. Every user tied at
// the maximum is returned. Users sharing nothing never qualify, so an empty
// result has overlap 0.
func NearestNeighbours(graph map[int64][]int64, target int64) ([]int64, int) {
	mine := graph[target]
	if len(mine) == 0 {
		return nil, 0
	}
	liked := make(map[int64]struct{}, len(mine))
	for _, id := range mine {
		liked[id] = struct{}{}
	}

	best := 0
	var neighbours []int64
	for userID, films := range graph {
		if userID == target {
			continue
		}
		overlap := 0
		for _, id := range films {
			if _, ok := liked[id]; ok {
				overlap++
			}
		}
		switch {
		case overlap == 0 || overlap < best:
			continue
		case overlap > best:
			best = overlap
			neighbours = neighbours[:0]
		}
		neighbours = append(neighbours, userID)
	}

	sort.Slice(neighbours, func(i, j int) bool { return neighbours[i] < neighbours[j] })
	return neighbours, best
}

// Candidates returns the distinct films liked by any neighbour and not by
// target, ascending.
func Candidates(graph map[int64][]int64, target int64, neighbours []int64) []int64 {
	liked := make(map[int64]struct{}, len(graph[target]))
	for _, id := range graph[target] {
		liked[id] = struct{}{}
	}

	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	for _, n := range neighbours {
		for _, id := range graph[n] {
			if _, mine := liked[id]; mine {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
