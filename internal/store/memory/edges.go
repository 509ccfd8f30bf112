// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package memory

import (
	"context"
	"sort"

	"github.com/tomtom215/filmgraph/internal/store"
)

// AddLike records that userID likes filmID.
func (s *Store) AddLike(ctx context.Context, filmID, userID int64) (err error) {
	end := span(ctx, "AddLike")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFilm(filmID); err != nil {
		return err
	}
	if err := s.requireUser(userID); err != nil {
		return err
	}
	users, ok := s.likes[filmID]
	if !ok {
		users = make(map[int64]struct{})
		s.likes[filmID] = users
	}
	if _, dup := users[userID]; dup {
		return store.Conflictf("user %d already likes film %d", userID, filmID)
	}
	users[userID] = struct{}{}
	return nil
}

// RemoveLike deletes the like if present.
func (s *Store) RemoveLike(ctx context.Context, filmID, userID int64) (err error) {
	end := span(ctx, "RemoveLike")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFilm(filmID); err != nil {
		return err
	}
	if err := s.requireUser(userID); err != nil {
		return err
	}
	delete(s.likes[filmID], userID)
	return nil
}

// LikedFilms returns the ids of films the user likes, ascending.
func (s *Store) LikedFilms(ctx context.Context, userID int64) (_ []int64, err error) {
	end := span(ctx, "LikedFilms")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	out := []int64{}
	for _, filmID := range sortedKeys(s.likes) {
		if _, ok := s.likes[filmID][userID]; ok {
			out = append(out, filmID)
		}
	}
	return out, nil
}

// LikeGraph returns every like edge grouped by user.
func (s *Store) LikeGraph(ctx context.Context) (_ map[int64][]int64, err error) {
	end := span(ctx, "LikeGraph")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	graph := make(map[int64][]int64)
	for _, filmID := range sortedKeys(s.likes) {
		for userID := range s.likes[filmID] {
			graph[userID] = append(graph[userID], filmID)
		}
	}
	return graph, nil
}

// AddFriend creates the directed edge userID -> friendID.
func (s *Store) AddFriend(ctx context.Context, userID, friendID int64) (err error) {
	end := span(ctx, "AddFriend")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser(userID); err != nil {
		return err
	}
	if err := s.requireUser(friendID); err != nil {
		return err
	}
	followed, ok := s.friends[userID]
	if !ok {
		followed = make(map[int64]struct{})
		s.friends[userID] = followed
	}
	if _, dup := followed[friendID]; dup {
		return store.Conflictf("user %d already follows user %d", userID, friendID)
	}
	followed[friendID] = struct{}{}
	return nil
}

// RemoveFriend deletes the directed edge userID -> friendID if present.
func (s *Store) RemoveFriend(ctx context.Context, userID, friendID int64) (err error) {
	end := span(ctx, "RemoveFriend")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser(userID); err != nil {
		return err
	}
	if err := s.requireUser(friendID); err != nil {
		return err
	}
	delete(s.friends[userID], friendID)
	return nil
}

// FriendIDs returns the users userID follows, ascending.
func (s *Store) FriendIDs(ctx context.Context, userID int64) (_ []int64, err error) {
	end := span(ctx, "FriendIDs")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(s.friends[userID]))
	for id := range s.friends[userID] {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
