// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package memory

import (
	"context"

	"github.com/tomtom215/filmgraph/internal/models"
)

// CreateUser inserts u and assigns its id.
func (s *Store) CreateUser(ctx context.Context, u *models.User) (err error) {
	end := span(ctx, "CreateUser")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUser++
	u.ID = s.nextUser
	s.users[u.ID] = *u
	return nil
}

// UpdateUser replaces an existing user.
func (s *Store) UpdateUser(ctx context.Context, u *models.User) (err error) {
	end := span(ctx, "UpdateUser")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser(u.ID); err != nil {
		return err
	}
	s.users[u.ID] = *u
	return nil
}

// GetUser returns a copy of the user.
func (s *Store) GetUser(ctx context.Context, id int64) (_ *models.User, err error) {
	end := span(ctx, "GetUser")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireUser(id); err != nil {
		return nil, err
	}
	u := s.users[id]
	return &u, nil
}

// ListUsers returns every user, or the existing subset of ids, ascending.
func (s *Store) ListUsers(ctx context.Context, ids []int64) (_ []models.User, err error) {
	end := span(ctx, "ListUsers")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var wanted map[int64]struct{}
	if ids != nil {
		wanted = make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			wanted[id] = struct{}{}
		}
	}

	out := make([]models.User, 0, len(s.users))
	for _, id := range sortedKeys(s.users) {
		if wanted != nil {
			if _, ok := wanted[id]; !ok {
				continue
			}
		}
		out = append(out, s.users[id])
	}
	return out, nil
}

// DeleteUser removes the user with all of its likes, friendships, reviews,
// reactions and events.
func (s *Store) DeleteUser(ctx context.Context, id int64) (err error) {
	end := span(ctx, "DeleteUser")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser(id); err != nil {
		return err
	}

	for _, users := range s.likes {
		delete(users, id)
	}

	delete(s.friends, id)
	for _, followed := range s.friends {
		delete(followed, id)
	}

	for reviewID, r := range s.reviews {
		if r.UserID == id {
			s.deleteReviewLocked(reviewID)
		}
	}
	for reviewID, byUser := range s.reactions {
		if _, ok := byUser[id]; ok {
			delete(byUser, id)
			s.recomputeLocked(reviewID)
		}
	}

	kept := s.events[:0]
	for _, e := range s.events {
		if e.UserID != id {
			kept = append(kept, e)
		}
	}
	s.events = kept

	delete(s.users, id)
	return nil
}
