// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package memory

import (
	"context"

	"github.com/tomtom215/filmgraph/internal/models"
)

// AppendEvent appends e and assigns its id.
func (s *Store) AppendEvent(ctx context.Context, e *models.Event) (err error) {
	end := span(ctx, "AppendEvent")
	defer func() { end(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser(e.UserID); err != nil {
		return err
	}
	s.nextEvent++
	e.ID = s.nextEvent
	s.events = append(s.events, *e)
	return nil
}

// ListEvents returns the actor's events oldest first.
func (s *Store) ListEvents(ctx context.Context, userID int64) (_ []models.Event, err error) {
	end := span(ctx, "ListEvents")
	defer func() { end(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	out := make([]models.Event, 0)
	for _, e := range s.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
