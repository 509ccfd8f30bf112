// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package catalog

import (
	"context"
	"fmt"

	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/validation"
)

// CreateUser registers a user. A blank name defaults to the login.
func (s *Service) CreateUser(ctx context.Context, u *models.User) (_ *models.User, err error) {
	defer func() { observe("create_user", err) }()

	if verr := validation.ValidateStruct(u); verr != nil {
		return nil, verr
	}
	created := *u
	created.ID = 0
	created.Normalize()
	if err := s.store.CreateUser(ctx, &created); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &created, nil
}

// UpdateUser replaces an existing user.
func (s *Service) UpdateUser(ctx context.Context, u *models.User) (_ *models.User, err error) {
	defer func() { observe("update_user", err) }()

	if u.ID <= 0 {
		return nil, validation.NewError("id", "gt", u.ID, "id must be greater than 0")
	}
	if verr := validation.ValidateStruct(u); verr != nil {
		return nil, verr
	}
	updated := *u
	updated.Normalize()
	if err := s.store.UpdateUser(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update user %d: %w", u.ID, err)
	}
	return &updated, nil
}

// GetUser returns one user.
func (s *Service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	return u, nil
}

// ListUsers returns every user by ascending id.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user with all their likes, friendships, reviews,
// reactions and events.
func (s *Service) DeleteUser(ctx context.Context, id int64) (err error) {
	defer func() { observe("delete_user", err) }()

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
