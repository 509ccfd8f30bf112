// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

// Package social maintains directed friendship edges.
//
// Befriending is one-way: when A adds B, B's friend list is unchanged and
// no reciprocal edge is created. Common friends are the intersection of two
// users' outgoing edges.
package social

import (
	"context"
	"fmt"

	"github.com/tomtom215/filmgraph/internal/activity"
	"github.com/tomtom215/filmgraph/internal/metrics"
	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/ranking"
	"github.com/tomtom215/filmgraph/internal/validation"
)

// Store is the slice of the fact store the social engine uses.
type Store interface {
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	FriendIDs(ctx context.Context, userID int64) ([]int64, error)
	ListUsers(ctx context.Context, ids []int64) ([]models.User, error)
}

// Engine is the social graph service.
type Engine struct {
	store    Store
	recorder activity.Recorder
}

// New creates a social engine. rec may be nil to disable activity
// recording.
func New(st Store, rec activity.Recorder) *Engine {
	return &Engine{store: st, recorder: rec}
}

// AddFriend makes userID follow friendID. Both users must exist, a user
// cannot befriend themself and an existing edge is a conflict.
func (e *Engine) AddFriend(ctx context.Context, userID, friendID int64) (err error) {
	defer func() { observe("add_friend", err) }()

	if userID == friendID {
		return validation.NewError("friendId", "nefield", friendID, "user %d cannot befriend themself", userID)
	}
	if err := e.store.AddFriend(ctx, userID, friendID); err != nil {
		return fmt.Errorf("add friend %d -> %d: %w", userID, friendID, err)
	}

	activity.Emit(ctx, e.recorder, userID, models.EventFriend, models.OperationAdd, friendID)
	return nil
}

// RemoveFriend deletes the edge userID -> friendID. Both users must exist;
// removing an absent edge still succeeds and is recorded.
func (e *Engine) RemoveFriend(ctx context.Context, userID, friendID int64) (err error) {
	defer func() { observe("remove_friend", err) }()

	if err := e.store.RemoveFriend(ctx, userID, friendID); err != nil {
		return fmt.Errorf("remove friend %d -> %d: %w", userID, friendID, err)
	}

	activity.Emit(ctx, e.recorder, userID, models.EventFriend, models.OperationRemove, friendID)
	return nil
}

// FriendsOf returns the users userID follows, by ascending id.
func (e *Engine) FriendsOf(ctx context.Context, userID int64) (_ []models.User, err error) {
	defer func() { observe("friends_of", err) }()

	ids, err := e.store.FriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("friends of user %d: %w", userID, err)
	}
	return e.users(ctx, ids)
}

// CommonFriends returns the users followed by both userID and otherID.
func (e *Engine) CommonFriends(ctx context.Context, userID, otherID int64) (_ []models.User, err error) {
	defer func() { observe("common_friends", err) }()

	mine, err := e.store.FriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("friends of user %d: %w", userID, err)
	}
	theirs, err := e.store.FriendIDs(ctx, otherID)
	if err != nil {
		return nil, fmt.Errorf("friends of user %d: %w", otherID, err)
	}
	return e.users(ctx, ranking.Intersect(mine, theirs))
}

func (e *Engine) users(ctx context.Context, ids []int64) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	users, err := e.store.ListUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

func observe(op string, err error) {
	metrics.RecordEngineOperation("social", op, metrics.Outcome(err))
}
