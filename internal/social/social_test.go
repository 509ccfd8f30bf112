// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package social

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tomtom215/filmgraph/internal/activity"
	"github.com/tomtom215/filmgraph/internal/activity/mocks"
	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
	"github.com/tomtom215/filmgraph/internal/store/memory"
	"github.com/tomtom215/filmgraph/internal/store/storetest"
	"github.com/tomtom215/filmgraph/internal/validation"
)

func userIDs(users []models.User) []int64 {
	out := make([]int64, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestCommonFriendsScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	eng := New(st, nil)

	u1 := storetest.MustUser(t, st, "u1")
	u2 := storetest.MustUser(t, st, "u2")
	u3 := storetest.MustUser(t, st, "u3")
	u4 := storetest.MustUser(t, st, "u4")

	require.NoError(t, eng.AddFriend(ctx, u1.ID, u2.ID))
	require.NoError(t, eng.AddFriend(ctx, u1.ID, u3.ID))
	require.NoError(t, eng.AddFriend(ctx, u4.ID, u2.ID))

	common, err := eng.CommonFriends(ctx, u1.ID, u4.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{u2.ID}, userIDs(common))
	assert.Equal(t, "u2", common[0].Login)
}

func TestFriendshipIsDirected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	eng := New(st, nil)

	a := storetest.MustUser(t, st, "a")
	b := storetest.MustUser(t, st, "b")
	require.NoError(t, eng.AddFriend(ctx, a.ID, b.ID))

	friends, err := eng.FriendsOf(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, userIDs(friends))

	friends, err = eng.FriendsOf(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	require.NoError(t, eng.RemoveFriend(ctx, a.ID, b.ID))
	require.NoError(t, eng.RemoveFriend(ctx, a.ID, b.ID), "removing an absent edge is a no-op")

	friends, err = eng.FriendsOf(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestFriendErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	eng := New(st, nil)

	a := storetest.MustUser(t, st, "a")
	b := storetest.MustUser(t, st, "b")
	require.NoError(t, eng.AddFriend(ctx, a.ID, b.ID))

	tests := []struct {
		name  string
		run   func() error
		errIs error
	}{
		{"self", func() error { return eng.AddFriend(ctx, a.ID, a.ID) }, validation.ErrValidation},
		{"duplicate", func() error { return eng.AddFriend(ctx, a.ID, b.ID) }, store.ErrConflict},
		{"unknown friend", func() error { return eng.AddFriend(ctx, a.ID, 999) }, store.ErrNotFound},
		{"unknown user", func() error { return eng.AddFriend(ctx, 999, a.ID) }, store.ErrNotFound},
		{"remove unknown", func() error { return eng.RemoveFriend(ctx, a.ID, 999) }, store.ErrNotFound},
		{"friends of unknown", func() error { _, err := eng.FriendsOf(ctx, 999); return err }, store.ErrNotFound},
		{"common with unknown", func() error { _, err := eng.CommonFriends(ctx, a.ID, 999); return err }, store.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.errIs)
		})
	}
}

func TestFriendEventsRecorded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	log := activity.New(st)
	eng := New(st, log)

	a := storetest.MustUser(t, st, "a")
	b := storetest.MustUser(t, st, "b")
	require.NoError(t, eng.AddFriend(ctx, a.ID, b.ID))
	require.NoError(t, eng.RemoveFriend(ctx, a.ID, b.ID))
	assert.Error(t, eng.AddFriend(ctx, a.ID, a.ID))

	feed, err := log.FeedFor(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, models.OperationAdd, feed[0].Operation)
	assert.Equal(t, models.OperationRemove, feed[1].Operation)
	for _, e := range feed {
		assert.Equal(t, models.EventFriend, e.Category)
		assert.Equal(t, b.ID, e.EntityID)
	}

	other, err := log.FeedFor(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAddFriendSurvivesRecorderFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	a := storetest.MustUser(t, st, "a")
	b := storetest.MustUser(t, st, "b")

	ctrl := gomock.NewController(t)
	rec := mocks.NewMockRecorder(ctrl)
	rec.EXPECT().
		Record(gomock.Any(), a.ID, models.EventFriend, models.OperationAdd, b.ID).
		Return(errors.New("timeout"))

	require.NoError(t, New(st, rec).AddFriend(ctx, a.ID, b.ID))

	ids, err := st.FriendIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID}, ids)
}
