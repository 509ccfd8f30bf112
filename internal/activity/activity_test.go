// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package activity

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tomtom215/filmgraph/internal/activity/mocks"
	"github.com/tomtom215/filmgraph/internal/logging"
	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/store"
	"github.com/tomtom215/filmgraph/internal/store/memory"
	"github.com/tomtom215/filmgraph/internal/store/storetest"
	"github.com/tomtom215/filmgraph/internal/validation"
)

func TestRecordAndFeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	u := storetest.MustUser(t, st, "alice")

	log := New(st)
	fixed := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	log.now = func() time.Time { return fixed }

	require.NoError(t, log.Record(ctx, u.ID, models.EventFriend, models.OperationAdd, 7))
	require.NoError(t, log.Record(ctx, u.ID, models.EventReview, models.OperationRemove, 3))

	feed, err := log.FeedFor(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	assert.Equal(t, models.EventFriend, feed[0].Category)
	assert.Equal(t, models.OperationAdd, feed[0].Operation)
	assert.Equal(t, int64(7), feed[0].EntityID)
	assert.Equal(t, fixed.UnixMilli(), feed[0].Timestamp)
	assert.Equal(t, models.EventReview, feed[1].Category)
	assert.Less(t, feed[0].ID, feed[1].ID)
}

func TestRecordRejectsUnknownKinds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	u := storetest.MustUser(t, st, "bob")
	log := New(st)

	tests := []struct {
		name     string
		category models.EventCategory
		op       models.EventOperation
	}{
		{"unknown category", "RATING", models.OperationAdd},
		{"unknown operation", models.EventLike, "TOUCH"},
		{"empty category", "", models.OperationAdd},
	}
	for _, tt := range tests {
		err := log.Record(ctx, u.ID, tt.category, tt.op, 1)
		assert.ErrorIs(t, err, validation.ErrValidation, tt.name)
	}

	feed, err := log.FeedFor(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestRecordMissingActor(t *testing.T) {
	t.Parallel()
	log := New(memory.New())

	err := log.Record(context.Background(), 42, models.EventLike, models.OperationAdd, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = log.FeedFor(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEmitSwallowsFailures(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockRecorder(ctrl)

	rec.EXPECT().
		Record(gomock.Any(), int64(1), models.EventLike, models.OperationAdd, int64(9)).
		Return(errors.New("disk full"))
	rec.EXPECT().
		Record(gomock.Any(), int64(1), models.EventLike, models.OperationRemove, int64(9)).
		Return(nil)

	// Emit has no return value; the test passes when both calls happen
	// and nothing panics.
	Emit(context.Background(), rec, 1, models.EventLike, models.OperationAdd, 9)
	Emit(context.Background(), rec, 1, models.EventLike, models.OperationRemove, 9)
}

func TestEmitLogsFailureWithActor(t *testing.T) {
	var buf bytes.Buffer
	previous := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(previous) })

	ctrl := gomock.NewController(t)
	rec := mocks.NewMockRecorder(ctrl)
	rec.EXPECT().
		Record(gomock.Any(), int64(5), models.EventReview, models.OperationUpdate, int64(3)).
		Return(errors.New("disk full"))

	Emit(context.Background(), rec, 5, models.EventReview, models.OperationUpdate, 3)

	out := buf.String()
	assert.Contains(t, out, "Activity event not recorded")
	assert.Contains(t, out, `"user_id":5`)
	assert.Contains(t, out, "disk full")
}

func TestEmitNilRecorder(t *testing.T) {
	t.Parallel()
	Emit(context.Background(), nil, 1, models.EventFriend, models.OperationAdd, 2)
}
