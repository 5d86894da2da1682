package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanzicards/hanzicards-backend/internal/models"
)

func record(t *testing.T, r Recorder, userID int64, level int) {
	t.Helper()
	require.NoError(t, r.Record(context.Background(), models.ReviewEvent{
		EventID:    fmt.Sprintf("ev-%d-%d", userID, level),
		UserID:     userID,
		CardID:     1,
		Level:      level,
		ReviewedAt: time.Now(),
	}))
}

func TestMemoryRecorderNewestFirst(t *testing.T) {
	r := NewMemoryRecorder()
	ctx := context.Background()

	for level := 1; level <= 3; level++ {
		record(t, r, 1, level)
	}
	record(t, r, 2, 9)

	events, total, err := r.List(ctx, 1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, events, 3)
	assert.Equal(t, 3, events[0].Level)
	assert.Equal(t, 1, events[2].Level)
}

func TestMemoryRecorderPagination(t *testing.T) {
	r := NewMemoryRecorder()
	ctx := context.Background()

	for level := 1; level <= 5; level++ {
		record(t, r, 1, level)
	}

	events, total, err := r.List(ctx, 1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, events, 2)
	assert.Equal(t, 3, events[0].Level)
	assert.Equal(t, 2, events[1].Level)

	// Skip past the end returns empty, not an error.
	events, total, err = r.List(ctx, 1, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, events)
}

func TestMemoryRecorderClearIsPerUser(t *testing.T) {
	r := NewMemoryRecorder()
	ctx := context.Background()

	record(t, r, 1, 1)
	record(t, r, 2, 1)

	require.NoError(t, r.Clear(ctx, 1))

	_, total, err := r.List(ctx, 1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	_, total, err = r.List(ctx, 2, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestNopRecorder(t *testing.T) {
	r := Nop{}
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, models.ReviewEvent{UserID: 1}))
	events, total, err := r.List(ctx, 1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, events)
	require.NoError(t, r.Clear(ctx, 1))
}
