package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdeck/internal/domain"
)

func TestCompletionMarkRepo_UpsertTwiceLeavesOneRow(t *testing.T) {
	items, marks := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, items.Create(ctx, testItem("wi-1")))

	completedAt := time.Date(2025, 6, 10, 8, 30, 0, 0, time.UTC)
	require.NoError(t, marks.Upsert(ctx, &domain.DailyCompletionMark{
		UserID: "alice", WorkItemID: "wi-1", Date: "2025-06-10",
		Completed: true, CompletedAt: &completedAt,
	}))
	require.NoError(t, marks.Upsert(ctx, &domain.DailyCompletionMark{
		UserID: "alice", WorkItemID: "wi-1", Date: "2025-06-10",
		Completed: false,
	}))

	day, err := marks.ListForDay(ctx, "alice", "2025-06-10")
	require.NoError(t, err)
	require.Len(t, day, 1, "exactly one ledger row per (user, item, day)")
	assert.False(t, day[0].Completed)
	assert.Nil(t, day[0].CompletedAt)
}

func TestCompletionMarkRepo_NewDayStartsFresh(t *testing.T) {
	items, marks := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, items.Create(ctx, testItem("wi-1")))
	require.NoError(t, marks.Upsert(ctx, &domain.DailyCompletionMark{
		UserID: "alice", WorkItemID: "wi-1", Date: "2025-06-10", Completed: true,
	}))

	_, err := marks.Get(ctx, "alice", "wi-1", "2025-06-11")
	assert.ErrorIs(t, err, ErrNotFound, "marks never carry across days")

	prev, err := marks.Get(ctx, "alice", "wi-1", "2025-06-10")
	require.NoError(t, err)
	assert.True(t, prev.Completed)
}

func TestCompletionMarkRepo_ScopedToUser(t *testing.T) {
	items, marks := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, items.Create(ctx, testItem("wi-1")))
	require.NoError(t, marks.Upsert(ctx, &domain.DailyCompletionMark{
		UserID: "alice", WorkItemID: "wi-1", Date: "2025-06-10", Completed: true,
	}))

	day, err := marks.ListForDay(ctx, "bob", "2025-06-10")
	require.NoError(t, err)
	assert.Empty(t, day)
}
