package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flowdeck/internal/db"
	"flowdeck/internal/domain"
)

func newTestDB(t *testing.T) *SQLiteWorkItemRepo {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLiteWorkItemRepo(database)
}

func newTestRepos(t *testing.T) (*SQLiteWorkItemRepo, *SQLiteCompletionMarkRepo) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLiteWorkItemRepo(database), NewSQLiteCompletionMarkRepo(database)
}

func testItem(id string) *domain.WorkItem {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &domain.WorkItem{
		ID:           id,
		Title:        "Test item " + id,
		Kind:         domain.KindTask,
		Status:       domain.StatusPending,
		Priority:     domain.PriorityMedium,
		Participants: []string{"alice"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
