package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flowdeck/internal/db"
	"flowdeck/internal/domain"
	"flowdeck/internal/repository"
)

type fixture struct {
	items      *repository.SQLiteWorkItemRepo
	marks      *repository.SQLiteCompletionMarkRepo
	uow        db.UnitOfWork
	workItems  WorkItemService
	completion CompletionService
	ranking    RankingService
	rescue     RescueService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	items := repository.NewSQLiteWorkItemRepo(database)
	marks := repository.NewSQLiteCompletionMarkRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	return &fixture{
		items:      items,
		marks:      marks,
		uow:        uow,
		workItems:  NewWorkItemService(items),
		completion: NewCompletionService(marks, items),
		ranking:    NewRankingService(items, marks, time.UTC),
		rescue:     NewRescueService(items, uow),
	}
}

func (f *fixture) mustCreate(t *testing.T, w *domain.WorkItem) *domain.WorkItem {
	t.Helper()
	if len(w.Participants) == 0 {
		w.Participants = []string{"alice"}
	}
	require.NoError(t, f.workItems.Create(context.Background(), w))
	return w
}
