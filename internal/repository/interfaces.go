package repository

import (
	"context"
	"time"

	"flowdeck/internal/domain"
)

// WorkItemRepo is the store adapter for work items (activities and
// sub-items). It is the only mutator of persisted items; scoring and
// ranking consume it read-only.
type WorkItemRepo interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	// ListActive returns the user's items in non-terminal statuses.
	ListActive(ctx context.Context, userID string) ([]*domain.WorkItem, error)
	// ListOverdue returns items with a due date strictly before the cutoff
	// and a non-terminal status, regardless of participant.
	ListOverdue(ctx context.Context, before time.Time) ([]*domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	Delete(ctx context.Context, id string) error
}

// CompletionMarkRepo is the store adapter for the daily completion ledger.
type CompletionMarkRepo interface {
	// Upsert creates the mark for (user, item, date) or overwrites the
	// existing one in place.
	Upsert(ctx context.Context, m *domain.DailyCompletionMark) error
	Get(ctx context.Context, userID, workItemID, date string) (*domain.DailyCompletionMark, error)
	ListForDay(ctx context.Context, userID, date string) ([]*domain.DailyCompletionMark, error)
}
