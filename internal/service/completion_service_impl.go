package service

import (
	"context"
	"time"

	"flowdeck/internal/app"
	"flowdeck/internal/domain"
	"flowdeck/internal/repository"
)

type completionService struct {
	marks    repository.CompletionMarkRepo
	items    repository.WorkItemRepo
	observer UseCaseObserver
	now      func() time.Time
}

func NewCompletionService(marks repository.CompletionMarkRepo, items repository.WorkItemRepo, observers ...UseCaseObserver) CompletionService {
	return &completionService{
		marks:    marks,
		items:    items,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// Toggle upserts the (user, item, day) mark. It never writes back to the
// item's permanent status; completing an item for good is a separate,
// explicit action.
func (s *completionService) Toggle(ctx context.Context, userID, workItemID, date string, completed bool) (mark *domain.DailyCompletionMark, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "completion_toggle", started, err, map[string]any{
			"user_id": userID, "work_item_id": workItemID, "completed": completed,
		})
	}()

	if userID == "" {
		return nil, app.NewValidationError("userId", "must not be empty")
	}
	if _, parseErr := time.Parse(domain.MarkDateLayout, date); parseErr != nil {
		return nil, app.NewValidationError("date", "must be formatted "+domain.MarkDateLayout)
	}
	// Reject marks against items that do not exist.
	if _, err = s.items.GetByID(ctx, workItemID); err != nil {
		return nil, err
	}

	mark = &domain.DailyCompletionMark{
		UserID:     userID,
		WorkItemID: workItemID,
		Date:       date,
		Completed:  completed,
	}
	if completed {
		completedAt := s.now().UTC()
		mark.CompletedAt = &completedAt
	}
	if err = s.marks.Upsert(ctx, mark); err != nil {
		return nil, err
	}
	return mark, nil
}

func (s *completionService) MarksFor(ctx context.Context, userID, date string) ([]*domain.DailyCompletionMark, error) {
	return s.marks.ListForDay(ctx, userID, date)
}
