package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"flowdeck/internal/app"
	"flowdeck/internal/domain"
	"flowdeck/internal/repository"
)

type workItemService struct {
	items repository.WorkItemRepo
}

func NewWorkItemService(items repository.WorkItemRepo) WorkItemService {
	return &workItemService{items: items}
}

func (s *workItemService) Create(ctx context.Context, w *domain.WorkItem) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	if w.Kind == "" {
		w.Kind = domain.KindTask
	}
	if w.Status == "" {
		w.Status = domain.StatusPending
	}
	if w.Priority == "" {
		w.Priority = domain.PriorityMedium
	}
	if err := validateItem(w); err != nil {
		return err
	}
	return s.items.Create(ctx, w)
}

func (s *workItemService) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *workItemService) ListActive(ctx context.Context, userID string) ([]*domain.WorkItem, error) {
	return s.items.ListActive(ctx, userID)
}

func (s *workItemService) Update(ctx context.Context, w *domain.WorkItem) error {
	if err := validateItem(w); err != nil {
		return err
	}
	w.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, w)
}

func (s *workItemService) MarkDone(ctx context.Context, id string) error {
	w, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	w.Status = domain.StatusCompleted
	w.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, w)
}

func (s *workItemService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

// validateItem enforces the structural invariants: known enum values, a
// non-empty participant list, and overrides keyed only by participants.
func validateItem(w *domain.WorkItem) error {
	if w.Title == "" {
		return app.NewValidationError("title", "must not be empty")
	}
	if !domain.ValidKinds[string(w.Kind)] {
		return app.NewValidationError("kind", "unknown kind "+string(w.Kind))
	}
	if !domain.ValidStatuses[string(w.Status)] {
		return app.NewValidationError("status", "unknown status "+string(w.Status))
	}
	if !domain.ValidPriorities[string(w.Priority)] {
		return app.NewValidationError("priority", "unknown priority "+string(w.Priority))
	}
	if len(w.Participants) == 0 {
		return app.NewValidationError("participants", "must include the creator")
	}
	present := make(map[string]bool, len(w.Participants))
	for _, p := range w.Participants {
		present[p] = true
	}
	for userID, k := range w.ParticipantKind {
		if !present[userID] {
			return app.NewValidationError("participantKind", "override for non-participant "+userID)
		}
		if !domain.ValidKinds[string(k)] {
			return app.NewValidationError("participantKind", "unknown kind "+string(k))
		}
	}
	return nil
}
