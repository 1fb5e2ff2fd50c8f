package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flowdeck/internal/app"
	"flowdeck/internal/db"
	"flowdeck/internal/domain"
	"flowdeck/internal/repository"
)

type rescueService struct {
	items    repository.WorkItemRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewRescueService(items repository.WorkItemRepo, uow db.UnitOfWork, observers ...UseCaseObserver) RescueService {
	return &rescueService{
		items:    items,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// Rescue resolves a roadblock and spawns a new high-priority remediation
// item in the same dossier. Both effects run inside one transaction; the
// create happens before the resolve, so even a torn run could only leave an
// unresolved roadblock next to a rescue candidate, a state that is
// detectable and reconcilable.
func (s *rescueService) Rescue(ctx context.Context, req app.RescueRequest) (newItem *domain.WorkItem, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "rescue", started, err, map[string]any{"work_item_id": req.WorkItemID})
	}()

	now := s.now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	if err = validateRescue(req, now); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteWorkItemRepo(tx)

		// Precondition re-check inside the transaction: a racing caller may
		// have resolved the item since validation.
		target, err := txItems.GetByID(ctx, req.WorkItemID)
		if err != nil {
			return err
		}
		if !isRoadblock(target) {
			return app.NewValidationError("workItemId", "item is not a roadblock")
		}
		if target.Status == domain.StatusResolved {
			return fmt.Errorf("work item %s already resolved: %w", target.ID, repository.ErrConflict)
		}

		deadline := req.NewDeadline
		newItem = &domain.WorkItem{
			ID:             uuid.New().String(),
			Title:          "Rescue: " + target.Title,
			Description:    req.ProposedResolution,
			Kind:           domain.KindTask,
			Status:         domain.StatusPending,
			Priority:       elevate(target.Priority),
			DueDate:        &deadline,
			LinkedParentID: target.LinkedParentID,
			Participants:   append([]string(nil), target.Participants...),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := txItems.Create(ctx, newItem); err != nil {
			return err
		}

		target.Status = domain.StatusResolved
		target.RootCause = &domain.RootCause{
			Category: req.Category,
			Factor:   req.Factor,
			Severity: req.Severity,
		}
		target.UpdatedAt = now
		return txItems.Update(ctx, target)
	})
	if err != nil {
		return nil, err
	}
	return newItem, nil
}

func validateRescue(req app.RescueRequest, now time.Time) error {
	if req.WorkItemID == "" {
		return app.NewValidationError("workItemId", "must not be empty")
	}
	if !domain.ValidCauseCategory(req.Category) {
		return app.NewValidationError("rootCauseCategory", "unknown category "+string(req.Category))
	}
	if !domain.ValidCauseFactor(req.Category, req.Factor) {
		return app.NewValidationError("rootCauseFactor",
			fmt.Sprintf("%q does not belong to category %s", req.Factor, req.Category))
	}
	if req.Severity != "" && !domain.ValidSeverities[string(req.Severity)] {
		return app.NewValidationError("severity", "unknown severity "+string(req.Severity))
	}
	if req.NewDeadline.IsZero() {
		return app.NewValidationError("newDeadline", "must be set")
	}
	if req.NewDeadline.Before(now) {
		return app.NewValidationError("newDeadline", "must be a future-or-present instant")
	}
	return nil
}

// isRoadblock reports whether the item is a roadblock for any participant:
// its own kind or any per-participant override.
func isRoadblock(w *domain.WorkItem) bool {
	if w.Kind == domain.KindRoadblock {
		return true
	}
	for _, k := range w.ParticipantKind {
		if k == domain.KindRoadblock {
			return true
		}
	}
	return false
}

// elevate returns high priority, or urgent when the roadblock already was.
func elevate(p domain.Priority) domain.Priority {
	if p == domain.PriorityUrgent {
		return domain.PriorityUrgent
	}
	return domain.PriorityHigh
}
