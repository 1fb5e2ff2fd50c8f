package lifecycle

import (
	"context"
	"fmt"
	"time"

	"flowdeck/internal/domain"
	"flowdeck/internal/repository"
)

// ItemError records one item the scan could not convert.
type ItemError struct {
	WorkItemID string
	Err        error
}

// Summary reports the outcome of one escalation scan. Per-item failures are
// collected here instead of aborting the scan.
type Summary struct {
	ScannedAt     time.Time
	Converted     int
	Failed        int
	UsersAffected map[string]int // creator -> converted count
	Errors        []ItemError
}

// Scanner converts overdue sub-items into roadblocks. Both the midnight
// timer and the operator-invoked manual trigger run the same scan, so the
// idempotence guarantee holds on either path.
type Scanner struct {
	items repository.WorkItemRepo
	loc   *time.Location
}

func NewScanner(items repository.WorkItemRepo, loc *time.Location) *Scanner {
	if loc == nil {
		loc = time.Local
	}
	return &Scanner{items: items, loc: loc}
}

// Scan enumerates items whose due date lies strictly before the start of
// the current calendar day (whole-day grace) with a non-terminal status,
// and converts them to roadblocks. Running it twice against the same data
// converts nothing on the second pass: already-escalated roadblocks are
// skipped, so concurrent or repeated scans converge to the same end state.
func Scan(ctx context.Context, s *Scanner, now time.Time) (Summary, error) {
	summary := Summary{
		ScannedAt:     now,
		UsersAffected: make(map[string]int),
	}

	cutoff := StartOfDay(now, s.loc)
	overdue, err := s.items.ListOverdue(ctx, cutoff)
	if err != nil {
		return summary, fmt.Errorf("listing overdue items: %w", err)
	}

	for _, item := range overdue {
		if item.Kind == domain.KindRoadblock && item.EscalatedAt != nil {
			continue // already escalated
		}

		item.Kind = domain.KindRoadblock
		if item.Status != domain.StatusInProgress {
			item.Status = domain.StatusPending
		}
		if item.EscalatedAt == nil {
			escalated := now
			item.EscalatedAt = &escalated
		}
		item.UpdatedAt = now

		if err := s.items.Update(ctx, item); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, ItemError{WorkItemID: item.ID, Err: err})
			continue
		}
		summary.Converted++
		summary.UsersAffected[item.Creator()]++
	}

	return summary, nil
}
