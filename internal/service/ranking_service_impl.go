package service

import (
	"context"
	"fmt"
	"time"

	"flowdeck/internal/app"
	"flowdeck/internal/domain"
	"flowdeck/internal/repository"
	"flowdeck/internal/scoring"
)

type rankingService struct {
	items    repository.WorkItemRepo
	marks    repository.CompletionMarkRepo
	weights  scoring.Weights
	loc      *time.Location
	observer UseCaseObserver

	// now is injectable for tests.
	now func() time.Time
}

// NewRankingService builds the ranking presenter. loc fixes the calendar
// day the completion-mark lookup and the wall-clock context factor are
// computed in; it must match the zone the ledger writes its dates in.
func NewRankingService(items repository.WorkItemRepo, marks repository.CompletionMarkRepo, loc *time.Location, observers ...UseCaseObserver) RankingService {
	if loc == nil {
		loc = time.Local
	}
	return &rankingService{
		items:    items,
		marks:    marks,
		weights:  scoring.DefaultWeights(),
		loc:      loc,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// Rank recomputes the full ranking on every call: scores depend on the
// clock and on today's completion marks, so nothing is cached between
// requests. Read-only.
func (s *rankingService) Rank(ctx context.Context, req app.RankingRequest) (resp *app.RankingResponse, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "ranking", started, err, map[string]any{"user_id": req.UserID})
	}()

	if req.UserID == "" {
		return nil, app.NewValidationError("userId", "must not be empty")
	}

	now := s.now().In(s.loc)
	if req.Now != nil {
		now = *req.Now
	}
	topN := boundOrDefault(req.TopN, app.DefaultTopN)
	quickWinMax := boundOrDefault(req.QuickWinMax, app.DefaultQuickWinMax)
	slotCap := boundOrDefault(req.SlotCap, app.DefaultSlotCap)

	active, err := s.items.ListActive(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading active items: %w", err)
	}

	doneToday, err := s.doneTodaySet(ctx, req.UserID, now)
	if err != nil {
		return nil, err
	}

	var candidates []domain.WorkItem
	suppressed := 0
	for _, item := range active {
		if doneToday[item.ID] {
			suppressed++
			continue
		}
		candidates = append(candidates, *item)
	}

	ranked := scoring.Rank(candidates, now, s.weights)

	resp = &app.RankingResponse{
		GeneratedAt: now,
		DoneToday:   suppressed,
	}
	resp.Counts.TotalActive = len(ranked)

	for _, sc := range ranked {
		entry := toRankedItem(sc)

		if len(resp.TopPriority) < topN {
			resp.TopPriority = append(resp.TopPriority, entry)
		}

		if sc.Item.EffectiveKind(req.UserID) == domain.KindQuickWin {
			resp.Counts.QuickWins++
			if len(resp.QuickWins) < quickWinMax {
				resp.QuickWins = append(resp.QuickWins, entry)
			}
		}

		switch sc.Score.TimeSlot {
		case domain.SlotMorning:
			resp.Counts.Morning++
			if len(resp.TimeSlots.Morning) < slotCap {
				resp.TimeSlots.Morning = append(resp.TimeSlots.Morning, entry)
			}
		case domain.SlotAfternoon:
			resp.Counts.Afternoon++
			if len(resp.TimeSlots.Afternoon) < slotCap {
				resp.TimeSlots.Afternoon = append(resp.TimeSlots.Afternoon, entry)
			}
		case domain.SlotEvening:
			resp.Counts.Evening++
			if len(resp.TimeSlots.Evening) < slotCap {
				resp.TimeSlots.Evening = append(resp.TimeSlots.Evening, entry)
			}
		default:
			resp.Counts.Flexible++
		}
	}

	return resp, nil
}

func (s *rankingService) doneTodaySet(ctx context.Context, userID string, now time.Time) (map[string]bool, error) {
	marks, err := s.marks.ListForDay(ctx, userID, now.Format(domain.MarkDateLayout))
	if err != nil {
		return nil, fmt.Errorf("loading completion marks: %w", err)
	}
	done := make(map[string]bool, len(marks))
	for _, m := range marks {
		if m.Completed {
			done[m.WorkItemID] = true
		}
	}
	return done, nil
}

func toRankedItem(sc scoring.ScoredItem) app.RankedItem {
	return app.RankedItem{
		WorkItemID:   sc.Item.ID,
		Title:        sc.Item.Title,
		Kind:         sc.Item.Kind,
		Status:       sc.Item.Status,
		Priority:     sc.Item.Priority,
		DueDate:      sc.Item.DueDate,
		EstimatedMin: sc.Item.EstimatedMin,
		Score:        sc.Score.Score,
		Factors:      sc.Score.Factors,
		Quadrant:     sc.Score.Quadrant,
		TimeSlot:     sc.Score.TimeSlot,
	}
}

func boundOrDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
