package app

import (
	"context"

	"flowdeck/internal/domain"
)

// Ports exposed to the UI/API layer (itself out of scope). Services in
// internal/service implement these.

type RankingUseCase interface {
	Rank(ctx context.Context, req RankingRequest) (*RankingResponse, error)
}

type CompletionUseCase interface {
	Toggle(ctx context.Context, userID, workItemID, date string, completed bool) (*domain.DailyCompletionMark, error)
	MarksFor(ctx context.Context, userID, date string) ([]*domain.DailyCompletionMark, error)
}

type EscalationUseCase interface {
	TriggerScan(ctx context.Context) (*ScanResponse, error)
}

type RescueUseCase interface {
	Rescue(ctx context.Context, req RescueRequest) (*domain.WorkItem, error)
}
