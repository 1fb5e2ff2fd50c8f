package service

import (
	"context"

	"flowdeck/internal/app"
	"flowdeck/internal/domain"
)

type WorkItemService interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	ListActive(ctx context.Context, userID string) ([]*domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type CompletionService interface {
	Toggle(ctx context.Context, userID, workItemID, date string, completed bool) (*domain.DailyCompletionMark, error)
	MarksFor(ctx context.Context, userID, date string) ([]*domain.DailyCompletionMark, error)
}

type RankingService interface {
	Rank(ctx context.Context, req app.RankingRequest) (*app.RankingResponse, error)
}

type EscalationService interface {
	TriggerScan(ctx context.Context) (*app.ScanResponse, error)
}

type RescueService interface {
	Rescue(ctx context.Context, req app.RescueRequest) (*domain.WorkItem, error)
}
