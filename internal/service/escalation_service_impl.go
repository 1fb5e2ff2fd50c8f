package service

import (
	"context"
	"time"

	"flowdeck/internal/app"
	"flowdeck/internal/lifecycle"
)

type escalationService struct {
	scanner  *lifecycle.Scanner
	observer UseCaseObserver
	now      func() time.Time
}

// NewEscalationService exposes the escalation scan as an operator-invoked
// use case. It runs the identical scan function the midnight scheduler
// runs, for recovery after downtime or for testing.
func NewEscalationService(scanner *lifecycle.Scanner, observers ...UseCaseObserver) EscalationService {
	return &escalationService{
		scanner:  scanner,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *escalationService) TriggerScan(ctx context.Context) (resp *app.ScanResponse, err error) {
	started := s.now()
	defer func() {
		fields := map[string]any{}
		if resp != nil {
			fields["converted"] = resp.Converted
			fields["failed"] = resp.Failed
		}
		observe(ctx, s.observer, "escalation_scan", started, err, fields)
	}()

	summary, err := lifecycle.Scan(ctx, s.scanner, s.now().UTC())
	if err != nil {
		return nil, err
	}
	return &app.ScanResponse{
		ScannedAt:     summary.ScannedAt,
		Converted:     summary.Converted,
		Failed:        summary.Failed,
		UsersAffected: summary.UsersAffected,
	}, nil
}
