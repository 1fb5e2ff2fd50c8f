package lifecycle

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler fires the escalation scan once per calendar day at local
// midnight. It is a self-perpetuating single-shot timer: after each firing
// it recomputes the duration to the next boundary, so drift from slow ticks
// does not accumulate the way a fixed-interval poll would.
type Scheduler struct {
	scanner *Scanner
	loc     *time.Location
	logger  *slog.Logger

	// now is injectable for tests.
	now func() time.Time
}

func NewScheduler(scanner *Scanner, loc *time.Location, logger *slog.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		scanner: scanner,
		loc:     loc,
		logger:  logger,
		now:     time.Now,
	}
}

// Run blocks until ctx is cancelled, firing a scan at each local midnight.
// Cancellation between firings stops the timer cleanly. A scan already in
// progress when shutdown is requested runs to completion: it executes under
// a context detached from ctx, so no item is abandoned mid-conversion.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		wait := NextBoundary(s.now(), s.loc)
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			s.fire(context.WithoutCancel(ctx))
		}
	}
}

func (s *Scheduler) fire(ctx context.Context) {
	now := s.now()
	summary, err := Scan(ctx, s.scanner, now)
	if err != nil {
		s.logger.Error("escalation scan failed", "error", err)
		return
	}
	s.logger.Info("escalation scan complete",
		"converted", summary.Converted,
		"failed", summary.Failed,
		"users_affected", len(summary.UsersAffected),
	)
}
