package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdeck/internal/app"
	"flowdeck/internal/domain"
)

func TestRank_UrgentOverdueItemTopsTheList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	anHourAgo := now.Add(-1 * time.Hour)

	f.mustCreate(t, &domain.WorkItem{
		ID: "wi-a", Title: "Ship incident report",
		Priority: domain.PriorityUrgent, DueDate: &anHourAgo,
	})
	f.mustCreate(t, &domain.WorkItem{
		ID: "wi-b", Title: "Reorder stationery",
		Priority: domain.PriorityLow,
	})

	resp, err := f.ranking.Rank(ctx, app.RankingRequest{UserID: "alice", Now: &now})
	require.NoError(t, err)
	require.NotEmpty(t, resp.TopPriority)
	assert.Equal(t, "wi-a", resp.TopPriority[0].WorkItemID)
	assert.Equal(t, domain.QuadrantDoFirst, resp.TopPriority[0].Quadrant)
	assert.Equal(t, 1.0, resp.TopPriority[0].Factors.Urgency)
}

func TestRank_QuickWinsUseEffectiveKind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	// Globally a quick win.
	f.mustCreate(t, &domain.WorkItem{
		ID: "wi-global", Title: "Rename config key",
		Kind: domain.KindQuickWin, Priority: domain.PriorityLow, EstimatedMin: 10,
	})
	// A task for its creator, a quick win for alice via override.
	f.mustCreate(t, &domain.WorkItem{
		ID: "wi-override", Title: "Reply to audit thread",
		Kind: domain.KindTask, Priority: domain.PriorityLow,
		Participants:    []string{"bob", "alice"},
		ParticipantKind: map[string]domain.Kind{"alice": domain.KindQuickWin},
	})
	// Plain task, not a quick win for anyone.
	f.mustCreate(t, &domain.WorkItem{
		ID: "wi-task", Title: "Migrate billing tables", Priority: domain.PriorityHigh,
	})

	resp, err := f.ranking.Rank(ctx, app.RankingRequest{UserID: "alice", Now: &now})
	require.NoError(t, err)

	ids := make([]string, 0, len(resp.QuickWins))
	for _, qw := range resp.QuickWins {
		ids = append(ids, qw.WorkItemID)
	}
	assert.ElementsMatch(t, []string{"wi-global", "wi-override"}, ids)
	assert.Equal(t, 2, resp.Counts.QuickWins)

	// Same items ranked for bob: the override does not apply to him.
	bobResp, err := f.ranking.Rank(ctx, app.RankingRequest{UserID: "bob", Now: &now})
	require.NoError(t, err)
	for _, qw := range bobResp.QuickWins {
		assert.NotEqual(t, "wi-override", qw.WorkItemID)
	}
}

func TestRank_CountsSurviveTruncation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		f.mustCreate(t, &domain.WorkItem{
			ID:    fmt.Sprintf("wi-%d", i),
			Title: fmt.Sprintf("Task %d", i),
		})
	}

	resp, err := f.ranking.Rank(ctx, app.RankingRequest{UserID: "alice", Now: &now, TopN: 3})
	require.NoError(t, err)
	assert.Len(t, resp.TopPriority, 3)
	assert.Equal(t, 8, resp.Counts.TotalActive, "counts reflect the full filtered set")
}

func TestRank_SlotBucketsExcludeFlexible(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	f.mustCreate(t, &domain.WorkItem{ID: "wi-m", Title: "Analyze churn data"})
	f.mustCreate(t, &domain.WorkItem{ID: "wi-a", Title: "Demo with customer"})
	f.mustCreate(t, &domain.WorkItem{ID: "wi-e", Title: "Backlog cleanup"})
	f.mustCreate(t, &domain.WorkItem{ID: "wi-f", Title: "Anything else"})

	resp, err := f.ranking.Rank(ctx, app.RankingRequest{UserID: "alice", Now: &now})
	require.NoError(t, err)

	require.Len(t, resp.TimeSlots.Morning, 1)
	assert.Equal(t, "wi-m", resp.TimeSlots.Morning[0].WorkItemID)
	require.Len(t, resp.TimeSlots.Afternoon, 1)
	assert.Equal(t, "wi-a", resp.TimeSlots.Afternoon[0].WorkItemID)
	require.Len(t, resp.TimeSlots.Evening, 1)
	assert.Equal(t, "wi-e", resp.TimeSlots.Evening[0].WorkItemID)
	assert.Equal(t, 1, resp.Counts.Flexible)
}

func TestRank_CompletedTodaySuppressed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	f.mustCreate(t, &domain.WorkItem{ID: "wi-done", Title: "Daily standup notes"})
	f.mustCreate(t, &domain.WorkItem{ID: "wi-open", Title: "Quarterly report"})

	_, err := f.completion.Toggle(ctx, "alice", "wi-done", "2025-06-10", true)
	require.NoError(t, err)

	resp, err := f.ranking.Rank(ctx, app.RankingRequest{UserID: "alice", Now: &now})
	require.NoError(t, err)

	for _, entry := range resp.TopPriority {
		assert.NotEqual(t, "wi-done", entry.WorkItemID)
	}
	assert.Equal(t, 1, resp.Counts.TotalActive)
	assert.Equal(t, 1, resp.DoneToday)

	// The underlying status is untouched: suppression is ledger-only.
	item, err := f.workItems.GetByID(ctx, "wi-done")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, item.Status)
}

func TestRank_RequiresUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.ranking.Rank(context.Background(), app.RankingRequest{})
	var vErr *app.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestRank_DefaultClockUsesConfiguredZone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 5pm June 10th at UTC-8 is already 1am June 11th in UTC. The ledger
	// keys marks by the local calendar day, so the default-clock lookup
	// must resolve to June 10th, not the UTC day.
	loc := time.FixedZone("UTC-8", -8*60*60)
	ranking := NewRankingService(f.items, f.marks, loc).(*rankingService)
	ranking.now = func() time.Time {
		return time.Date(2025, 6, 11, 1, 0, 0, 0, time.UTC)
	}

	f.mustCreate(t, &domain.WorkItem{
		ID: "wi-evening", Title: "Prep standup notes",
		Priority: domain.PriorityMedium,
	})
	_, err := f.completion.Toggle(ctx, "alice", "wi-evening", "2025-06-10", true)
	require.NoError(t, err)

	resp, err := ranking.Rank(ctx, app.RankingRequest{UserID: "alice"})
	require.NoError(t, err)

	assert.Empty(t, resp.TopPriority)
	assert.Equal(t, 1, resp.DoneToday)
	// The response clock carries the configured zone for downstream display.
	assert.Equal(t, 17, resp.GeneratedAt.Hour())
}
