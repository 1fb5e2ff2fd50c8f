package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdeck/internal/app"
	"flowdeck/internal/domain"
	"flowdeck/internal/repository"
)

func roadblockE(f *fixture, t *testing.T) *domain.WorkItem {
	t.Helper()
	return f.mustCreate(t, &domain.WorkItem{
		ID:             "wi-e",
		Title:          "Vendor contract signature",
		Kind:           domain.KindRoadblock,
		Priority:       domain.PriorityMedium,
		LinkedParentID: "activity-42",
		Participants:   []string{"alice", "bob"},
	})
}

func validRescueReq(now time.Time) app.RescueRequest {
	deadline := now.AddDate(0, 0, 3)
	return app.RescueRequest{
		WorkItemID:         "wi-e",
		ProposedResolution: "Escalate to the vendor account manager",
		NewDeadline:        deadline,
		Category:           domain.CauseExternalDependency,
		Factor:             "vendor_delay",
		Severity:           domain.SeverityHigh,
		Now:                &now,
	}
}

func TestRescue_ResolvesOriginalAndSpawnsSibling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)
	roadblockE(f, t)

	newItem, err := f.rescue.Rescue(ctx, validRescueReq(now))
	require.NoError(t, err)

	// Exactly one new item, in the same dossier, at elevated priority.
	assert.Equal(t, "activity-42", newItem.LinkedParentID)
	assert.Equal(t, domain.KindTask, newItem.Kind)
	assert.Equal(t, domain.StatusPending, newItem.Status)
	assert.Equal(t, domain.PriorityHigh, newItem.Priority)
	require.NotNil(t, newItem.DueDate)
	assert.True(t, newItem.DueDate.Equal(now.AddDate(0, 0, 3)))
	assert.Equal(t, "Escalate to the vendor account manager", newItem.Description)
	assert.Equal(t, []string{"alice", "bob"}, newItem.Participants)

	// Original resolved, kind and causal classification retained.
	original, err := f.workItems.GetByID(ctx, "wi-e")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, original.Status)
	assert.Equal(t, domain.KindRoadblock, original.Kind)
	require.NotNil(t, original.RootCause)
	assert.Equal(t, domain.CauseExternalDependency, original.RootCause.Category)
	assert.Equal(t, "vendor_delay", original.RootCause.Factor)
	assert.Equal(t, domain.SeverityHigh, original.RootCause.Severity)
}

func TestRescue_UrgentStaysUrgent(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)

	f.mustCreate(t, &domain.WorkItem{
		ID: "wi-e", Title: "Production data loss",
		Kind: domain.KindRoadblock, Priority: domain.PriorityUrgent,
	})

	newItem, err := f.rescue.Rescue(context.Background(), validRescueReq(now))
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityUrgent, newItem.Priority)
}

func TestRescue_UnknownCategoryMutatesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)
	roadblockE(f, t)

	req := validRescueReq(now)
	req.Category = domain.RootCauseCategory("gremlins")

	_, err := f.rescue.Rescue(ctx, req)
	var vErr *app.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "rootCauseCategory", vErr.Field)

	// Original unchanged, no new item created.
	original, err := f.workItems.GetByID(ctx, "wi-e")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, original.Status)
	assert.Nil(t, original.RootCause)

	active, err := f.workItems.ListActive(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestRescue_FactorMustMatchCategory(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)
	roadblockE(f, t)

	req := validRescueReq(now)
	req.Factor = "understaffed" // belongs to resourcing, not external_dependency

	_, err := f.rescue.Rescue(context.Background(), req)
	var vErr *app.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "rootCauseFactor", vErr.Field)
}

func TestRescue_PastDeadlineRejected(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)
	roadblockE(f, t)

	req := validRescueReq(now)
	req.NewDeadline = now.AddDate(0, 0, -1)

	_, err := f.rescue.Rescue(context.Background(), req)
	var vErr *app.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "newDeadline", vErr.Field)
}

func TestRescue_NonRoadblockRejected(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)

	f.mustCreate(t, &domain.WorkItem{ID: "wi-e", Title: "Ordinary task"})

	_, err := f.rescue.Rescue(context.Background(), validRescueReq(now))
	var vErr *app.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestRescue_ParticipantOverrideCountsAsRoadblock(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)

	f.mustCreate(t, &domain.WorkItem{
		ID: "wi-e", Title: "Shared blocker",
		Kind:            domain.KindTask,
		Participants:    []string{"alice", "bob"},
		ParticipantKind: map[string]domain.Kind{"bob": domain.KindRoadblock},
	})

	_, err := f.rescue.Rescue(context.Background(), validRescueReq(now))
	assert.NoError(t, err, "roadblock via participant override is rescuable")
}

func TestRescue_AlreadyResolvedConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)
	roadblockE(f, t)

	_, err := f.rescue.Rescue(ctx, validRescueReq(now))
	require.NoError(t, err)

	_, err = f.rescue.Rescue(ctx, validRescueReq(now))
	assert.ErrorIs(t, err, repository.ErrConflict, "second rescue of the same roadblock conflicts")
}

func TestRescue_MissingItem(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)

	req := validRescueReq(now)
	req.WorkItemID = "no-such-item"

	_, err := f.rescue.Rescue(context.Background(), req)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
