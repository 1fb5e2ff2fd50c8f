package cli

import (
	"context"
	"testing"

	"flowdeck/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorkItems struct {
	items []*domain.WorkItem
}

func (s *stubWorkItems) Create(ctx context.Context, w *domain.WorkItem) error { return nil }
func (s *stubWorkItems) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	return nil, nil
}
func (s *stubWorkItems) ListActive(ctx context.Context, userID string) ([]*domain.WorkItem, error) {
	return s.items, nil
}
func (s *stubWorkItems) Update(ctx context.Context, w *domain.WorkItem) error { return nil }
func (s *stubWorkItems) MarkDone(ctx context.Context, id string) error        { return nil }
func (s *stubWorkItems) Delete(ctx context.Context, id string) error          { return nil }

type stubCompletion struct {
	marks   []*domain.DailyCompletionMark
	toggled []string
}

func (s *stubCompletion) Toggle(ctx context.Context, userID, workItemID, date string, completed bool) (*domain.DailyCompletionMark, error) {
	s.toggled = append(s.toggled, workItemID)
	return &domain.DailyCompletionMark{
		UserID: userID, WorkItemID: workItemID, Date: date, Completed: completed,
	}, nil
}
func (s *stubCompletion) MarksFor(ctx context.Context, userID, date string) ([]*domain.DailyCompletionMark, error) {
	return s.marks, nil
}

func checklistFixture(t *testing.T) (*todayModel, *stubCompletion) {
	t.Helper()

	items := &stubWorkItems{items: []*domain.WorkItem{
		{ID: "item-1", Title: "Write launch notes", Kind: domain.KindTask, Participants: []string{"alma"}},
		{ID: "item-2", Title: "Ping vendor", Kind: domain.KindQuickWin, Participants: []string{"alma"}},
	}}
	completion := &stubCompletion{marks: []*domain.DailyCompletionMark{
		{UserID: "alma", WorkItemID: "item-2", Date: "2026-03-10", Completed: true},
	}}

	app := &App{WorkItems: items, Completion: completion}
	m := newTodayModel(app, "alma", "2026-03-10")

	msg := m.Init()()
	loaded, ok := msg.(todayLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	m.Update(loaded)

	return m, completion
}

func TestTodayModel_LoadsRowsWithMarkState(t *testing.T) {
	m, _ := checklistFixture(t)

	require.Len(t, m.rows, 2)
	assert.False(t, m.rows[0].done)
	assert.True(t, m.rows[1].done)

	view := m.View()
	assert.Contains(t, view, "Write launch notes")
	assert.Contains(t, view, "Ping vendor")
	assert.Contains(t, view, "[✔]")
}

func TestTodayModel_ToggleFlipsCursorRow(t *testing.T) {
	m, completion := checklistFixture(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.NotNil(t, cmd)

	msg := cmd()
	toggled, ok := msg.(todayToggledMsg)
	require.True(t, ok)
	require.NoError(t, toggled.err)
	assert.Equal(t, "item-1", toggled.itemID)
	assert.True(t, toggled.done)
	assert.Equal(t, []string{"item-1"}, completion.toggled)

	m.Update(toggled)
	assert.True(t, m.rows[0].done)
}

func TestTodayModel_CursorStaysInBounds(t *testing.T) {
	m, _ := checklistFixture(t)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
}

func TestTodayModel_QuitKeyQuits(t *testing.T) {
	m, _ := checklistFixture(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTodayModel_ToggleUnusedWhenEmpty(t *testing.T) {
	app := &App{
		WorkItems:  &stubWorkItems{},
		Completion: &stubCompletion{},
	}
	m := newTodayModel(app, "alma", "2026-03-10")
	m.Update(todayLoadedMsg{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Nil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "No active items")
}
