package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flowdeck/internal/cli/formatter"
	"flowdeck/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// todayRow is one checklist entry: an active item plus its completion state
// for the day.
type todayRow struct {
	itemID   string
	title    string
	kind     domain.Kind
	priority domain.Priority
	dueDate  *time.Time
	done     bool
}

// todayLoadedMsg signals that checklist data has been loaded.
type todayLoadedMsg struct {
	rows []todayRow
	err  error
}

// todayToggledMsg signals that a mark flip has been persisted.
type todayToggledMsg struct {
	itemID string
	done   bool
	err    error
}

// todayKeyMap is the checklist keybinding set.
type todayKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultTodayKeyMap() todayKeyMap {
	return todayKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle done")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// todayModel is a day-scoped checklist over the user's active items.
// Toggling a row flips the daily completion mark; the item's permanent
// status never changes from here.
type todayModel struct {
	app    *App
	userID string
	date   string

	rows    []todayRow
	cursor  int
	loading bool
	err     error
	keys    todayKeyMap
}

func newTodayModel(app *App, userID, date string) *todayModel {
	return &todayModel{
		app:     app,
		userID:  userID,
		date:    date,
		loading: true,
		keys:    defaultTodayKeyMap(),
	}
}

func (m *todayModel) Init() tea.Cmd {
	return m.load()
}

func (m *todayModel) load() tea.Cmd {
	app, userID, date := m.app, m.userID, m.date
	return func() tea.Msg {
		ctx := context.Background()

		items, err := app.WorkItems.ListActive(ctx, userID)
		if err != nil {
			return todayLoadedMsg{err: err}
		}
		marks, err := app.Completion.MarksFor(ctx, userID, date)
		if err != nil {
			return todayLoadedMsg{err: err}
		}

		done := make(map[string]bool, len(marks))
		for _, mk := range marks {
			done[mk.WorkItemID] = mk.Completed
		}

		rows := make([]todayRow, 0, len(items))
		for _, w := range items {
			rows = append(rows, todayRow{
				itemID:   w.ID,
				title:    w.Title,
				kind:     w.EffectiveKind(userID),
				priority: w.Priority,
				dueDate:  w.DueDate,
				done:     done[w.ID],
			})
		}
		return todayLoadedMsg{rows: rows}
	}
}

func (m *todayModel) toggle(row todayRow) tea.Cmd {
	app, userID, date := m.app, m.userID, m.date
	return func() tea.Msg {
		mark, err := app.Completion.Toggle(context.Background(), userID, row.itemID, date, !row.done)
		if err != nil {
			return todayToggledMsg{itemID: row.itemID, err: err}
		}
		return todayToggledMsg{itemID: mark.WorkItemID, done: mark.Completed}
	}
}

func (m *todayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todayLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.rows = msg.rows
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case todayToggledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		for i := range m.rows {
			if m.rows[i].itemID == msg.itemID {
				m.rows[i].done = msg.done
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(m.rows) {
				return m, m.toggle(m.rows[m.cursor])
			}
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			return m, m.load()
		}
	}

	return m, nil
}

func (m *todayModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(fmt.Sprintf("Today · %s", m.date)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(formatter.Dim("Loading…"))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case len(m.rows) == 0:
		b.WriteString(formatter.Dim("No active items for today."))
		b.WriteString("\n")
	default:
		for i, row := range m.rows {
			b.WriteString(m.renderRow(i, row))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("space toggle · j/k move · r reload · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *todayModel) renderRow(i int, row todayRow) string {
	cursor := "  "
	if i == m.cursor {
		cursor = formatter.StyleHeader.Render("▸ ")
	}

	check := formatter.Dim("[ ]")
	title := formatter.StyleFg.Render(row.title)
	if row.done {
		check = formatter.StyleGreen.Render("[✔]")
		title = formatter.Dim(row.title)
	}

	line := fmt.Sprintf("%s%s %s  %s", cursor, check, title, formatter.KindBadge(row.kind))
	if row.dueDate != nil && !row.done {
		line += "  " + formatter.RelativeDateStyled(*row.dueDate, time.Now())
	}
	return line
}
