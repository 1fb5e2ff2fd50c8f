package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"flowdeck/internal/domain"
)

// RelativeDate returns a human-friendly relative date string.
func RelativeDate(t time.Time) string {
	return RelativeDateFrom(t, time.Now())
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// RelativeDateStyled returns RelativeDateFrom with urgency coloring applied.
func RelativeDateStyled(t time.Time, now time.Time) string {
	text := RelativeDateFrom(t, now)
	days := int(math.Round(t.Sub(now).Hours() / 24))

	if days < 0 {
		return StyleRed.Render(text)
	}
	if days <= 2 {
		return StyleRed.Render(text)
	}
	if days <= 7 {
		return StyleYellow.Render(text)
	}
	return StyleFg.Render(text)
}

// StatusPill returns a colored status indicator for a work item status.
func StatusPill(status domain.Status) string {
	switch status {
	case domain.StatusPending:
		return StyleBlue.Render("○ Pending")
	case domain.StatusInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.StatusCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.StatusResolved:
		return StyleDim.Render("✔ Resolved")
	default:
		return StyleDim.Render(string(status))
	}
}

// KindBadge returns a colored kind label.
func KindBadge(k domain.Kind) string {
	switch k {
	case domain.KindRoadblock:
		return StyleRed.Render("ROADBLOCK")
	case domain.KindQuickWin:
		return StyleGreen.Render("QUICK WIN")
	case domain.KindTask:
		return StyleBlue.Render("TASK")
	default:
		return StyleDim.Render(strings.ToUpper(string(k)))
	}
}

// PriorityBadge returns a colored priority label.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityUrgent:
		return StyleRed.Render("urgent")
	case domain.PriorityHigh:
		return StyleYellow.Render("high")
	case domain.PriorityMedium:
		return StyleBlue.Render("medium")
	case domain.PriorityLow:
		return StyleDim.Render("low")
	default:
		return StyleDim.Render(string(p))
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatScore renders a 0..1 score with two decimals.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}
