package scoring

import (
	"strings"

	"flowdeck/internal/domain"
)

// SlotForHour maps a wall-clock hour to its time slot.
func SlotForHour(hour int) domain.TimeSlot {
	switch {
	case hour >= 5 && hour < 12:
		return domain.SlotMorning
	case hour >= 12 && hour < 17:
		return domain.SlotAfternoon
	default:
		return domain.SlotEvening
	}
}

func adjacentSlots(a, b domain.TimeSlot) bool {
	if a == b {
		return false
	}
	// Morning and evening are opposite; everything else touches.
	return !(a == domain.SlotMorning && b == domain.SlotEvening) &&
		!(a == domain.SlotEvening && b == domain.SlotMorning)
}

// Keyword hints biasing an item toward a slot. Checked in slot order so the
// mapping stays stable when a description matches several sets.
var (
	morningHints = []string{
		"analy", "design", "research", "architect", "deep work",
		"write", "draft", "plan", "spec", "review",
	}
	afternoonHints = []string{
		"meeting", "call", "sync", "email", "discuss",
		"demo", "present", "follow up", "followup",
	}
	eveningHints = []string{
		"cleanup", "organize", "tidy", "routine",
		"admin", "archive", "backlog",
	}
)

// SuggestSlot derives the best-fit time slot for an item from its kind,
// declared priority, and keyword hints in the title/description. Total and
// stable: every item maps to exactly one slot.
func SuggestSlot(item domain.WorkItem) domain.TimeSlot {
	text := strings.ToLower(item.Title + " " + item.Description)

	for _, hint := range morningHints {
		if strings.Contains(text, hint) {
			return domain.SlotMorning
		}
	}
	for _, hint := range afternoonHints {
		if strings.Contains(text, hint) {
			return domain.SlotAfternoon
		}
	}
	for _, hint := range eveningHints {
		if strings.Contains(text, hint) {
			return domain.SlotEvening
		}
	}

	// Roadblocks and urgent work go to the morning; quick wins fill gaps.
	if item.Kind == domain.KindRoadblock || item.Priority == domain.PriorityUrgent {
		return domain.SlotMorning
	}
	return domain.SlotFlexible
}
