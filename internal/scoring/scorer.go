package scoring

import (
	"time"

	"flowdeck/internal/domain"
)

type Weights struct {
	Urgency       float64
	Importance    float64
	Effort        float64
	Context       float64
	Collaboration float64
}

// DefaultWeights is the tuned composite policy. Weights are policy, not a
// correctness invariant; the factor breakdown is always exposed alongside
// the composite so rankings stay explainable.
func DefaultWeights() Weights {
	return Weights{
		Urgency:       0.30,
		Importance:    0.30,
		Effort:        0.15,
		Context:       0.10,
		Collaboration: 0.15,
	}
}

// Quadrant classification thresholds (fixed policy, not per-user).
const (
	urgencyThreshold    = 0.55
	importanceThreshold = 0.55
)

// Urgency shape constants: maximum when due, high inside a 3-day horizon,
// inverse-distance decay beyond it, low baseline without a due date.
const (
	urgencyHorizonHours = 72.0
	urgencyNoDueDate    = 0.2
	urgencyHorizonFloor = 0.7
	urgencyDecayDays    = 2.1 // decayDays/daysUntil, clamped to [floor, ceiling]
)

// Score computes the composite priority score for one item at the given
// instant. Pure and total: missing due date, duration, or description
// degrade individual factors, never fail the call.
func Score(item domain.WorkItem, now time.Time, w Weights) domain.PriorityScore {
	factors := domain.FactorBreakdown{
		Urgency:       urgencyFactor(item.DueDate, now),
		Importance:    importanceFactor(item.Priority),
		Effort:        effortFactor(item.EstimatedMin),
		Context:       contextFactor(item, now),
		Collaboration: collaborationFactor(len(item.Participants)),
	}

	composite := w.Urgency*factors.Urgency +
		w.Importance*factors.Importance +
		w.Effort*factors.Effort +
		w.Context*factors.Context +
		w.Collaboration*factors.Collaboration

	return domain.PriorityScore{
		Score:    clamp01(composite),
		Factors:  factors,
		Quadrant: classifyQuadrant(factors.Urgency, factors.Importance),
		TimeSlot: SuggestSlot(item),
	}
}

func urgencyFactor(dueDate *time.Time, now time.Time) float64 {
	if dueDate == nil {
		return urgencyNoDueDate
	}
	hoursUntil := dueDate.Sub(now).Hours()
	switch {
	case hoursUntil <= 0:
		return 1.0
	case hoursUntil <= urgencyHorizonHours:
		// Linear from 1.0 at the due instant down to the horizon floor.
		return 1.0 - (1.0-urgencyHorizonFloor)*(hoursUntil/urgencyHorizonHours)
	default:
		daysUntil := hoursUntil / 24.0
		return clamp(urgencyDecayDays/daysUntil, urgencyNoDueDate, urgencyHorizonFloor)
	}
}

func importanceFactor(p domain.Priority) float64 {
	switch p {
	case domain.PriorityUrgent:
		return 1.0
	case domain.PriorityHigh:
		return 0.75
	case domain.PriorityMedium:
		return 0.5
	case domain.PriorityLow:
		return 0.25
	default:
		// Malformed priority scores as low rather than aborting the pass.
		return 0.25
	}
}

func effortFactor(estimatedMin int) float64 {
	switch {
	case estimatedMin <= 0:
		return 0.5 // unknown duration, neutral
	case estimatedMin <= 15:
		return 1.0
	default:
		return clamp(15.0/float64(estimatedMin), 0.1, 1.0)
	}
}

func contextFactor(item domain.WorkItem, now time.Time) float64 {
	suggested := SuggestSlot(item)
	if suggested == domain.SlotFlexible {
		return 0.6
	}
	current := SlotForHour(now.Hour())
	switch {
	case suggested == current:
		return 1.0
	case adjacentSlots(suggested, current):
		return 0.6
	default:
		return 0.2
	}
}

func collaborationFactor(participantCount int) float64 {
	if participantCount > 1 {
		return 0.8
	}
	return 0.3
}

func classifyQuadrant(urgency, importance float64) domain.Quadrant {
	urgent := urgency >= urgencyThreshold
	important := importance >= importanceThreshold
	switch {
	case urgent && important:
		return domain.QuadrantDoFirst
	case important:
		return domain.QuadrantSchedule
	case urgent:
		return domain.QuadrantDelegate
	default:
		return domain.QuadrantEliminate
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
