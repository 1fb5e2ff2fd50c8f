package domain

import "time"

type WorkItem struct {
	ID          string
	Title       string
	Description string
	Kind        Kind
	Status      Status
	Priority    Priority

	// Constraints
	DueDate      *time.Time
	EstimatedMin int // 0 = unknown

	// Participants, creator always first. ParticipantKind holds
	// per-participant overrides of Kind; absent entries fall back to Kind.
	Participants    []string
	ParticipantKind map[string]Kind

	// LinkedParentID is the owning dossier (parent activity). It is a
	// back-reference, not an ownership pointer.
	LinkedParentID string

	// Causal classification, present once escalated or rescued.
	RootCause   *RootCause
	EscalatedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Creator returns the first participant, the item's author.
func (w *WorkItem) Creator() string {
	if len(w.Participants) == 0 {
		return ""
	}
	return w.Participants[0]
}

// EffectiveKind returns the kind the item carries for the given participant,
// falling back to the item's own kind when no override exists.
func (w *WorkItem) EffectiveKind(participantID string) Kind {
	if k, ok := w.ParticipantKind[participantID]; ok {
		return k
	}
	return w.Kind
}

// Overdue reports whether the item's due date has passed without the item
// reaching a terminal status. Derived, never stored.
func (w *WorkItem) Overdue(now time.Time) bool {
	if w.DueDate == nil || w.Status.Terminal() {
		return false
	}
	return w.DueDate.Before(now)
}

// DailyCompletionMark records that a user handled an item "for today"
// without touching the item's permanent status. Unique per
// (user, item, calendar day); a new day implicitly starts not-completed.
type DailyCompletionMark struct {
	UserID      string
	WorkItemID  string
	Date        string // "2006-01-02"
	Completed   bool
	CompletedAt *time.Time
}

// MarkDateLayout is the calendar-day key format for completion marks.
const MarkDateLayout = "2006-01-02"

// PriorityScore is the derived scoring result for one item. Recomputed on
// every read, never persisted.
type PriorityScore struct {
	Score    float64
	Factors  FactorBreakdown
	Quadrant Quadrant
	TimeSlot TimeSlot
}

// FactorBreakdown exposes the individual scoring components so a ranking
// can be explained downstream. Each factor lies in [0,1].
type FactorBreakdown struct {
	Urgency       float64
	Importance    float64
	Effort        float64
	Context       float64
	Collaboration float64
}
