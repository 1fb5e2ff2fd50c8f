package domain

type Kind string

const (
	KindTask      Kind = "task"
	KindQuickWin  Kind = "quick_win"
	KindRoadblock Kind = "roadblock"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusResolved   Status = "resolved"
)

// Terminal reports whether the status excludes an item from active ranking
// and escalation scans.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusResolved
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// PriorityRank returns a sort rank for a priority (higher = more important).
// Unknown values rank below low so a malformed record never outranks a
// well-formed one.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	SlotFlexible  TimeSlot = "flexible"
)

type Quadrant string

const (
	QuadrantDoFirst   Quadrant = "urgent_important"
	QuadrantSchedule  Quadrant = "important_not_urgent"
	QuadrantDelegate  Quadrant = "urgent_not_important"
	QuadrantEliminate Quadrant = "not_urgent_not_important"
)

// ValidKinds is the canonical set of accepted kind strings.
var ValidKinds = map[string]bool{
	"task": true, "quick_win": true, "roadblock": true,
}

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[string]bool{
	"pending": true, "in_progress": true, "completed": true, "resolved": true,
}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true, "urgent": true,
}
