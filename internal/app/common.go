package app

import (
	"time"

	"flowdeck/internal/domain"
)

// Presentation bounds. Exceeding a bound truncates the display list only;
// the counts in RankingCounts always reflect the full filtered set.
const (
	DefaultTopN        = 5
	DefaultQuickWinMax = 5
	DefaultSlotCap     = 3
)

type RankingRequest struct {
	UserID string
	// Now overrides the clock, for tests and reproducible output.
	Now *time.Time

	TopN        int // 0 = DefaultTopN
	QuickWinMax int // 0 = DefaultQuickWinMax
	SlotCap     int // 0 = DefaultSlotCap
}

// RankedItem is one scored entry in a ranking list.
type RankedItem struct {
	WorkItemID   string
	Title        string
	Kind         domain.Kind
	Status       domain.Status
	Priority     domain.Priority
	DueDate      *time.Time
	EstimatedMin int
	Score        float64
	Factors      domain.FactorBreakdown
	Quadrant     domain.Quadrant
	TimeSlot     domain.TimeSlot
}

// SlotBuckets partitions ranked items by suggested time slot. Flexible
// items appear in no bucket; they are counted in RankingCounts.Flexible.
type SlotBuckets struct {
	Morning   []RankedItem
	Afternoon []RankedItem
	Evening   []RankedItem
}

// RankingCounts reflects the full filtered set, not the truncated lists.
type RankingCounts struct {
	TotalActive int
	QuickWins   int
	Morning     int
	Afternoon   int
	Evening     int
	Flexible    int
}

type RankingResponse struct {
	GeneratedAt time.Time
	TopPriority []RankedItem
	QuickWins   []RankedItem
	TimeSlots   SlotBuckets
	Counts      RankingCounts
	DoneToday   int // items suppressed by today's completion marks
}

// ScanResponse summarizes one escalation scan for the caller.
type ScanResponse struct {
	ScannedAt     time.Time
	Converted     int
	Failed        int
	UsersAffected map[string]int
}

type RescueRequest struct {
	WorkItemID         string
	ProposedResolution string
	NewDeadline        time.Time
	Category           domain.RootCauseCategory
	Factor             string
	Severity           domain.Severity
	// Now overrides the clock, for tests.
	Now *time.Time
}
