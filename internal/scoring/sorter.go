package scoring

import (
	"sort"
	"time"

	"flowdeck/internal/domain"
)

// ScoredItem pairs an item with its computed score for ranking.
type ScoredItem struct {
	Item  domain.WorkItem
	Score domain.PriorityScore
}

// Rank scores all items and sorts them by the deterministic canonical rules:
// 1. Composite score: higher first
// 2. Due date: earliest first (nil last)
// 3. Declared priority: higher first
// 4. Item ID: lexical ascending
// The result is a strict total order: no two distinct items compare equal.
func Rank(items []domain.WorkItem, now time.Time, w Weights) []ScoredItem {
	scored := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		scored = append(scored, ScoredItem{Item: item, Score: Score(item, now, w)})
	}
	SortScored(scored)
	return scored
}

// SortScored applies the canonical ordering in place.
func SortScored(scored []ScoredItem) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]

		// 1. Composite score (higher first)
		if a.Score.Score != b.Score.Score {
			return a.Score.Score > b.Score.Score
		}

		// 2. Due date (earliest first, nil last)
		dueA, dueB := a.Item.DueDate, b.Item.DueDate
		if (dueA == nil) != (dueB == nil) {
			return dueA != nil
		}
		if dueA != nil && dueB != nil && !dueA.Equal(*dueB) {
			return dueA.Before(*dueB)
		}

		// 3. Declared priority (higher first)
		rankA, rankB := domain.PriorityRank(a.Item.Priority), domain.PriorityRank(b.Item.Priority)
		if rankA != rankB {
			return rankA > rankB
		}

		// 4. Item ID (lexical)
		return a.Item.ID < b.Item.ID
	})
}
