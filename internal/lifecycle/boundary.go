package lifecycle

import "time"

// NextBoundary returns the duration from now until the next local midnight
// in the given location. Pure, so the self-rescheduling timer can be tested
// without waiting real time.
func NextBoundary(now time.Time, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
	return next.Sub(now)
}

// StartOfDay returns midnight of the current calendar day in loc. Items due
// strictly before this instant are overdue; an item due today is not.
func StartOfDay(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
