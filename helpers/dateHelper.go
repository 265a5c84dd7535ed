package helpers

import "time"

const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// NormalizeRange maps unknown or empty values to today.
func NormalizeRange(dateRange string) string {
	switch dateRange {
	case RangeWeek, RangeMonth, RangeYear:
		return dateRange
	default:
		return RangeToday
	}
}

// RangeStart returns local midnight of now, moved back by the requested range.
func RangeStart(now time.Time, dateRange string) time.Time {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	switch NormalizeRange(dateRange) {
	case RangeWeek:
		start = start.AddDate(0, 0, -7)
	case RangeMonth:
		start = start.AddDate(0, -1, 0)
	case RangeYear:
		start = start.AddDate(-1, 0, 0)
	}
	return start
}
