package distribution

import "time"

// The weekly distribution window resets on Tuesday at 08:00 UTC, matching the
// game's weekly loot lockout. This is deliberately not a calendar week.
const (
	resetWeekday = time.Tuesday
	resetHourUTC = 8
)

// WeekStart returns the start of the weekly distribution window containing now.
// WeekStart(t) <= t always holds, and the result is constant for every instant
// inside the same window.
func WeekStart(now time.Time) time.Time {
	now = now.UTC()

	daysSinceReset := (int(now.Weekday()) - int(resetWeekday) + 7) % 7
	day := now.AddDate(0, 0, -daysSinceReset)
	start := time.Date(day.Year(), day.Month(), day.Day(), resetHourUTC, 0, 0, 0, time.UTC)

	// On reset day before the reset hour the boundary computed above is still
	// in the future; the current window began a week earlier.
	if start.After(now) {
		start = start.AddDate(0, 0, -7)
	}
	return start
}
