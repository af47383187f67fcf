package domain

import (
	"math"
	"time"
)

// Progress calculator: pure functions over a schedule. These back both the
// per-workout progress display and the community consistency stats.

// CompletedCount returns how many days in the schedule are marked complete.
func CompletedCount(days []ScheduleDay) int {
	count := 0
	for _, d := range days {
		if d.Completed {
			count++
		}
	}
	return count
}

// TotalCount returns the number of days in the schedule.
func TotalCount(days []ScheduleDay) int {
	return len(days)
}

// ProgressPercent returns the completed share of the schedule as a rounded
// percentage in [0,100]. An empty schedule yields 0, never a division by zero.
func ProgressPercent(days []ScheduleDay) int {
	total := TotalCount(days)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(CompletedCount(days)) / float64(total) * 100))
}

// DaysActive returns the number of whole days elapsed between start and now,
// clamped at zero if start lies in the future.
func DaysActive(start, now time.Time) int {
	days := int(math.Floor(now.Sub(start).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
