// Package timeutil holds the small time and calendar helpers shared by the
// report math, the printers, and the TUI.
package timeutil

import (
	"fmt"
	"time"
)

// FormatMinutes renders a whole-minute total as "1h 30m". Negative totals
// render as "0h 0m".
func FormatMinutes(total int) string {
	if total < 0 {
		return "0h 0m"
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// Normalize folds a raw minute total into whole hours and leftover minutes,
// clamping negatives to zero. This is the stepper path; stored entries may
// still carry minutes of 60 or more when submitted directly.
func Normalize(totalMinutes int) (hours, minutes int) {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return totalMinutes / 60, totalMinutes % 60
}

// MonthStart returns midnight on the first of the month containing t.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// NextMonth returns the first of the following month.
func NextMonth(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0)
}

// PrevMonth returns the first of the preceding month.
func PrevMonth(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, -1, 0)
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	return NextMonth(t).AddDate(0, 0, -1).Day()
}

// StartDay returns the weekday the month containing t begins on.
func StartDay(t time.Time) time.Weekday {
	return MonthStart(t).Weekday()
}
