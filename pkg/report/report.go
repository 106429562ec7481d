// Package report derives the monthly summary, goal progress, and chart
// series from the entries collection. Everything here is a pure function of
// its inputs; callers re-read the store before reporting so there is never a
// stale cached view.
package report

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/timeutil"
)

// Summary totals one calendar month of activity.
type Summary struct {
	Year         int
	Month        time.Month
	TotalMinutes int
	Revisits     int
	Studies      int
	Days         int
}

// ForMonth sums exactly the entries whose date falls in the given calendar
// month; entries from other months contribute nothing.
func ForMonth(entries []record.Entry, year int, month time.Month) Summary {
	anchor := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	s := Summary{Year: year, Month: month}
	for _, e := range entries {
		if !e.Date.SameMonth(anchor) {
			continue
		}
		s.TotalMinutes += e.TotalMinutes()
		s.Revisits += e.Revisits
		s.Studies += e.Studies
		s.Days++
	}
	return s
}

// GoalProgress returns the percentage of the hour goal covered by
// totalMinutes, capped at 100. A zero goal always reports zero.
func GoalProgress(totalMinutes, goalHours int) int {
	if goalHours <= 0 {
		return 0
	}
	pct := totalMinutes * 100 / (goalHours * 60)
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// Distribution is the current month's activity split into its three series,
// with time as fractional hours.
type Distribution struct {
	Hours    float64
	Revisits int
	Studies  int
}

// CurrentDistribution aggregates the month containing now.
func CurrentDistribution(entries []record.Entry, now time.Time) Distribution {
	s := ForMonth(entries, now.Year(), now.Month())
	return Distribution{
		Hours:    float64(s.TotalMinutes) / 60,
		Revisits: s.Revisits,
		Studies:  s.Studies,
	}
}

// MonthPoint is one month of the trend series.
type MonthPoint struct {
	Year  int
	Month time.Month
	Hours float64
}

// TrendMonths is how many months the hours trend looks back, including the
// current one.
const TrendMonths = 6

// Trend returns fractional hours per month for the TrendMonths months ending
// at now, oldest first.
func Trend(entries []record.Entry, now time.Time) []MonthPoint {
	points := make([]MonthPoint, 0, TrendMonths)
	for i := TrendMonths - 1; i >= 0; i-- {
		anchor := timeutil.MonthStart(now).AddDate(0, -i, 0)
		s := ForMonth(entries, anchor.Year(), anchor.Month())
		points = append(points, MonthPoint{
			Year:  anchor.Year(),
			Month: anchor.Month(),
			Hours: float64(s.TotalMinutes) / 60,
		})
	}
	return points
}

// ShareText renders the month summary as the shareable report message.
func ShareText(s Summary, title, hoursLabel, revisitsLabel, studiesLabel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n\n", title)
	fmt.Fprintf(&b, "%s %s\n", hoursLabel, timeutil.FormatMinutes(s.TotalMinutes))
	fmt.Fprintf(&b, "%s %d\n", revisitsLabel, s.Revisits)
	fmt.Fprintf(&b, "%s %d", studiesLabel, s.Studies)
	return b.String()
}
