// Package calendar renders the month grid for the calendar page.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/timeutil"
)

// Options controls grid styling. The header row is the weekday labels.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style

	WeekdayHeader string
	ShowHeader    bool
}

// EntryDays maps the day-of-month of every entry in the grid's month.
func EntryDays(entries []record.Entry, month time.Time) map[int]bool {
	days := make(map[int]bool, len(entries))
	for _, e := range entries {
		if e.Date.SameMonth(month) {
			days[e.Date.Time().Day()] = true
		}
	}
	return days
}

// Render produces the multi-line grid for the given month. selectedDay of
// zero renders no selection.
func Render(month time.Time, entryDays map[int]bool, selectedDay int, now time.Time, opts Options) string {
	if month.IsZero() {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		header := opts.WeekdayHeader
		if header == "" {
			header = "Su Mo Tu We Th Fr Sa"
		}
		lines = append(lines, opts.HeaderStyle.Render(header))
	}

	todayDay := 0
	if month.Year() == now.Year() && month.Month() == now.Month() {
		todayDay = now.Day()
	}

	offset := int(timeutil.StartDay(month))
	daysInMonth := timeutil.DaysIn(month)
	rows := (offset + daysInMonth + 6) / 7

	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(day, entryDays[day], day == todayDay, day == selectedDay, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(day int, hasEntry, isToday, isSelected bool, opts Options) string {
	style := opts.EmptyStyle
	if hasEntry {
		style = opts.EntryStyle
	}
	if isToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if isSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(fmt.Sprintf("%2d", day))
}
