package calendar

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/fieldlog/pkg/record"
)

func TestRenderGridShape(t *testing.T) {
	// March 2026 starts on a Sunday and has 31 days.
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	out := Render(month, nil, 0, time.Time{}, Options{ShowHeader: true})

	lines := strings.Split(out, "\n")
	if len(lines) != 6 { // header plus five week rows
		t.Fatalf("expected 6 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("expected default weekday header, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " 1") {
		t.Fatalf("month starting Sunday should not be padded, got %q", lines[1])
	}
	if !strings.Contains(lines[5], "31") {
		t.Fatalf("expected day 31 in last row, got %q", lines[5])
	}
}

func TestRenderPadsStartOfMonth(t *testing.T) {
	// June 2026 starts on a Monday.
	month := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	out := Render(month, nil, 0, time.Time{}, Options{})

	first := strings.Split(out, "\n")[0]
	if !strings.HasPrefix(first, "    1") {
		t.Fatalf("expected one leading empty cell before day 1, got %q", first)
	}
}

func TestRenderCustomWeekdayHeader(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	out := Render(month, nil, 0, time.Time{}, Options{ShowHeader: true, WeekdayHeader: "Do Lu Ma Mi Ju Vi Sa"})
	if !strings.HasPrefix(out, "Do Lu Ma Mi Ju Vi Sa") {
		t.Fatalf("expected custom header, got %q", out)
	}
}

func TestEntryDaysFiltersMonth(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)
	entries := []record.Entry{
		{Date: record.Day("2026-03-05")},
		{Date: record.Day("2026-03-21")},
		{Date: record.Day("2026-04-05")},
		{Date: record.Day("2025-03-05")},
	}

	days := EntryDays(entries, month)
	if len(days) != 2 || !days[5] || !days[21] {
		t.Fatalf("expected days 5 and 21 only, got %v", days)
	}
}
