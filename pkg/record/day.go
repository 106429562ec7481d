package record

import (
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar day in canonical ISO form (2006-01-02). Entries key on
// Day equality by string compare, so dates must pass through NewDay or
// ParseDay before they are compared or stored.
type Day string

// NewDay truncates t to its calendar day.
func NewDay(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// Today returns the current calendar day in local time.
func Today() Day {
	return NewDay(time.Now())
}

// ParseDay normalizes s into a Day, rejecting anything that is not an ISO
// calendar day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", s, err)
	}
	return NewDay(t), nil
}

// Time returns the day at midnight local time. The zero Day returns the zero
// time.
func (d Day) Time() time.Time {
	if d == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(dayLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsZero reports whether the day is unset.
func (d Day) IsZero() bool {
	return d == ""
}

// SameMonth reports whether the day falls in the same calendar month and
// year as then.
func (d Day) SameMonth(then time.Time) bool {
	t := d.Time()
	return t.Month() == then.Month() && t.Year() == then.Year()
}

// AddDays returns the day shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return NewDay(d.Time().AddDate(0, 0, n))
}

// Before reports whether d sorts before other. ISO days order correctly as
// strings.
func (d Day) Before(other Day) bool {
	return d < other
}

func (d Day) String() string {
	return string(d)
}
