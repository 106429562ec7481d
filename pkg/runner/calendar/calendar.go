package calendar

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/printers"
)

// Calendar prints one month's grid, marking the days with a logged entry.
type Calendar struct {
	Service *app.Service
	T       *i18n.Provider

	Year  int
	Month time.Month
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}
	if n.Year == 0 || n.Month == 0 {
		now := time.Now()
		n.Year, n.Month = now.Year(), now.Month()
	}

	entries, err := n.Service.MonthEntries(n.Year, n.Month)
	if err != nil {
		return err
	}

	then := time.Date(n.Year, n.Month, 1, 0, 0, 0, 0, time.Local)
	pp := printers.New(n.T)
	pp.Month(then, entries)
	return nil
}
