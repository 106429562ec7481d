package log

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/printers"
	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/report"
)

// Log upserts one day's activity entry and prints the resulting month
// summary.
type Log struct {
	Service *app.Service
	T       *i18n.Provider

	On       record.Day
	Hours    int
	Minutes  int
	Revisits int
	Studies  int
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no service")
	}
	if n.On.IsZero() {
		n.On = record.Today()
	}

	e := record.Entry{
		Date:     n.On,
		Hours:    n.Hours,
		Minutes:  n.Minutes,
		Revisits: n.Revisits,
		Studies:  n.Studies,
	}
	if err := n.Service.UpsertEntry(e); err != nil {
		return err
	}

	entries, err := n.Service.Entries()
	if err != nil {
		return err
	}

	pp := printers.New(n.T)
	when := n.On.Time()
	title := when.Format("January 2006")
	if n.T != nil {
		title = fmt.Sprintf("%s %d", n.T.MonthName(when.Month()), when.Year())
	}
	pp.Title(title)
	pp.Summary(report.ForMonth(entries, when.Year(), when.Month()), n.Service.Goal())
	return nil
}
