package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/printers"
	"tableflip.dev/fieldlog/pkg/report"
)

// Report prints the month's summary. With Share set the shareable text is
// also copied to the system clipboard.
type Report struct {
	Service *app.Service
	T       *i18n.Provider

	Year  int
	Month time.Month
	Share bool
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	if n.Year == 0 || n.Month == 0 {
		now := time.Now()
		n.Year, n.Month = now.Year(), now.Month()
	}

	entries, err := n.Service.Entries()
	if err != nil {
		return err
	}
	s := report.ForMonth(entries, n.Year, n.Month)

	title := n.T.T("reportTitle", map[string]string{"month": n.T.MonthName(n.Month)})
	pp := printers.New(n.T)
	pp.Title(title)
	pp.Summary(s, n.Service.Goal())

	if !n.Share {
		return nil
	}

	text := report.ShareText(s, title,
		n.T.T("totalTime"), n.T.T("totalRevisits"), n.T.T("totalStudies"))
	if err := clipboard.WriteAll(text); err != nil {
		// No clipboard on this terminal; say so instead of failing.
		fmt.Println(n.T.T("shareNotSupported"))
		return nil
	}
	fmt.Println(n.T.T("reportCopied"))
	return nil
}
