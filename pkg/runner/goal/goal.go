package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/printers"
	"tableflip.dev/fieldlog/pkg/report"
)

// Goal shows the monthly hour goal and the current month's progress toward
// it. When Set is true the goal is updated first; zero clears it.
type Goal struct {
	Service *app.Service
	T       *i18n.Provider

	Set   bool
	Hours int
}

func (n *Goal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get goal, no service")
	}

	if n.Set {
		if n.Hours < 0 {
			return fmt.Errorf("goal hours must not be negative, got %d", n.Hours)
		}
		if err := n.Service.SetGoal(n.Hours); err != nil {
			return err
		}
	}

	hours := n.Service.Goal()
	pp := printers.New(n.T)
	if hours == 0 {
		fmt.Println(n.T.T("goalNone"))
		return nil
	}

	entries, err := n.Service.Entries()
	if err != nil {
		return err
	}
	now := time.Now()
	s := report.ForMonth(entries, now.Year(), now.Month())
	pct := report.GoalProgress(s.TotalMinutes, hours)
	fmt.Printf("%s %dh  %s %d%%\n", n.T.T("goalLabel"), hours, pp.Bar(pct, 20), pct)
	return nil
}
