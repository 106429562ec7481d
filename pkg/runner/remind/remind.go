package remind

import (
	"context"
	"errors"
	"time"

	"github.com/gen2brain/beeep"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
)

// Notify sends a desktop notification. Swappable for tests.
type Notify func(title, body string) error

// Remind fires the first-of-month report reminder as a desktop
// notification. It fires at most once per month; any other day of the
// month, or a month already reminded, is a silent no-op.
type Remind struct {
	Service *app.Service
	T       *i18n.Provider

	Now    time.Time
	Notify Notify
}

func (n *Remind) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remind, no service")
	}
	if n.Now.IsZero() {
		n.Now = time.Now()
	}
	if n.Notify == nil {
		n.Notify = func(title, body string) error {
			return beeep.Notify(title, body, "")
		}
	}

	if n.Now.Day() != 1 {
		return nil
	}
	year, month := n.Now.Year(), n.Now.Month()
	if n.Service.Persistence.ReminderSent(year, month) {
		return nil
	}

	if err := n.Notify(n.T.T("reminderTitle"), n.T.T("reminderBody")); err != nil {
		return err
	}
	return n.Service.Persistence.MarkReminderSent(year, month)
}
