package visit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/printers"
	"tableflip.dev/fieldlog/pkg/record"
)

// Visit bumps a day's revisit or study counter and, when a name or notes was
// given, records the person as well.
type Visit struct {
	Service *app.Service
	T       *i18n.Provider

	On    record.Day
	Type  record.VisitType
	Name  string
	Notes string
}

func (n *Visit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not record visit, no service")
	}
	if n.On.IsZero() {
		n.On = record.Today()
	}

	entry, person, err := n.Service.RecordVisit(n.On, n.Type, n.Name, n.Notes)
	if err != nil {
		return err
	}

	pp := printers.New(n.T)
	pp.Entries([]record.Entry{entry})
	if person != nil {
		fmt.Printf("%s %s\n", n.T.T("addPerson"), person.Name)
	}
	return nil
}
