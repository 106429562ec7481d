package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/printers"
)

// Collection names accepted by the get command.
const (
	Entries = "entries"
	People  = "people"
	Notes   = "notes"
	Texts   = "texts"
)

// Get prints one collection, or all of them when Collection is empty.
type Get struct {
	Service    *app.Service
	T          *i18n.Provider
	Collection string
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.New(n.T)
	fmt.Println("")

	if n.Collection != "" {
		return n.print(pp, n.Collection)
	}

	for _, c := range []string{Entries, People, Notes, Texts} {
		if err := n.print(pp, c); err != nil {
			return err
		}
	}
	return nil
}

func (n *Get) print(pp *printers.PrettyPrint, collection string) error {
	switch collection {
	case Entries:
		entries, err := n.Service.Entries()
		if err != nil {
			return err
		}
		pp.Title(n.T.T("pageEntry"))
		pp.Entries(entries)
	case People:
		people, err := n.Service.People()
		if err != nil {
			return err
		}
		pp.Title(n.T.T("pagePeople"))
		pp.People(people)
	case Notes:
		notes, err := n.Service.Notes()
		if err != nil {
			return err
		}
		pp.Title(n.T.T("pageNotes"))
		pp.Notes(notes)
	case Texts:
		texts, err := n.Service.Texts()
		if err != nil {
			return err
		}
		pp.Title(n.T.T("pageTexts"))
		pp.Texts(texts)
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}
	return nil
}
