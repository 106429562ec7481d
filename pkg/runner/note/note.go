package note

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/printers"
)

// Note adds or edits a personal note, or deletes one when Delete is set.
type Note struct {
	Service *app.Service
	T       *i18n.Provider

	ID      int64
	Content string
	Delete  bool
}

func (n *Note) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not save note, no service")
	}

	if n.Delete {
		if err := n.Service.DeleteNote(n.ID); err != nil {
			return err
		}
	} else {
		if _, err := n.Service.UpsertNote(n.ID, n.Content); err != nil {
			return err
		}
		fmt.Println(n.T.T("noteSavedToast"))
	}

	notes, err := n.Service.Notes()
	if err != nil {
		return err
	}
	pp := printers.New(n.T)
	pp.Title(n.T.T("pageNotes"))
	pp.Notes(notes)
	return nil
}
