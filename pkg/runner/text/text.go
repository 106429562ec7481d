package text

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/printers"
)

// Text adds or edits a favorite text, or deletes one when Delete is set. The
// reference is required for saves.
type Text struct {
	Service *app.Service
	T       *i18n.Provider

	ID          int64
	Reference   string
	Description string
	Delete      bool
}

func (n *Text) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not save text, no service")
	}

	if n.Delete {
		if err := n.Service.DeleteText(n.ID); err != nil {
			return err
		}
	} else {
		if _, err := n.Service.UpsertText(n.ID, n.Reference, n.Description); err != nil {
			if errors.Is(err, app.ErrReferenceRequired) {
				return fmt.Errorf("%s", n.T.T("alertTextRefRequired"))
			}
			return err
		}
	}

	texts, err := n.Service.Texts()
	if err != nil {
		return err
	}
	pp := printers.New(n.T)
	pp.Title(n.T.T("pageTexts"))
	pp.Texts(texts)
	return nil
}
