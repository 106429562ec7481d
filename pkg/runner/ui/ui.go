package ui

import (
	"context"
	"errors"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	teaui "tableflip.dev/fieldlog/pkg/tui/app"
)

// UI launches the interactive terminal program.
type UI struct {
	Service *app.Service
	T       *i18n.Provider
}

func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not start ui, no service")
	}
	return teaui.Run(n.Service, n.T)
}
