package clear

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
)

// Clear erases the entries and people collections after a confirmation
// prompt. Favorite texts, notes, and settings survive. Force skips the
// prompt; anything but an explicit yes cancels.
type Clear struct {
	Service *app.Service
	T       *i18n.Provider

	Force bool
	In    io.Reader
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not clear, no service")
	}

	if !n.Force {
		if n.In == nil {
			n.In = os.Stdin
		}
		fmt.Printf("%s [y/N]: ", n.T.T("alertConfirmDeleteAll"))
		answer, _ := bufio.NewReader(n.In).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			return nil
		}
	}

	return n.Service.ClearActivity()
}
