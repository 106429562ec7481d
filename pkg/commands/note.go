package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/fieldlog/pkg/commands/options"
	"tableflip.dev/fieldlog/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "note [content]",
		Short: "Add, edit, or delete a personal note.",
		Example: `
fieldlog note "interesting conversation on maple street"
fieldlog note --id 1700000000000 "corrected address"
fieldlog note --id 1700000000000 --delete
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if io.Delete {
				return nil
			}
			if len(args) == 0 {
				return errors.New("note content required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, t, err := loadService()
			if err != nil {
				return err
			}

			s := note.Note{
				Service: svc,
				T:       t,
				ID:      io.ID,
				Content: strings.Join(args, " "),
				Delete:  io.Delete,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddDeleteArg(cmd, io)

	topLevel.AddCommand(cmd)
}
