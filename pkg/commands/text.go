package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/fieldlog/pkg/commands/options"
	"tableflip.dev/fieldlog/pkg/runner/text"
)

func addText(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var reference, description string

	cmd := &cobra.Command{
		Use:   "text",
		Short: "Add, edit, or delete a favorite text.",
		Example: `
fieldlog text --ref "Psalm 83:18" --desc "God's name"
fieldlog text --id 1700000000000 --ref "Psalm 83:18" --desc "updated description"
fieldlog text --id 1700000000000 --delete
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, t, err := loadService()
			if err != nil {
				return err
			}

			s := text.Text{
				Service:     svc,
				T:           t,
				ID:          io.ID,
				Reference:   reference,
				Description: description,
				Delete:      io.Delete,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&reference, "ref", "", "Text reference. Required for saves.")
	cmd.Flags().StringVar(&description, "desc", "", "Optional description.")
	options.AddIDArgs(cmd, io)
	options.AddDeleteArg(cmd, io)

	topLevel.AddCommand(cmd)
}
