package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/fieldlog/pkg/commands/options"
	"tableflip.dev/fieldlog/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	fo := &options.ForceOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase all entries and people. Favorite texts and notes survive.",
		Example: `
fieldlog clear
fieldlog clear --force
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, t, err := loadService()
			if err != nil {
				return err
			}

			s := clear.Clear{Service: svc, T: t, Force: fo.Force}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddForceArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
