package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/fieldlog/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	validArgs := []string{get.Entries, get.People, get.Notes, get.Texts}

	cmd := &cobra.Command{
		Use:   "get [collection]",
		Short: "Print one collection, or all of them.",
		Example: `
fieldlog get
fieldlog get entries
fieldlog get people
`,
		ValidArgs: validArgs,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("expected at most one collection, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, t, err := loadService()
			if err != nil {
				return err
			}

			s := get.Get{Service: svc, T: t}
			if len(args) == 1 {
				s.Collection = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
