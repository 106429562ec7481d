package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/fieldlog/pkg/commands/options"
	"tableflip.dev/fieldlog/pkg/runner/visit"
)

func addVisit(topLevel *cobra.Command) {
	po := &options.PersonOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "visit",
		Short: "Count a revisit or study, optionally recording the person.",
		Example: `
fieldlog visit
fieldlog visit --study --name "Ana" --notes "asked about the brochure"
fieldlog visit --on="2026-02-10"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, t, err := loadService()
			if err != nil {
				return err
			}

			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := visit.Visit{
				Service: svc,
				T:       t,
				On:      on,
				Type:    po.Type(),
				Name:    po.Name,
				Notes:   po.Notes,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddPersonArgs(cmd, po)
	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
