package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/fieldlog/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Fire the first-of-month report reminder, at most once per month.",
		Long: "Sends a desktop notification on the first day of the month " +
			"reminding you to send your report. Meant to be run from cron or a " +
			"login hook; any other day is a no-op.",
		Example: `
fieldlog remind
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, t, err := loadService()
			if err != nil {
				return err
			}

			s := remind.Remind{Service: svc, T: t}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
