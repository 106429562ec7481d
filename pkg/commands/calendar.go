package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/fieldlog/pkg/commands/options"
	"tableflip.dev/fieldlog/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the month grid, marking logged days.",
		Example: `
fieldlog calendar
fieldlog calendar --month="2026-01"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, t, err := loadService()
			if err != nil {
				return err
			}

			year, month, err := mo.GetMonth()
			if err != nil {
				return err
			}

			s := calendar.Calendar{Service: svc, T: t, Year: year, Month: month}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
