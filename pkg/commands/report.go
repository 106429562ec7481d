package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/fieldlog/pkg/commands/options"
	"tableflip.dev/fieldlog/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	so := &options.ShareOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the month's activity report.",
		Example: `
fieldlog report
fieldlog report --month="2026-01"
fieldlog report --share
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

			s := report.Report{
				Service: svc,
				T:       t,
				Year:    year,
				Month:   month,
				Share:   so.Share,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddShareArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
