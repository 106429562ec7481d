package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/fieldlog/pkg/runner/goal"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "goal [hours]",
		Short: "Show or set the monthly hour goal.",
		Example: `
fieldlog goal
fieldlog goal 20
fieldlog goal 0
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, t, err := loadService()
			if err != nil {
				return err
			}

			s := goal.Goal{Service: svc, T: t}
			if len(args) == 1 {
				hours, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				s.Set = true
				s.Hours = hours
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
