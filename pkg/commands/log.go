package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/fieldlog/pkg/commands/options"
	"tableflip.dev/fieldlog/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a day's activity.",
		Example: `
fieldlog log --hours 2 --minutes 30
fieldlog log --on="2026-02-10" --hours 1 --revisits 2
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

			s := log.Log{
				Service:  svc,
				T:        t,
				On:       on,
				Hours:    eo.Hours,
				Minutes:  eo.Minutes,
				Revisits: eo.Revisits,
				Studies:  eo.Studies,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
