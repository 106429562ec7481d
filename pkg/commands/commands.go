package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/fieldlog/pkg/app"
	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "fieldlog",
		Short: base.Wrap80("Personal field activity log on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLog(topLevel)
	addGet(topLevel)
	addVisit(topLevel)
	addNote(topLevel)
	addText(topLevel)
	addGoal(topLevel)
	addReport(topLevel)
	addCalendar(topLevel)
	addClear(topLevel)
	addRemind(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadService builds the Service plus a translator for the persisted
// language. Every command goes through here so the CLI and the TUI agree on
// both.
func loadService() (*app.Service, *i18n.Provider, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	t := i18n.New(i18n.ParseLanguage(p.Language()))
	return &app.Service{Persistence: p}, t, nil
}
