// Package printers renders collections and summaries for the plain CLI
// commands. Color output switches itself off when stdout is not a terminal.
package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"

	"tableflip.dev/fieldlog/pkg/i18n"
	"tableflip.dev/fieldlog/pkg/record"
	"tableflip.dev/fieldlog/pkg/report"
	"tableflip.dev/fieldlog/pkg/timeutil"
)

// PrettyPrint writes human-readable output for one language.
type PrettyPrint struct {
	T *i18n.Provider
}

// New returns a printer, forcing color off for non-terminal stdout.
func New(t *i18n.Provider) *PrettyPrint {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return &PrettyPrint{T: t}
}

func (pp *PrettyPrint) tr(key string, vars ...map[string]string) string {
	if pp.T == nil {
		return key
	}
	return pp.T.T(key, vars...)
}

// Title prints a bold underlined section title.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) none(key string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf(" %s\n\n", pp.tr(key))
}

// Entries prints the entries list, most recent first.
func (pp *PrettyPrint) Entries(entries []record.Entry) {
	if len(entries) == 0 {
		pp.none("entriesEmpty")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("DATE", "TIME", "REVISITS", "STUDIES")
	for _, e := range entries {
		table.AddRow(e.Date.String(), timeutil.FormatMinutes(e.TotalMinutes()), e.Revisits, e.Studies)
	}
	fmt.Println(table)
	fmt.Println("")
}

// People prints the people list.
func (pp *PrettyPrint) People(people []record.Person) {
	if len(people) == 0 {
		pp.none("peopleListEmpty")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 40
	table.Wrap = true
	table.AddRow("ID", "DATE", "TYPE", "NAME", "NOTES")
	for _, p := range people {
		typ := pp.tr("menuRevisits")
		if p.Type == record.Study {
			typ = pp.tr("menuStudies")
		}
		notes := p.Notes
		if notes == "" {
			notes = pp.tr("noNotes")
		}
		table.AddRow(p.ID, p.Date.String(), typ, p.Name, notes)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Notes prints the notes list, newest first.
func (pp *PrettyPrint) Notes(notes []record.Note) {
	if len(notes) == 0 {
		pp.none("notesEmpty")
		return
	}

	ts := color.New(color.Faint)
	for _, n := range notes {
		_, _ = ts.Printf("%d  %s\n", n.ID, n.CreatedAt().Format("2006-01-02 15:04"))
		fmt.Printf("%s\n\n", n.Content)
	}
}

// Texts prints the favorite texts in insertion order.
func (pp *PrettyPrint) Texts(texts []record.Text) {
	if len(texts) == 0 {
		pp.none("favTextsEmpty")
		return
	}

	ref := color.New(color.Bold, color.FgHiBlue)
	for _, t := range texts {
		_, _ = ref.Printf("%s", t.Reference)
		f := color.New(color.Faint)
		_, _ = f.Printf("  (%d)\n", t.ID)
		desc := t.Description
		if desc == "" {
			desc = pp.tr("noDescription")
		}
		fmt.Printf("%s\n\n", desc)
	}
}

// Summary prints one month's totals and, when a goal is set, the progress
// toward it.
func (pp *PrettyPrint) Summary(s report.Summary, goalHours int) {
	fmt.Printf("%s %s\n", pp.tr("summaryTotalHours"), timeutil.FormatMinutes(s.TotalMinutes))
	fmt.Printf("%s %d\n", pp.tr("summaryTotalRevisits"), s.Revisits)
	fmt.Printf("%s %d\n", pp.tr("summaryTotalStudies"), s.Studies)

	if goalHours > 0 {
		pct := report.GoalProgress(s.TotalMinutes, goalHours)
		fmt.Printf("%s %dh  %s %d%%\n", pp.tr("goalLabel"), goalHours, pp.Bar(pct, 20), pct)
	}
}

// Bar renders a simple percentage bar of the given width.
func (pp *PrettyPrint) Bar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	g := color.New(color.FgGreen)
	f := color.New(color.Faint)
	return g.Sprint(strings.Repeat("█", filled)) + f.Sprint(strings.Repeat("░", width-filled))
}
