// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/fieldlog/pkg/record"
)

// OnOptions selects the day a command operates on.
type OnOptions struct {
	OnString string
}

// AddOnArgs wires the --on flag on the provided command.
func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-02-28". Defaults to today.`)
}

// GetOn parses the flag, returning the zero Day when unset.
func (o *OnOptions) GetOn() (record.Day, error) {
	if o.OnString == "" {
		return "", nil
	}
	return record.ParseDay(o.OnString)
}

// EntryOptions captures the four entry fields.
type EntryOptions struct {
	Hours    int
	Minutes  int
	Revisits int
	Studies  int
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().IntVar(&o.Hours, "hours", 0, "Hours of activity.")
	cmd.Flags().IntVar(&o.Minutes, "minutes", 0, "Minutes of activity.")
	cmd.Flags().IntVar(&o.Revisits, "revisits", 0, "Revisit count.")
	cmd.Flags().IntVar(&o.Studies, "studies", 0, "Study count.")
}

// PersonOptions captures the optional person details of a visit.
type PersonOptions struct {
	Name  string
	Notes string
	Study bool
}

func AddPersonArgs(cmd *cobra.Command, o *PersonOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Person name. Leave empty to only count the visit.")
	cmd.Flags().StringVar(&o.Notes, "notes", "", "Notes about the person.")
	cmd.Flags().BoolVar(&o.Study, "study", false, "Count as a study instead of a revisit.")
}

// Type resolves the visit type flagged.
func (o *PersonOptions) Type() record.VisitType {
	if o.Study {
		return record.Study
	}
	return record.Revisit
}

// IDOptions targets one record by id.
type IDOptions struct {
	ID     int64
	Delete bool
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().Int64Var(&o.ID, "id", 0, "Record id. Zero creates a new record.")
}

func AddDeleteArg(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.Delete, "delete", false, "Delete the record with --id.")
}

// MonthOptions selects a calendar month.
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`Specify a month, example: --month="2026-02". Defaults to the current month.`)
}

// GetMonth parses the flag, returning zeroes when unset.
func (o *MonthOptions) GetMonth() (int, time.Month, error) {
	if o.MonthString == "" {
		return 0, 0, nil
	}
	t, err := time.ParseInLocation("2006-01", o.MonthString, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", o.MonthString, err)
	}
	return t.Year(), t.Month(), nil
}

// ShareOptions toggles clipboard sharing.
type ShareOptions struct {
	Share bool
}

func AddShareArgs(cmd *cobra.Command, o *ShareOptions) {
	cmd.Flags().BoolVar(&o.Share, "share", false, "Copy the report text to the clipboard.")
}

// ForceOptions skips confirmation prompts.
type ForceOptions struct {
	Force bool
}

func AddForceArgs(cmd *cobra.Command, o *ForceOptions) {
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false, "Do not ask for confirmation.")
}
