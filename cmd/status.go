package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps/internal/report"
	"github.com/Tiliavir/temps/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running timer",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	t := now()
	l, err := store.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if open, ok := l.Open(); ok {
		fmt.Fprintln(out, newStyles(out).ongoing.Render("Running:"))
		fmt.Fprintf(out, "  Project: %s\n", open.Project)
		fmt.Fprintf(out, "  Since: %s\n", clockLabel(open.Start, t))
		fmt.Fprintf(out, "  Elapsed: %s\n", timecalc.FormatDurationHHMMSS(t.Sub(open.Start)))
		return nil
	}

	s := report.Summarize(l.Entries(), cal.Day(cal.DayOf(t)), t)
	fmt.Fprintln(out, "No active timer.")
	fmt.Fprintf(out, "Today: %s logged.\n", timecalc.FormatDuration(s.Total))
	return nil
}
