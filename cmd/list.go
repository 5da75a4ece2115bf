package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps/internal/model"
	"github.com/Tiliavir/temps/internal/table"
	"github.com/Tiliavir/temps/internal/timecalc"
)

var (
	listToday bool
	listWeek  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listToday, "today", false, "Only entries touching today")
	listCmd.Flags().BoolVar(&listWeek, "week", false, "Only entries touching this week")
	listCmd.MarkFlagsMutuallyExclusive("today", "week")
}

// windowFlag picks today, this week or everything.
func windowFlag(t time.Time, today, week bool) timecalc.Window {
	switch {
	case today:
		return cal.Day(cal.DayOf(t))
	case week:
		return cal.Week(cal.WeekOf(t))
	default:
		return timecalc.Unbounded()
	}
}

// entriesIn keeps entries whose effective span intersects w, in log order.
func entriesIn(entries []model.Entry, w timecalc.Window, t time.Time) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		if _, _, ok := w.Clip(e.Start, e.EndOr(t)); ok {
			out = append(out, e)
		}
	}
	return out
}

func runList(cmd *cobra.Command, _ []string) error {
	t := now()
	l, err := store.Load()
	if err != nil {
		return err
	}
	entries := entriesIn(l.Entries(), windowFlag(t, listToday, listWeek), t)

	tb := table.New("Project", "Start", "End")
	for _, e := range entries {
		end := ""
		if e.End != nil {
			end = e.End.Format(time.RFC3339)
		}
		tb.Row(e.Project, e.Start.Format(time.RFC3339), end)
	}

	out := cmd.OutOrStdout()
	if tb.Len() == 0 {
		fmt.Fprintln(out, "No entries found.")
		return nil
	}
	fmt.Fprint(out, tb.String())
	return nil
}
