package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps/internal/report"
	"github.com/Tiliavir/temps/internal/timecalc"
	"github.com/Tiliavir/temps/internal/timeline"
)

var vizCmd = &cobra.Command{
	Use:     "viz [date]",
	Aliases: []string{"visualize"},
	Short:   "Draw a timeline of one day",
	Long: `Draw a timeline of one day. The date is YYYY-MM-DD, "today",
"yesterday" or "N days ago"; the default is today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runViz,
}

func runViz(cmd *cobra.Command, args []string) error {
	t := now()
	day := cal.DayOf(t)
	if len(args) == 1 {
		d, err := timecalc.ParseDate(args[0], t, cal)
		if err != nil {
			return err
		}
		day = d
	}

	l, err := store.Load()
	if err != nil {
		return err
	}

	w := cal.Day(day)
	out := cmd.OutOrStdout()
	st := newStyles(out)
	fmt.Fprintln(out, st.title.Render(fmt.Sprintf("Timeline for %s", day.Format("Mon Jan 02 2006"))))
	fmt.Fprintln(out)

	chart := timeline.Render(report.Spans(l.Entries(), w, t), w, timeline.DefaultOptions())
	if chart == "" {
		fmt.Fprintln(out, st.muted.Render("Nothing tracked."))
		return nil
	}
	fmt.Fprint(out, chart)
	return nil
}
