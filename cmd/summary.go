package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/temps/internal/report"
	"github.com/Tiliavir/temps/internal/timecalc"
)

var (
	summaryDaily  bool
	summaryWeekly bool
	summaryFull   bool
	summaryDate   string
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"s"},
	Short:   "Summarize tracked time for a day, a week or everything",
	Args:    cobra.NoArgs,
	RunE:    runSummary,
}

func init() {
	addSummaryFlags(summaryCmd)
}

func addSummaryFlags(c *cobra.Command) {
	f := c.Flags()
	f.BoolVarP(&summaryDaily, "daily", "d", false, "Summarize one day (default)")
	f.BoolVarP(&summaryWeekly, "weekly", "w", false, "Summarize one week, per day")
	f.BoolVarP(&summaryFull, "full", "f", false, "Summarize all tracked time")
	f.StringVar(&summaryDate, "date", "", "Reference day: YYYY-MM-DD, today, yesterday or \"N days ago\"")
	c.MarkFlagsMutuallyExclusive("daily", "weekly", "full")
}

func summaryMode() report.Mode {
	switch {
	case summaryWeekly:
		return report.Weekly
	case summaryFull:
		return report.Full
	default:
		return report.Daily
	}
}

func runSummary(cmd *cobra.Command, _ []string) error {
	t := now()
	today := cal.DayOf(t)
	ref := today
	if summaryDate != "" {
		d, err := timecalc.ParseDate(summaryDate, t, cal)
		if err != nil {
			return err
		}
		ref = d
	}

	l, err := store.Load()
	if err != nil {
		return err
	}
	entries := l.Entries()

	out := cmd.OutOrStdout()
	st := newStyles(out)
	mode := summaryMode()
	logger.Debug("building summary", "mode", mode.String(), "day", ref.Format("2006-01-02"), "entries", len(entries))

	if mode == report.Weekly {
		first := cal.WeekOf(cal.Cutoff(ref))
		wk := report.SummarizeWeek(entries, cal, first, t)
		fmt.Fprintln(out, st.title.Render(report.Title(mode, first, today)))
		fmt.Fprintln(out)
		fmt.Fprint(out, report.FormatWeek(wk))
		fmt.Fprintln(out)
		fmt.Fprintln(out, report.WeeklyTotalLine(wk))
		printOngoing(out, st, wk.Ongoing)
		return nil
	}

	s := report.Summarize(entries, report.ModeWindow(mode, cal, ref), t)
	fmt.Fprintln(out, st.title.Render(report.Title(mode, ref, today)))
	fmt.Fprintln(out)
	if len(s.Rows) == 0 {
		fmt.Fprintln(out, st.muted.Render("Nothing tracked."))
	} else {
		fmt.Fprint(out, report.FormatSummary(s))
	}
	printOngoing(out, st, s.Ongoing)
	return nil
}

func printOngoing(w io.Writer, st styles, o *report.Ongoing) {
	if o == nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.ongoing.Render(report.OngoingLine(*o)))
}
