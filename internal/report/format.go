package report

import (
	"fmt"
	"time"

	"github.com/Tiliavir/temps/internal/table"
	"github.com/Tiliavir/temps/internal/timecalc"
)

// Title returns the heading for a report over the logical day ref.
func Title(mode Mode, ref, today time.Time) string {
	switch mode {
	case Weekly:
		// Name the ISO week holding most of the seven days.
		return fmt.Sprintf("Summary for week %s (from %s)", timecalc.ISOWeekLabel(ref.AddDate(0, 0, 3)), ref.Format("Mon Jan 02"))
	case Full:
		return "Summary of all tracked time"
	default:
		if ref.Equal(today) {
			return fmt.Sprintf("Summary for today (%s)", ref.Format("Jan 02"))
		}
		return fmt.Sprintf("Summary for %s", ref.Format("Mon Jan 02 2006"))
	}
}

// FormatSummary renders the Project/Hours table with a TOTAL row.
func FormatSummary(s Summary) string {
	tb := table.New("Project", "Hours").Align(table.Left, table.Right)
	for _, r := range s.Rows {
		tb.Row(r.Project, timecalc.FormatHours(r.Duration))
	}
	tb.Row()
	tb.Row("TOTAL", timecalc.FormatHours(s.Total))
	return tb.String()
}

// FormatWeek renders one column per day of the week and a TOTAL row.
func FormatWeek(w Week) string {
	headers := []string{"Project"}
	aligns := []table.Alignment{table.Left}
	for _, d := range w.Days {
		headers = append(headers, d.Format("Monday"))
		aligns = append(aligns, table.Right)
	}
	tb := table.New(headers...).Align(aligns...)

	for _, r := range w.Rows {
		tb.Row(weekCells(r.Project, r.Days)...)
	}
	tb.Row()
	tb.Row(weekCells("TOTAL", w.DayTotals)...)
	return tb.String()
}

func weekCells(first string, days [7]time.Duration) []string {
	cells := []string{first}
	for _, d := range days {
		cells = append(cells, timecalc.FormatHours(d))
	}
	return cells
}

// WeeklyTotalLine returns "Weekly total: X hours".
func WeeklyTotalLine(w Week) string {
	return fmt.Sprintf("Weekly total: %s hours", timecalc.FormatHours(w.Total))
}

// OngoingLine returns "Ongoing: <project> (<elapsed>)".
func OngoingLine(o Ongoing) string {
	return fmt.Sprintf("Ongoing: %s (%s)", o.Project, timecalc.FormatDuration(o.Elapsed))
}
