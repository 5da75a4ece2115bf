// Package report aggregates entries into per-project totals for a window.
//
// All functions are pure: the current instant is passed in explicitly and
// used only to value the open entry.
package report

import (
	"sort"
	"time"

	"github.com/Tiliavir/temps/internal/model"
	"github.com/Tiliavir/temps/internal/timecalc"
)

// Mode selects the reporting window.
type Mode int

const (
	Daily Mode = iota
	Weekly
	Full
)

func (m Mode) String() string {
	switch m {
	case Weekly:
		return "weekly"
	case Full:
		return "full"
	default:
		return "daily"
	}
}

// ProjectTotal is the time spent on one project inside a window.
type ProjectTotal struct {
	Project  string
	Duration time.Duration
}

// Ongoing describes the running timer. Elapsed is measured from the entry's
// real start, regardless of the report window.
type Ongoing struct {
	Project string
	Start   time.Time
	Elapsed time.Duration
}

// Summary is the result of aggregating one window.
type Summary struct {
	Window  timecalc.Window
	Rows    []ProjectTotal
	Total   time.Duration
	Ongoing *Ongoing
}

// ModeWindow returns the window for mode around the logical day ref.
func ModeWindow(mode Mode, cal timecalc.Calendar, ref time.Time) timecalc.Window {
	switch mode {
	case Weekly:
		return cal.Week(cal.WeekOf(cal.Cutoff(ref)))
	case Full:
		return timecalc.Unbounded()
	default:
		return cal.Day(ref)
	}
}

// Spans returns the effective spans of entries clipped to w, in input order.
// Entries that do not intersect w are left out.
func Spans(entries []model.Entry, w timecalc.Window, now time.Time) []model.Span {
	var spans []model.Span
	for _, e := range entries {
		start, end, ok := w.Clip(e.Start, e.EndOr(now))
		if !ok {
			continue
		}
		spans = append(spans, model.Span{Project: e.Project, Start: start, End: end})
	}
	return spans
}

// Summarize totals entries per project inside w. Rows are sorted by project
// name. Entries may overlap or be out of order.
func Summarize(entries []model.Entry, w timecalc.Window, now time.Time) Summary {
	totals := map[string]time.Duration{}
	for _, s := range Spans(entries, w, now) {
		totals[s.Project] += s.Duration()
	}

	sum := Summary{Window: w, Rows: make([]ProjectTotal, 0, len(totals))}
	for project, d := range totals {
		sum.Rows = append(sum.Rows, ProjectTotal{Project: project, Duration: d})
		sum.Total += d
	}
	sort.Slice(sum.Rows, func(i, j int) bool {
		return sum.Rows[i].Project < sum.Rows[j].Project
	})

	if open, ok := model.Open(entries); ok {
		if _, _, ok := w.Clip(open.Start, now); ok {
			sum.Ongoing = &Ongoing{
				Project: open.Project,
				Start:   open.Start,
				Elapsed: now.Sub(open.Start),
			}
		}
	}
	return sum
}

// WeekRow holds one project's per-day totals.
type WeekRow struct {
	Project string
	Days    [7]time.Duration
	Total   time.Duration
}

// Week is a per-day breakdown of a seven-day window.
type Week struct {
	Days      [7]time.Time
	Rows      []WeekRow
	DayTotals [7]time.Duration
	Total     time.Duration
	Ongoing   *Ongoing
}

// SummarizeWeek breaks the week starting at logical day first down per day.
func SummarizeWeek(entries []model.Entry, cal timecalc.Calendar, first time.Time, now time.Time) Week {
	var wk Week
	rows := map[string]*WeekRow{}
	for i := range wk.Days {
		day := first.AddDate(0, 0, i)
		wk.Days[i] = day
		s := Summarize(entries, cal.Day(day), now)
		for _, r := range s.Rows {
			row, ok := rows[r.Project]
			if !ok {
				row = &WeekRow{Project: r.Project}
				rows[r.Project] = row
			}
			row.Days[i] += r.Duration
			row.Total += r.Duration
		}
		wk.DayTotals[i] = s.Total
		wk.Total += s.Total
	}

	for _, row := range rows {
		wk.Rows = append(wk.Rows, *row)
	}
	sort.Slice(wk.Rows, func(i, j int) bool {
		return wk.Rows[i].Project < wk.Rows[j].Project
	})

	wk.Ongoing = Summarize(entries, cal.Week(first), now).Ongoing
	return wk
}
