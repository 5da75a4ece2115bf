// Package timeline draws a day of tracked time as a vertical bar chart.
//
// Each output row covers a fixed quantum of the day. Entries that overlap
// are drawn in separate lanes side by side, and project names are printed
// to the right of the row where they begin.
package timeline

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/Tiliavir/temps/internal/model"
	"github.com/Tiliavir/temps/internal/timecalc"
)

// palette holds the coverage glyphs from empty to full.
var palette = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

const (
	tick      = "▁▁▁▁▁▁"
	axisBlank = "      "
)

// Options controls the layout.
type Options struct {
	// Quantum is the time covered by one row.
	Quantum time.Duration
	// LabelEvery is the spacing of clock labels on the axis.
	LabelEvery time.Duration
	// LaneWidth is the number of glyphs per lane.
	LaneWidth int
}

// DefaultOptions draws half-hour rows with a label every two hours.
func DefaultOptions() Options {
	return Options{Quantum: 30 * time.Minute, LabelEvery: 2 * time.Hour, LaneWidth: 8}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Quantum <= 0 {
		o.Quantum = d.Quantum
	}
	if o.LabelEvery <= 0 {
		o.LabelEvery = d.LabelEvery
	}
	if o.LaneWidth <= 0 {
		o.LaneWidth = d.LaneWidth
	}
	return o
}

type lanedSpan struct {
	model.Span
	lane int
}

// assignLanes places each span in the lowest lane whose previous span has
// ended by the time it starts.
func assignLanes(spans []model.Span) ([]lanedSpan, int) {
	sorted := append([]model.Span(nil), spans...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.Project < b.Project
	})

	var laneEnds []time.Time
	out := make([]lanedSpan, 0, len(sorted))
	for _, s := range sorted {
		lane := -1
		for i, end := range laneEnds {
			if !end.After(s.Start) {
				lane = i
				break
			}
		}
		if lane < 0 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, s.End)
		} else {
			laneEnds[lane] = s.End
		}
		out = append(out, lanedSpan{Span: s, lane: lane})
	}
	return out, len(laneEnds)
}

// glyph picks the palette entry for covered out of total. Any coverage
// shows at least the lowest bar.
func glyph(covered, total time.Duration) rune {
	if covered <= 0 || total <= 0 {
		return palette[0]
	}
	top := len(palette) - 1
	idx := int((covered*time.Duration(top) + total/2) / total)
	if idx < 1 {
		idx = 1
	}
	if idx > top {
		idx = top
	}
	return palette[idx]
}

// Render draws spans clipped to the bounded window w. It returns an empty
// string when nothing intersects w.
func Render(spans []model.Span, w timecalc.Window, opts Options) string {
	if !w.Bounded() {
		return ""
	}
	opts = opts.withDefaults()

	var clipped []model.Span
	for _, s := range spans {
		start, end, ok := w.Clip(s.Start, s.End)
		if ok {
			clipped = append(clipped, model.Span{Project: s.Project, Start: start, End: end})
		}
	}
	if len(clipped) == 0 {
		return ""
	}
	laned, lanes := assignLanes(clipped)

	// Rows sit on the wall-clock grid. The first row is clipped to the window
	// when the window starts between grid lines.
	q := opts.Quantum
	ws := w.Start
	sinceMidnight := time.Duration(ws.Hour())*time.Hour + time.Duration(ws.Minute())*time.Minute +
		time.Duration(ws.Second())*time.Second + time.Duration(ws.Nanosecond())
	grid := ws.Add(-(sinceMidnight % q))
	rows := int((w.End.Sub(grid) + q - 1) / q)
	rowStart := func(i int) time.Time {
		return grid.Add(time.Duration(i) * q)
	}
	every := int(opts.LabelEvery / time.Minute)
	isLabel := func(i int) bool {
		if i < 0 || i >= rows || every == 0 {
			return false
		}
		t := rowStart(i)
		return t.Second() == 0 && (t.Hour()*60+t.Minute())%every == 0
	}

	first, last := rows, -1
	for _, s := range laned {
		if a := int(s.Start.Sub(grid) / q); a < first {
			first = a
		}
		if b := int((s.End.Sub(grid)+q-1)/q) - 1; b > last {
			last = b
		}
	}
	// Begin with the tick row above the closest label, looking back at most
	// one label interval.
	perLabel := int(opts.LabelEvery / q)
	j := first
	for j > 0 && !isLabel(j) && first-j < perLabel {
		j--
	}
	if isLabel(j) {
		first = max(j-1, 0)
	}
	if isLabel(last + 1) {
		last++
	}

	var b strings.Builder
	prev := make([]string, lanes)
	for i := first; i <= last; i++ {
		label := rowStart(i)
		rs, re, _ := w.Clip(label, label.Add(q))

		covered := make([]time.Duration, lanes)
		names := make([][]string, lanes)
		for _, s := range laned {
			start, end, ok := timecalc.Window{Start: rs, End: re}.Clip(s.Start, s.End)
			if !ok {
				continue
			}
			covered[s.lane] += end.Sub(start)
			if !slices.Contains(names[s.lane], s.Project) {
				names[s.lane] = append(names[s.lane], s.Project)
			}
		}

		var line strings.Builder
		switch {
		case isLabel(i):
			line.WriteString(label.Format("15:04") + " ")
		case isLabel(i + 1):
			line.WriteString(tick)
		default:
			line.WriteString(axisBlank)
		}

		var labels []string
		for lane := 0; lane < lanes; lane++ {
			if lane > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(strings.Repeat(string(glyph(covered[lane], re.Sub(rs))), opts.LaneWidth))

			key := strings.Join(names[lane], " / ")
			if key != prev[lane] && key != "" {
				labels = append(labels, key)
			}
			prev[lane] = key
		}
		if len(labels) > 0 {
			line.WriteString(" " + strings.Join(labels, " | "))
		}

		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
