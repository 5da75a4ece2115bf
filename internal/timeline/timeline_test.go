package timeline_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/temps/internal/model"
	"github.com/Tiliavir/temps/internal/timecalc"
	"github.com/Tiliavir/temps/internal/timeline"
)

var day = time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func span(project string, start, end time.Time) model.Span {
	return model.Span{Project: project, Start: start, End: end}
}

func dayWindow() timecalc.Window {
	return timecalc.Window{Start: day, End: day.AddDate(0, 0, 1)}
}

func TestRenderSingleEntry(t *testing.T) {
	out := timeline.Render([]model.Span{span("world domination", at(9, 0), at(13, 24))}, dayWindow(), timeline.DefaultOptions())

	want := strings.Join([]string{
		"▁▁▁▁▁▁",
		"08:00",
		"",
		"      ████████ world domination",
		"▁▁▁▁▁▁████████",
		"10:00 ████████",
		"      ████████",
		"      ████████",
		"▁▁▁▁▁▁████████",
		"12:00 ████████",
		"      ████████",
		"      ████████",
		"      ▆▆▆▆▆▆▆▆",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestRenderOverlapUsesLanes(t *testing.T) {
	spans := []model.Span{
		span("a", at(15, 0), at(17, 0)),
		span("b", at(16, 0), at(16, 30)),
	}
	out := timeline.Render(spans, dayWindow(), timeline.DefaultOptions())

	want := strings.Join([]string{
		"▁▁▁▁▁▁",
		"14:00",
		"",
		"      ████████          a",
		"▁▁▁▁▁▁████████",
		"16:00 ████████ ████████ b",
		"      ████████",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestRenderConcurrentStartsLabelTogether(t *testing.T) {
	spans := []model.Span{
		span("b", at(10, 0), at(11, 0)),
		span("a", at(10, 0), at(10, 30)),
	}
	out := timeline.Render(spans, dayWindow(), timeline.DefaultOptions())
	assert.Contains(t, out, "10:00 ████████ ████████ a | b\n")
}

func TestRenderSwitchInsideRow(t *testing.T) {
	spans := []model.Span{
		span("a", at(9, 0), at(9, 15)),
		span("b", at(9, 15), at(10, 0)),
	}
	out := timeline.Render(spans, dayWindow(), timeline.DefaultOptions())
	lines := strings.Split(out, "\n")

	assert.Contains(t, lines, "      ████████ a / b", "sequential entries share a lane")
	assert.Contains(t, lines, "▁▁▁▁▁▁████████ b")
}

func TestRenderPartialRows(t *testing.T) {
	// 09:10-09:30 covers two thirds of the row, 09:30-09:40 one third.
	out := timeline.Render([]model.Span{span("p", at(9, 10), at(9, 40))}, dayWindow(), timeline.DefaultOptions())
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines, "      ▅▅▅▅▅▅▅▅ p")
	assert.Contains(t, lines, "▁▁▁▁▁▁▃▃▃▃▃▃▃▃")
}

func TestRenderTinyEntryIsVisible(t *testing.T) {
	out := timeline.Render([]model.Span{span("p", at(9, 0), at(9, 1))}, dayWindow(), timeline.DefaultOptions())
	assert.Contains(t, out, "▁▁▁▁▁▁▁▁ p")
}

func TestRenderRelabelsAfterGap(t *testing.T) {
	spans := []model.Span{
		span("p", at(9, 0), at(9, 30)),
		span("p", at(10, 30), at(11, 0)),
	}
	out := timeline.Render(spans, dayWindow(), timeline.DefaultOptions())
	assert.Equal(t, 2, strings.Count(out, " p\n"))
}

func TestRenderExtendsToNextLabel(t *testing.T) {
	out := timeline.Render([]model.Span{span("p", at(11, 0), at(12, 0))}, dayWindow(), timeline.DefaultOptions())
	assert.True(t, strings.HasSuffix(out, "12:00\n"), out)
}

func TestRenderClipsToWindow(t *testing.T) {
	out := timeline.Render([]model.Span{span("night", at(-2, 0), at(1, 0))}, dayWindow(), timeline.DefaultOptions())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "00:00 ████████ night", lines[0])
	assert.Equal(t, "      ████████", lines[1])
}

func TestRenderHonoursWindowOffset(t *testing.T) {
	w := timecalc.Window{Start: at(4, 0), End: at(28, 0)}
	out := timeline.Render([]model.Span{span("p", at(5, 0), at(6, 0))}, w, timeline.DefaultOptions())

	// No row precedes the window start, so there is no tick above 04:00.
	want := strings.Join([]string{
		"04:00",
		"",
		"      ████████ p",
		"▁▁▁▁▁▁████████",
		"06:00",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestRenderOffsetBetweenGridLines(t *testing.T) {
	cal, err := timecalc.NewCalendar(3*time.Hour+15*time.Minute, time.Monday, time.UTC)
	require.NoError(t, err)
	w := cal.Day(day)

	out := timeline.Render([]model.Span{span("p", at(9, 0), at(13, 0))}, w, timeline.DefaultOptions())
	want := strings.Join([]string{
		"▁▁▁▁▁▁",
		"08:00",
		"",
		"      ████████ p",
		"▁▁▁▁▁▁████████",
		"10:00 ████████",
		"      ████████",
		"      ████████",
		"▁▁▁▁▁▁████████",
		"12:00 ████████",
		"      ████████",
	}, "\n") + "\n"
	assert.Equal(t, want, out)

	// The first row is clipped to 03:15-03:30 and counts as fully covered.
	out = timeline.Render([]model.Span{span("p", at(3, 15), at(4, 0))}, w, timeline.DefaultOptions())
	assert.Equal(t, "      ████████ p\n▁▁▁▁▁▁████████\n04:00\n", out)
}

func TestRenderWithoutEarlierLabelStartsAtFirstEntry(t *testing.T) {
	w := timecalc.Window{Start: at(5, 10), End: at(29, 10)}
	out := timeline.Render([]model.Span{span("p", at(5, 10), at(5, 30))}, w, timeline.DefaultOptions())
	assert.Equal(t, "      ████████ p\n", out)
}

func TestRenderEmpty(t *testing.T) {
	assert.Empty(t, timeline.Render(nil, dayWindow(), timeline.DefaultOptions()))
	assert.Empty(t, timeline.Render([]model.Span{span("p", at(30, 0), at(31, 0))}, dayWindow(), timeline.DefaultOptions()))
	assert.Empty(t, timeline.Render([]model.Span{span("p", at(9, 0), at(10, 0))}, timecalc.Unbounded(), timeline.DefaultOptions()))
}

func TestRenderIsDeterministic(t *testing.T) {
	spans := []model.Span{
		span("c", at(8, 0), at(12, 0)),
		span("a", at(9, 0), at(9, 45)),
		span("b", at(9, 15), at(10, 0)),
		span("a", at(11, 0), at(13, 0)),
	}
	reversed := []model.Span{spans[3], spans[2], spans[1], spans[0]}

	first := timeline.Render(spans, dayWindow(), timeline.DefaultOptions())
	assert.Equal(t, first, timeline.Render(spans, dayWindow(), timeline.DefaultOptions()))
	assert.Equal(t, first, timeline.Render(reversed, dayWindow(), timeline.DefaultOptions()))
}

func TestRenderCustomOptions(t *testing.T) {
	opts := timeline.Options{Quantum: time.Hour, LabelEvery: time.Hour, LaneWidth: 2}
	out := timeline.Render([]model.Span{span("p", at(9, 0), at(10, 0))}, dayWindow(), opts)
	assert.Equal(t, "08:00\n09:00 ██ p\n10:00\n", out)
}
