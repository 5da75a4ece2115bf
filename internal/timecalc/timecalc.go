package timecalc

import (
	"errors"
	"fmt"
	"time"
)

// ErrOffsetRange is returned for midnight offsets outside [0, 24h).
var ErrOffsetRange = errors.New("midnight offset must be between 00:00 and 23:59:59")

// Calendar maps instants to logical days. A logical day D starts at local
// midnight of D plus Offset and lasts until the same point of D+1.
type Calendar struct {
	Offset    time.Duration
	WeekStart time.Weekday
	Location  *time.Location
}

// ValidateOffset checks 0 <= offset < 24h.
func ValidateOffset(offset time.Duration) error {
	if offset < 0 || offset >= 24*time.Hour {
		return fmt.Errorf("%w (got %s)", ErrOffsetRange, offset)
	}
	return nil
}

// NewCalendar returns a Calendar, or ErrOffsetRange. A nil loc means time.Local.
func NewCalendar(offset time.Duration, weekStart time.Weekday, loc *time.Location) (Calendar, error) {
	if err := ValidateOffset(offset); err != nil {
		return Calendar{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	return Calendar{Offset: offset, WeekStart: weekStart, Location: loc}, nil
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Cutoff returns the instant at which logical day d begins.
func (c Calendar) Cutoff(d time.Time) time.Time {
	return atClock(d, c.Offset, c.loc())
}

// DayOf returns local midnight of the logical day containing t.
func (c Calendar) DayOf(t time.Time) time.Time {
	lt := t.In(c.loc())
	day := StartOfDay(lt)
	if lt.Before(c.Cutoff(day)) {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// Day returns the window [Cutoff(d), Cutoff(d+1)).
func (c Calendar) Day(d time.Time) Window {
	return Window{Start: c.Cutoff(d), End: c.Cutoff(d.AddDate(0, 0, 1))}
}

// WeekOf returns the first day of the week containing DayOf(t).
func (c Calendar) WeekOf(t time.Time) time.Time {
	day := c.DayOf(t)
	back := (int(day.Weekday()) - int(c.WeekStart) + 7) % 7
	return day.AddDate(0, 0, -back)
}

// Week returns the seven-day window starting at logical day first.
func (c Calendar) Week(first time.Time) Window {
	return Window{Start: c.Cutoff(first), End: c.Cutoff(first.AddDate(0, 0, 7))}
}

// Window is a half-open range [Start, End). A zero bound is unbounded.
type Window struct {
	Start time.Time
	End   time.Time
}

// Unbounded returns the window covering all time.
func Unbounded() Window {
	return Window{}
}

// Bounded reports whether both ends of the window are set.
func (w Window) Bounded() bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

// Clip intersects [start, end) with the window. ok is false when the
// intersection is empty.
func (w Window) Clip(start, end time.Time) (time.Time, time.Time, bool) {
	if !w.Start.IsZero() && start.Before(w.Start) {
		start = w.Start
	}
	if !w.End.IsZero() && end.After(w.End) {
		end = w.End
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// atClock returns the wall-clock time clock past midnight on d's date. Built
// from clock fields so DST days keep the requested clock time.
func atClock(d time.Time, clock time.Duration, loc *time.Location) time.Time {
	y, m, dd := d.Date()
	h := int(clock / time.Hour)
	mins := int(clock % time.Hour / time.Minute)
	secs := int(clock % time.Minute / time.Second)
	return time.Date(y, m, dd, h, mins, secs, int(clock%time.Second), loc)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
