package model

import "time"

// Entry represents a single tracked interval against a project.
// End is nil while the entry is the running timer.
type Entry struct {
	Project string     `json:"project"`
	Start   time.Time  `json:"start"`
	End     *time.Time `json:"end"`
}

// IsOngoing reports whether the entry is still tracking time.
func (e Entry) IsOngoing() bool {
	return e.End == nil
}

// EndOr returns the recorded end, or now for the running entry.
func (e Entry) EndOr(now time.Time) time.Time {
	if e.End == nil {
		return now
	}
	return *e.End
}

// Span returns the entry's time range, valuing an open entry up to now.
func (e Entry) Span(now time.Time) Span {
	return Span{Project: e.Project, Start: e.Start, End: e.EndOr(now)}
}

// Span is a closed time range attributed to a project.
type Span struct {
	Project string
	Start   time.Time
	End     time.Time
}

// Duration returns End - Start, never negative.
func (s Span) Duration() time.Duration {
	if s.End.Before(s.Start) {
		return 0
	}
	return s.End.Sub(s.Start)
}

// Open returns the open entry of an append-ordered sequence: the last
// element, if its end is absent.
func Open(entries []Entry) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}
	last := entries[len(entries)-1]
	if !last.IsOngoing() {
		return Entry{}, false
	}
	return last, true
}
