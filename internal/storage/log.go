package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tiliavir/temps/internal/model"
)

// Log is the ordered sequence of entries held in the tracking file. Only its
// last element may be open.
type Log struct {
	entries []model.Entry
	header  bool
}

// NewLog returns a log holding entries, which must satisfy the open-entry
// invariant. New logs are written with a header line.
func NewLog(entries ...model.Entry) *Log {
	return &Log{entries: append([]model.Entry(nil), entries...), header: true}
}

// Entries returns a copy of the entries in append order.
func (l *Log) Entries() []model.Entry {
	return append([]model.Entry(nil), l.entries...)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Last returns the most recently appended entry.
func (l *Log) Last() (model.Entry, bool) {
	if len(l.entries) == 0 {
		return model.Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Open returns the running entry, if any.
func (l *Log) Open() (model.Entry, bool) {
	return model.Open(l.entries)
}

// Append starts a new open entry for project, trimmed of surrounding
// whitespace. It fails with a *ConflictError while another entry is open.
func (l *Log) Append(project string, start time.Time) (model.Entry, error) {
	if open, ok := l.Open(); ok {
		return model.Entry{}, &ConflictError{Open: open}
	}
	project = strings.TrimSpace(project)
	if err := validProject(project); err != nil {
		return model.Entry{}, fmt.Errorf("invalid project name %q: %w", project, err)
	}
	e := model.Entry{Project: project, Start: start.Truncate(time.Second)}
	l.entries = append(l.entries, e)
	return e, nil
}

// Close sets the end of the open entry and returns it.
func (l *Log) Close(end time.Time) (model.Entry, error) {
	if _, ok := l.Open(); !ok {
		return model.Entry{}, ErrNoOpenEntry
	}
	last := &l.entries[len(l.entries)-1]
	end = end.Truncate(time.Second)
	if end.Before(last.Start) {
		return model.Entry{}, fmt.Errorf("stopping %q at %s: %w",
			last.Project, end.Format(time.RFC3339), ErrEndBeforeStart)
	}
	last.End = &end
	return *last, nil
}

// Cancel removes the open entry and returns it.
func (l *Log) Cancel() (model.Entry, error) {
	open, ok := l.Open()
	if !ok {
		return model.Entry{}, ErrNoOpenEntry
	}
	l.entries = l.entries[:len(l.entries)-1]
	return open, nil
}
