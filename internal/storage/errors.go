package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/Tiliavir/temps/internal/model"
)

var (
	// ErrNoOpenEntry is returned by Close and Cancel when no timer is running.
	ErrNoOpenEntry = errors.New("no ongoing entry")
	// ErrEndBeforeStart is returned by Close when end precedes the start.
	ErrEndBeforeStart = errors.New("end is before start")
)

// FormatError reports a malformed line of the log.
type FormatError struct {
	Line    int
	Project string
	Reason  string
	Err     error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("line %d", e.Line)
	if e.Project != "" {
		msg += fmt.Sprintf(" (%s)", e.Project)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ConflictError is returned when a new entry is appended while another one
// is still open. Close the open entry first.
type ConflictError struct {
	Open model.Entry
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("entry %q started at %s is still ongoing; stop it first",
		e.Open.Project, e.Open.Start.Format(time.RFC3339))
}
