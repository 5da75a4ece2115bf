package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Tiliavir/temps/internal/model"
)

// TimestampLayout is RFC3339 with a numeric offset, so every entry keeps the
// offset it was recorded with.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

var header = []string{"project", "start", "end"}

// Decode reads a tab-separated log. An optional header line is accepted and
// remembered. Timestamps may be any RFC3339 form. Bare quotes inside a
// project name are accepted; Encode writes them quoted.
func Decode(r io.Reader) (*Log, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	l := &Log{}
	openLine := 0
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &FormatError{Line: pe.Line, Reason: "malformed line", Err: pe.Err}
			}
			return nil, fmt.Errorf("reading log: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if isHeader(rec) {
				l.header = true
				continue
			}
		}

		if openLine != 0 {
			open := l.entries[len(l.entries)-1]
			return nil, &FormatError{Line: openLine, Project: open.Project, Reason: "ongoing entry is not the last line"}
		}

		e, err := decodeEntry(rec, line)
		if err != nil {
			return nil, err
		}
		if e.End == nil {
			openLine = line
		}
		l.entries = append(l.entries, e)
	}
	return l, nil
}

func isHeader(rec []string) bool {
	if len(rec) != len(header) {
		return false
	}
	for i := range rec {
		if rec[i] != header[i] {
			return false
		}
	}
	return true
}

func decodeEntry(rec []string, line int) (model.Entry, error) {
	if len(rec) != 3 {
		return model.Entry{}, &FormatError{Line: line, Reason: fmt.Sprintf("expected 3 tab-separated fields, got %d", len(rec))}
	}
	e := model.Entry{Project: rec[0]}
	if err := validProject(e.Project); err != nil {
		return model.Entry{}, &FormatError{Line: line, Project: e.Project, Reason: "invalid project name", Err: err}
	}

	start, err := time.Parse(time.RFC3339, rec[1])
	if err != nil {
		return model.Entry{}, &FormatError{Line: line, Project: e.Project, Reason: "invalid start timestamp", Err: err}
	}
	e.Start = start

	if rec[2] != "" {
		end, err := time.Parse(time.RFC3339, rec[2])
		if err != nil {
			return model.Entry{}, &FormatError{Line: line, Project: e.Project, Reason: "invalid end timestamp", Err: err}
		}
		if end.Before(start) {
			return model.Entry{}, &FormatError{Line: line, Project: e.Project, Reason: "invalid entry", Err: ErrEndBeforeStart}
		}
		e.End = &end
	}
	return e, nil
}

// validProject rejects names that cannot be written back unchanged.
func validProject(p string) error {
	if p == "" {
		return errors.New("empty project name")
	}
	if r, _ := utf8.DecodeRuneInString(p); unicode.IsSpace(r) {
		return errors.New("leading whitespace")
	}
	return nil
}

// Encode writes the log in the format read by Decode.
func (l *Log) Encode(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if l.header {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, e := range l.entries {
		end := ""
		if e.End != nil {
			end = e.End.Format(TimestampLayout)
		}
		if err := cw.Write([]string{e.Project, e.Start.Format(TimestampLayout), end}); err != nil {
			return fmt.Errorf("writing entry %q: %w", e.Project, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
