// Package table renders aligned plain-text tables.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment of a column's cells.
type Alignment int

const (
	Left Alignment = iota
	Right
)

const gutter = "  "

// Table is a header plus rows. The header is repeated below the last rule
// so long listings stay readable at the bottom of a terminal.
type Table struct {
	headers    []string
	rows       [][]string
	alignments []Alignment
}

// New returns a table with left-aligned columns.
func New(headers ...string) *Table {
	return &Table{
		headers:    headers,
		alignments: make([]Alignment, len(headers)),
	}
}

// Align sets per-column alignment. Missing columns stay left-aligned.
func (t *Table) Align(alignments ...Alignment) *Table {
	copy(t.alignments, alignments)
	return t
}

// Row appends a row. Extra cells are dropped, missing cells are blank.
func (t *Table) Row(cells ...string) *Table {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func pad(s string, width int, a Alignment) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch a {
	case Right:
		return strings.Repeat(" ", gap) + s
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// String renders the table. Lines carry no trailing whitespace.
func (t *Table) String() string {
	widths := t.widths()
	var b strings.Builder

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = pad(c, widths[i], t.alignments[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, gutter), " "))
		b.WriteByte('\n')
	}
	writeRule := func() {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("-", w)
		}
		b.WriteString(strings.Join(parts, gutter))
		b.WriteByte('\n')
	}

	writeRow(t.headers)
	writeRule()
	for _, row := range t.rows {
		writeRow(row)
	}
	writeRule()
	writeRow(t.headers)
	return b.String()
}
