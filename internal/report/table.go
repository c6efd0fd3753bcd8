package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  func(value string) string // optional, applied after width is measured
}

// Table renders aligned text tables.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Extra values are dropped and missing ones render empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Render writes the header, a dashed separator and every row to w.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}
	widths := t.widths()

	header := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = colorBold.Sprint(pad(col.Header, widths[i], col.Align))
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, sep); err != nil {
		return err
	}

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			val := row[i]
			display := val
			if col.Color != nil {
				display = col.Color(val)
			}
			// Pad on the raw width so ANSI codes do not skew alignment.
			padding := strings.Repeat(" ", widths[i]-cellWidth(val))
			if col.Align == AlignRight {
				cells[i] = padding + display
			} else {
				cells[i] = display + padding
			}
		}
		if err := writeLine(w, cells); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = cellWidth(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], cellWidth(cell))
		}
	}
	return widths
}

// cellWidth counts runes, matching how fmt measures padding widths.
func cellWidth(s string) int {
	return utf8.RuneCountInString(s)
}

func pad(s string, width int, align Alignment) string {
	if align == AlignRight {
		return fmt.Sprintf("%*s", width, s)
	}
	return fmt.Sprintf("%-*s", width, s)
}

func writeLine(w io.Writer, cells []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(cells, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
