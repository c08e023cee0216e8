// Package types contains shared types used across multiple packages to avoid import cycles.
package types

import "strings"

// Table is the raw cell text of one worksheet. Header holds the first row;
// Rows holds every following row. Rows may be shorter than Header when
// trailing cells are empty.
type Table struct {
	Source string // file name the table was read from
	Sheet  string
	Header []string
	Rows   [][]string
}

// Width returns the number of columns spanned by the header or any row.
func (t *Table) Width() int {
	width := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// ColumnIndex returns the index of the header cell equal to name after
// trimming surrounding whitespace, or -1 if there is none.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed cell text at row/col, or "" when out of range.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// IsBlankRow reports whether every cell of the row is empty.
func (t *Table) IsBlankRow(row int) bool {
	if row < 0 || row >= len(t.Rows) {
		return true
	}
	for _, cell := range t.Rows[row] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
