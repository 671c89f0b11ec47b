// Package sheet provides the tabular input layer: a format-neutral cell grid,
// readers for workbook (xlsx) and CSV sources, section discovery and input
// layout detection.
package sheet

import "strings"

// Sheet is one named section of a source document as a plain cell grid.
// Rows and cells are addressed 1-based, matching spreadsheet conventions.
type Sheet struct {
	Name string
	Rows [][]string
}

// RowCount returns the number of rows in the sheet.
func (s *Sheet) RowCount() int {
	return len(s.Rows)
}

// Row returns the cells of the 1-based row index, or nil when out of range.
func (s *Sheet) Row(row int) []string {
	if row < 1 || row > len(s.Rows) {
		return nil
	}
	return s.Rows[row-1]
}

// Cell returns the trimmed value at the 1-based row/column coordinates, or
// the empty string when out of range. Short rows are treated as padded with
// empty cells.
func (s *Sheet) Cell(row, col int) string {
	cells := s.Row(row)
	if cells == nil || col < 1 || col > len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col-1])
}

// RowEmpty reports whether every cell of the 1-based row is blank.
func (s *Sheet) RowEmpty(row int) bool {
	for _, cell := range s.Row(row) {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
