package parser

import (
	"github.com/specforge/specforge/sheet"
)

// newHierSheet builds a hierarchical-layout sheet: metadata values in column
// B of rows 1-7, the standard header in row 8 and the given data rows from
// row 9. Data rows are {segment level, field name, description, length,
// data type}.
func newHierSheet(name string, meta map[int]string, dataRows ...[]string) *sheet.Sheet {
	rows := make([][]string, 0, sheet.HeaderRow+len(dataRows))
	for row := 1; row < sheet.HeaderRow; row++ {
		rows = append(rows, []string{"", meta[row]})
	}
	rows = append(rows, []string{"Segment Level", "Field Name", "Description", "Length", "Data Type"})
	rows = append(rows, dataRows...)
	return &sheet.Sheet{Name: name, Rows: rows}
}
