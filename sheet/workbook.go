package sheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook parses xlsx workbook bytes into one Sheet per worksheet,
// preserving worksheet order. The workbook handle is closed before return on
// every path.
func ReadWorkbook(data []byte) ([]*Sheet, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer book.Close()

	var sheets []*Sheet
	for _, name := range book.GetSheetList() {
		rows, err := book.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read worksheet %q: %w", name, err)
		}
		sheets = append(sheets, &Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}
