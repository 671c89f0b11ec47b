package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path"
	"strings"
)

// ReadCSV parses CSV bytes into a single Sheet. The section name is the file
// name with its extension stripped, so a file named Request.csv becomes the
// "Request" section.
func ReadCSV(data []byte, filename string) (*Sheet, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", filename, err)
	}

	base := path.Base(filename)
	name := strings.TrimSuffix(base, path.Ext(base))
	return &Sheet{Name: name, Rows: rows}, nil
}
