package sheet

import (
	"errors"
	"fmt"
	"strings"
)

// Recognized section names. The shared section may live in the same workbook
// or be supplied as a separate document.
const (
	SectionRequest = "Request"
	SectionShared  = "Shared Header"

	// SectionResponse is optional; some operations legitimately have none.
	SectionResponse = "Response"
)

// Hierarchical layout coordinates: rows 1-7 hold document metadata at fixed
// cells, row 8 is the column header row, data starts at row 9.
const (
	HeaderRow = 8
	DataRow   = 9
)

// Canonical column keys. Header cells are matched against these after
// normalization, so "Segment\nLevel" and "SEGMENT LEVEL" both resolve to
// ColDepth.
const (
	ColDepth       = "segmentlevel"
	ColFieldName   = "fieldname"
	ColDescription = "description"
	ColLength      = "length"
	ColDataType    = "datatype"

	// Optional hierarchical columns.
	ColOptional = "optional"
	ColDefault  = "defaultvalue"

	// Fixed-format columns.
	ColStartPos = "startposition"
	ColStatus   = "status"
)

// ErrMissingColumn indicates a required column was absent from a header row.
var ErrMissingColumn = errors.New("missing required column")

// columnAliases maps each canonical column key to the normalized header
// spellings that resolve to it.
var columnAliases = map[string][]string{
	ColDepth:       {"segmentlevel", "nestingdepth", "level"},
	ColFieldName:   {"fieldname", "field", "name"},
	ColDescription: {"description", "remarks"},
	ColLength:      {"length", "len"},
	ColDataType:    {"datatype", "type"},
	ColOptional:    {"optional"},
	ColDefault:     {"defaultvalue", "default", "hardcodedvalue"},
	ColStartPos:    {"startposition", "start", "offset"},
	ColStatus:      {"status"},
}

// HierarchicalColumns are required in the hierarchical layout's header row.
var HierarchicalColumns = []string{ColDepth, ColFieldName, ColDescription, ColLength, ColDataType}

// FixedColumns are required in the fixed layout's header row.
var FixedColumns = []string{ColFieldName, ColStartPos, ColLength, ColDataType, ColStatus}

// ColumnMap maps canonical column keys to 1-based column indexes.
type ColumnMap map[string]int

// Has reports whether the canonical column was found.
func (m ColumnMap) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// NormalizeHeader collapses a header cell to its canonical matching form:
// lowercased, with all whitespace (including newlines) removed.
func NormalizeHeader(cell string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(cell) {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '_' || r == '-' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

// MapColumns resolves the header row of a sheet into a ColumnMap and
// validates that every required column is present.
func MapColumns(s *Sheet, headerRow int, required []string) (ColumnMap, error) {
	result := ColumnMap{}
	for col, cell := range s.Row(headerRow) {
		normalized := NormalizeHeader(cell)
		if normalized == "" {
			continue
		}
		for key, aliases := range columnAliases {
			if result.Has(key) {
				continue
			}
			for _, alias := range aliases {
				if normalized == alias {
					result[key] = col + 1
					break
				}
			}
		}
	}
	for _, key := range required {
		if !result.Has(key) {
			return nil, fmt.Errorf("section %q row %d: %w: %s", s.Name, headerRow, ErrMissingColumn, key)
		}
	}
	return result, nil
}

// Sections groups the recognized sheets of one parse invocation.
type Sections struct {
	Primary   *Sheet
	Secondary *Sheet
	Shared    *Sheet

	// Unmatched holds sheets whose names match no recognized section; a
	// single unmatched sheet may still be a fixed-format primary.
	Unmatched []*Sheet
}

// Locate discovers the recognized sections among the given sheets. Section
// names are matched case-insensitively after trimming.
func Locate(sheets []*Sheet) *Sections {
	sections := &Sections{}
	for _, s := range sheets {
		switch strings.ToLower(strings.TrimSpace(s.Name)) {
		case strings.ToLower(SectionRequest):
			if sections.Primary == nil {
				sections.Primary = s
			}
		case strings.ToLower(SectionResponse):
			if sections.Secondary == nil {
				sections.Secondary = s
			}
		case strings.ToLower(SectionShared):
			if sections.Shared == nil {
				sections.Shared = s
			}
		default:
			sections.Unmatched = append(sections.Unmatched, s)
		}
	}
	return sections
}
