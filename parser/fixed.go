package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specforge/specforge/ir"
	"github.com/specforge/specforge/sheet"
)

// parseFixed ingests a fixed-format section: a flat layout addressing fields
// by byte start position instead of nesting depth. The header is row 1 and
// every following row is a field. All nodes come out at depth 1 with the
// plain-field role, so downstream consumers never distinguish origin format.
func (p *Parser) parseFixed(s *sheet.Sheet) (*ir.FieldGroup, error) {
	cols, err := sheet.MapColumns(s, 1, sheet.FixedColumns)
	if err != nil {
		return nil, err
	}

	group := &ir.FieldGroup{Section: s.Name}
	for row := 2; row <= s.RowCount(); row++ {
		if s.RowEmpty(row) {
			continue
		}
		rawName := s.Cell(row, cols[sheet.ColFieldName])

		offsetCell := s.Cell(row, cols[sheet.ColStartPos])
		offset, err := strconv.Atoi(offsetCell)
		if err != nil || offset < 0 {
			return nil, rowError(s.Name, row, rawName,
				fmt.Errorf("bad start position %q", offsetCell))
		}

		group.Roots = append(group.Roots, &ir.FieldNode{
			RawName:  rawName,
			Depth:    1,
			Length:   s.Cell(row, cols[sheet.ColLength]),
			DataType: mapFixedType(s.Cell(row, cols[sheet.ColDataType])),
			Optional: fixedStatusOptional(s.Cell(row, cols[sheet.ColStatus])),
			Role:     ir.RolePlainField,
			Origin:   ir.Origin{Section: s.Name, Row: row, ByteOffset: offset},
		})
	}
	return group, nil
}

// mapFixedType maps the fixed-format type vocabulary onto the canonical
// data-type codes used by the hierarchical layout. Unrecognized codes pass
// through verbatim rather than being rejected.
func mapFixedType(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "AN", "A":
		return "String"
	case "N":
		return "Number"
	case "B":
		return "Binary"
	}
	return code
}

// fixedStatusOptional maps the fixed-format status vocabulary: M(andatory)
// is required, O(ptional) and C(onditional) are optional. Unrecognized codes
// default to required.
func fixedStatusOptional(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "O", "C":
		return true
	}
	return false
}
