package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specforge/specforge/ir"
	"github.com/specforge/specforge/sheet"
)

// buildHierarchy reconstructs the field tree of one hierarchical-layout
// section in a single pass over its data rows, using an explicit stack of
// open container candidates.
//
// A depth may drop by any amount (context pops back to an ancestor) but may
// only grow by one: a larger increase implies an undeclared intermediate
// container and fails immediately. An empty section yields an empty group.
func (p *Parser) buildHierarchy(s *sheet.Sheet, cols sheet.ColumnMap) (*ir.FieldGroup, error) {
	group := &ir.FieldGroup{Section: s.Name}

	var stack []*ir.FieldNode
	prevDepth := 0
	for row := sheet.DataRow; row <= s.RowCount(); row++ {
		if s.RowEmpty(row) {
			continue
		}
		rawName := s.Cell(row, cols[sheet.ColFieldName])

		depthCell := s.Cell(row, cols[sheet.ColDepth])
		depth, err := strconv.Atoi(depthCell)
		if err != nil || depth < 1 {
			return nil, rowError(s.Name, row, rawName,
				fmt.Errorf("%w: %q", ErrBadDepth, depthCell))
		}
		if depth > prevDepth+1 {
			return nil, rowError(s.Name, row, rawName,
				fmt.Errorf("%w: %d after %d", ErrDepthJump, depth, prevDepth))
		}
		if depth > p.cfg.MaxDepth {
			p.cfg.Logger.Warn("segment level beyond configured maximum",
				"section", s.Name, "row", row, "depth", depth, "max", p.cfg.MaxDepth)
		}

		node := &ir.FieldNode{
			RawName:     rawName,
			Depth:       depth,
			Length:      s.Cell(row, cols[sheet.ColLength]),
			DataType:    s.Cell(row, cols[sheet.ColDataType]),
			Description: s.Cell(row, cols[sheet.ColDescription]),
			Origin:      ir.Origin{Section: s.Name, Row: row, ByteOffset: -1},
		}
		if col, ok := cols[sheet.ColOptional]; ok {
			node.Optional = parseOptional(s.Cell(row, col))
		}
		if col, ok := cols[sheet.ColDefault]; ok {
			node.Default = s.Cell(row, col)
		}

		// Pop closed containers before attaching.
		for len(stack) > 0 && stack[len(stack)-1].Depth >= depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			group.Roots = append(group.Roots, node)
		} else {
			stack[len(stack)-1].AddChild(node)
		}

		// Names carrying an explicit type open a tentative container; the
		// classifier decides object vs. array once children are known.
		if strings.Contains(rawName, ir.TypeSeparator) {
			stack = append(stack, node)
		}
		prevDepth = depth
	}
	return group, nil
}

// parseOptional maps the hierarchical layout's optionality vocabulary.
func parseOptional(cell string) bool {
	switch strings.ToUpper(strings.TrimSpace(cell)) {
	case "Y", "YES", "O", "OPTIONAL", "TRUE", "1":
		return true
	}
	return false
}
