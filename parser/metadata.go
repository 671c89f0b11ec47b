package parser

import (
	"time"

	"github.com/specforge/specforge/ir"
	"github.com/specforge/specforge/sheet"
)

// Document metadata lives at fixed cells in rows 1-7, column B.
const metadataColumn = 2

const (
	rowOperationName = 1
	rowOperationID   = 2
	rowVersion       = 3
	rowCategory      = 4
	rowComponent     = 5
	rowService       = 6
	rowDescription   = 7
)

// resolveMetadata extracts document-level metadata. Each cell falls back
// across sections in a fixed order: primary, then secondary, then shared.
// Only hierarchical-layout sheets carry the metadata block; fixed-format
// sheets start with their column header in row 1, so reading their cells
// would fabricate metadata out of header text and byte offsets.
func (p *Parser) resolveMetadata(sections *sheet.Sections, sourcePath string) *ir.Metadata {
	order := make([]*sheet.Sheet, 0, 3)
	for _, s := range []*sheet.Sheet{sections.Primary, sections.Secondary, sections.Shared} {
		if s != nil && p.detector.Detect(s) == sheet.LayoutHierarchical {
			order = append(order, s)
		}
	}
	cell := func(row int) string {
		for _, s := range order {
			if value := s.Cell(row, metadataColumn); value != "" {
				return value
			}
		}
		return ""
	}
	return &ir.Metadata{
		OperationName: cell(rowOperationName),
		OperationID:   cell(rowOperationID),
		Version:       cell(rowVersion),
		Category:      cell(rowCategory),
		Component:     cell(rowComponent),
		Service:       cell(rowService),
		Description:   cell(rowDescription),

		SourcePath:      sourcePath,
		ResolverVersion: ResolverVersion(),
		ExtractedAt:     time.Now().UTC(),
	}
}
