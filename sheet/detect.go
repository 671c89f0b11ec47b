package sheet

import (
	"errors"
	"strings"
)

// Layout identifies the recognized input layouts.
type Layout uint8

const (
	LayoutUnknown Layout = iota
	// LayoutHierarchical nests fields through a segment-level column.
	LayoutHierarchical
	// LayoutFixed addresses flat fields by byte start position.
	LayoutFixed
)

func (l Layout) String() string {
	switch l {
	case LayoutHierarchical:
		return "hierarchical"
	case LayoutFixed:
		return "fixed"
	}
	return "unknown"
}

// ErrAmbiguousLayout indicates a sheet matched neither recognized layout.
var ErrAmbiguousLayout = errors.New("ambiguous input layout")

// Detector decides which layout a sheet uses. Detection is layered: an
// explicit format tag in the section name wins, then the hierarchical header
// row is probed, then the fixed-format column signature.
type Detector struct {
	// Section-name tags that force fixed-format treatment.
	fixedTags []string
}

// NewDetector creates a Detector with the default tag set.
func NewDetector() *Detector {
	return &Detector{
		fixedTags: []string{"FIXED"},
	}
}

// Detect returns the layout of the sheet, or LayoutUnknown when neither
// layout's signature is present.
func (d *Detector) Detect(s *Sheet) Layout {
	name := strings.ToUpper(s.Name)
	for _, tag := range d.fixedTags {
		if strings.Contains(name, tag) {
			return LayoutFixed
		}
	}

	if _, err := MapColumns(s, HeaderRow, HierarchicalColumns); err == nil {
		return LayoutHierarchical
	}

	// No hierarchical header at row 8. A fixed-format sheet declares its
	// columns in row 1 where the hierarchical layout keeps metadata, with
	// byte offsets and a status column instead of a nesting depth.
	if cols, err := MapColumns(s, 1, FixedColumns); err == nil && !cols.Has(ColDepth) {
		return LayoutFixed
	}
	return LayoutUnknown
}
