package ir

import "strings"

// TypeSeparator introduces an explicit type name inside a raw field name,
// marking the row as a container candidate, e.g. "customerInfo:CustomerInfo".
const TypeSeparator = ":"

// Role identifies the semantic category assigned to a FieldNode once
// classification has completed.
type Role uint8

const (
	// RolePlainField is a leaf field carrying a value.
	RolePlainField Role = iota
	// RoleObject is a container of named child fields.
	RoleObject
	// RoleArray is a repeating container; TypeName names the element type.
	RoleArray
	// RoleMarker is a structural row (group identifier or repeat count) that
	// annotates its parent container and is never emitted as a field.
	RoleMarker
)

func (r Role) String() string {
	switch r {
	case RolePlainField:
		return "field"
	case RoleObject:
		return "object"
	case RoleArray:
		return "array"
	case RoleMarker:
		return "marker"
	}
	return "unknown"
}

// Origin records where a node came from in the source document.
type Origin struct {
	Section    string // Section (sheet) name
	Row        int    // 1-based row number in the source sheet
	ByteOffset int    // Byte start position for fixed-format input, -1 otherwise
}

// FieldNode is the unit of the IR tree.
type FieldNode struct {
	RawName     string     // Name as authored in the source document
	Identifier  string     // Derived identifier; empty until normalized, never set on markers
	TypeName    string     // Explicit type name for container candidates
	Depth       int        // Declared nesting depth, 1 = root
	Length      string     // Length constraint, empty when absent
	DataType    string     // Declared data-type code
	Optional    bool       // Whether the field may be omitted
	Default     string     // Hard-coded/default value, empty when absent
	Description string     // Description-column text
	GroupID     string     // Group identifier carried by a marker node
	RepeatExpr  string     // Raw repeat-count expression carried by a marker node
	Repeat      *ArrayInfo // Parsed repeat-count, nil unless parsed successfully
	Role        Role       // Final semantic role
	Origin      Origin     // Source provenance
	Children    []*FieldNode

	childMap map[string]int // Children indexed by raw name for quick lookup
}

// AddChild appends a child preserving authoring order. When siblings share a
// raw name the lookup index keeps the first occurrence; the duplicate itself
// is surfaced later when derived identifiers are checked.
func (n *FieldNode) AddChild(child *FieldNode) {
	if n.childMap == nil {
		n.childMap = make(map[string]int)
	}
	if _, ok := n.childMap[child.RawName]; !ok {
		n.childMap[child.RawName] = len(n.Children)
	}
	n.Children = append(n.Children, child)
}

// GetChild retrieves a direct child by its raw name.
func (n *FieldNode) GetChild(rawName string) *FieldNode {
	if n.childMap == nil {
		return nil
	}
	if idx, ok := n.childMap[rawName]; ok && idx < len(n.Children) {
		return n.Children[idx]
	}
	return nil
}

// BaseName returns the name portion identifiers are derived from: the raw
// name up to the type separator for container candidates, the whole raw name
// otherwise.
func (n *FieldNode) BaseName() string {
	if n.TypeName != "" {
		if idx := strings.Index(n.RawName, TypeSeparator); idx >= 0 {
			return n.RawName[:idx]
		}
	}
	return n.RawName
}

// NonMarkerChildren returns the children that represent actual fields.
func (n *FieldNode) NonMarkerChildren() []*FieldNode {
	var result []*FieldNode
	for _, child := range n.Children {
		if child.Role == RoleMarker {
			continue
		}
		result = append(result, child)
	}
	return result
}

// RepeatMarker returns the first direct marker child carrying a repeat-count
// expression, or nil.
func (n *FieldNode) RepeatMarker() *FieldNode {
	for _, child := range n.Children {
		if child.Role == RoleMarker && child.RepeatExpr != "" {
			return child
		}
	}
	return nil
}

// GroupMarker returns the first direct marker child carrying a group
// identifier, or nil.
func (n *FieldNode) GroupMarker() *FieldNode {
	for _, child := range n.Children {
		if child.Role == RoleMarker && child.GroupID != "" {
			return child
		}
	}
	return nil
}

// Walk visits the node and every descendant in depth-first order.
func (n *FieldNode) Walk(visit func(node *FieldNode)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}
