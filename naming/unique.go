package naming

import (
	"fmt"

	"github.com/specforge/specforge/ir"
)

// DuplicateError reports the second occurrence of a derived identifier
// within one sibling scope.
type DuplicateError struct {
	Identifier string
	RawName    string
	Section    string
	Row        int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("section %q row %d: duplicate identifier %q derived from %q",
		e.Section, e.Row, e.Identifier, e.RawName)
}

// ApplyIdentifiers walks every group and assigns each non-marker node its
// derived identifier.
func ApplyIdentifiers(groups []*ir.FieldGroup, normalizer *Normalizer) {
	for _, group := range groups {
		group.Walk(func(node *ir.FieldNode) {
			if node.Role == ir.RoleMarker {
				return
			}
			node.Identifier = normalizer.Normalize(node.BaseName())
		})
	}
}

// CheckUnique verifies that no two siblings share a derived identifier.
// Scope is per parent (or per section for roots), never global: unrelated
// containers may each have a child with the same name. Markers and nodes
// without an identifier are ignored.
func CheckUnique(groups []*ir.FieldGroup) error {
	for _, group := range groups {
		if err := checkScope(group.Roots); err != nil {
			return err
		}
	}
	return nil
}

func checkScope(siblings []*ir.FieldNode) error {
	seen := make(map[string]bool, len(siblings))
	for _, node := range siblings {
		if node.Role != ir.RoleMarker && node.Identifier != "" {
			if seen[node.Identifier] {
				return &DuplicateError{
					Identifier: node.Identifier,
					RawName:    node.RawName,
					Section:    node.Origin.Section,
					Row:        node.Origin.Row,
				}
			}
			seen[node.Identifier] = true
		}
		if err := checkScope(node.Children); err != nil {
			return err
		}
	}
	return nil
}
