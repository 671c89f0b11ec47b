package parser

import (
	"fmt"
	"strings"

	"github.com/specforge/specforge/ir"
)

// Reserved structural-marker names, matched case-insensitively.
const (
	// groupMarkerName rows carry the group identifier of their parent
	// container in the description column.
	groupMarkerName = "GROUP_ID"

	// repeatMarkerName rows carry the parent's repeat-count expression.
	repeatMarkerName = "REPEAT_COUNT"

	// repeatMarkerLegacy is a misspelling present in legacy documents and
	// accepted for compatibility.
	repeatMarkerLegacy = "REPEAT_CUONT"
)

// classify assigns each node of the group its final role, then runs the
// post-order pass that turns containers with a repeating marker child into
// arrays.
func (p *Parser) classify(group *ir.FieldGroup) error {
	for _, root := range group.Roots {
		var err error
		root.Walk(func(node *ir.FieldNode) {
			if err == nil {
				err = p.classifyNode(node)
			}
		})
		if err != nil {
			return err
		}
	}
	for _, root := range group.Roots {
		reclassifyContainers(root)
	}
	return nil
}

// classifyNode applies the classification rules in priority order: group
// marker, repeat marker, container pattern, plain field.
func (p *Parser) classifyNode(node *ir.FieldNode) error {
	name := strings.ToUpper(strings.TrimSpace(node.RawName))

	if name == groupMarkerName {
		node.Role = ir.RoleMarker
		node.GroupID = node.Description
		return nil
	}

	if p.isRepeatMarker(name) {
		node.Role = ir.RoleMarker
		node.RepeatExpr = node.Description
		info, err := ir.ParseArrayInfo(node.RepeatExpr)
		if err != nil {
			// Low-risk condition: fall back to "not an array" rather than
			// aborting the parse.
			p.cfg.Logger.Warn("malformed repeat count, treating parent as non-array",
				"section", node.Origin.Section, "row", node.Origin.Row, "error", err)
			return nil
		}
		node.Repeat = info
		return nil
	}

	if strings.Contains(node.RawName, ir.TypeSeparator) && node.Length == "" && node.DataType == "" {
		parts := strings.Split(node.RawName, ir.TypeSeparator)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return rowError(node.Origin.Section, node.Origin.Row, node.RawName,
				fmt.Errorf("%w: %q must be name%sTypeName", ErrBadContainerName, node.RawName, ir.TypeSeparator))
		}
		node.TypeName = strings.TrimSpace(parts[1])
		return nil
	}

	node.Role = ir.RolePlainField
	return nil
}

func (p *Parser) isRepeatMarker(name string) bool {
	if name == repeatMarkerName || name == repeatMarkerLegacy {
		return true
	}
	for _, alias := range p.cfg.RepeatMarkerAliases {
		if name == strings.ToUpper(strings.TrimSpace(alias)) {
			return true
		}
	}
	return false
}

// reclassifyContainers runs post-order so every container sees its fully
// classified children. A container candidate with at least one non-marker
// child becomes an object, and an array when its repeat marker declares a
// maximum above one. A candidate with no non-marker children keeps the plain
// field role: role assignment is withheld rather than guessed.
func reclassifyContainers(node *ir.FieldNode) {
	for _, child := range node.Children {
		reclassifyContainers(child)
	}
	if node.TypeName == "" || node.Role == ir.RoleMarker {
		return
	}
	if len(node.NonMarkerChildren()) == 0 {
		return
	}
	node.Role = ir.RoleObject

	if marker := node.GroupMarker(); marker != nil {
		node.GroupID = marker.GroupID
	}
	if marker := node.RepeatMarker(); marker != nil && marker.Repeat != nil {
		node.RepeatExpr = marker.RepeatExpr
		node.Repeat = marker.Repeat
		if marker.Repeat.IsArray() {
			node.Role = ir.RoleArray
		}
		if marker.Repeat.IsOptional() {
			node.Optional = true
		}
	}
}
