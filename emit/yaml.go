// Package emit renders a built MessageModel into its canonical serialized
// form and writes it out.
package emit

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/specforge/specforge/ir"
)

// Serializer emits the canonical YAML form of a model. The emission order of
// every mapping is fixed by explicit node construction, never by reflection
// or map iteration, and absent scalars are emitted as explicit nulls, so the
// same model always serializes to byte-identical output.
type Serializer struct{}

var _ ir.Emitter = (*Serializer)(nil)

// Emit renders the model.
func (s *Serializer) Emit(model *ir.MessageModel) ([]byte, error) {
	root := mapping()
	addPair(root, "operation", operationNode(model.Metadata))
	addPair(root, "source", sourceNode(model.Metadata))
	addPair(root, "sections", sectionsNode(model.Groups))

	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("serialize model: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("serialize model: %w", err)
	}
	return buf.Bytes(), nil
}

func operationNode(meta *ir.Metadata) *yaml.Node {
	node := mapping()
	addPair(node, "id", scalarOrNull(meta.OperationID))
	addPair(node, "name", scalarOrNull(meta.OperationName))
	addPair(node, "version", scalarOrNull(meta.Version))
	addPair(node, "category", scalarOrNull(meta.Category))
	addPair(node, "component", scalarOrNull(meta.Component))
	addPair(node, "service", scalarOrNull(meta.Service))
	addPair(node, "description", scalarOrNull(meta.Description))
	return node
}

// sourceNode emits provenance. The extraction timestamp is deliberately
// absent: repeated parses of the same input must stay byte-identical.
func sourceNode(meta *ir.Metadata) *yaml.Node {
	node := mapping()
	addPair(node, "path", scalarOrNull(meta.SourcePath))
	addPair(node, "resolverVersion", scalarOrNull(meta.ResolverVersion))
	return node
}

func sectionsNode(groups []*ir.FieldGroup) *yaml.Node {
	node := sequence()
	for _, group := range groups {
		entry := mapping()
		addPair(entry, "name", scalar(group.Section))
		fields := sequence()
		for _, root := range group.Roots {
			if root.Role == ir.RoleMarker {
				continue
			}
			fields.Content = append(fields.Content, fieldNode(root))
		}
		addPair(entry, "fields", fields)
		node.Content = append(node.Content, entry)
	}
	return node
}

// fieldNode emits one field with its subtree. Structural markers are not
// fields; their values surface on the parent as groupId and repeat.
func fieldNode(n *ir.FieldNode) *yaml.Node {
	node := mapping()
	addPair(node, "name", scalarOrNull(n.Identifier))
	addPair(node, "rawName", scalar(n.RawName))
	addPair(node, "role", scalar(n.Role.String()))
	addPair(node, "typeName", scalarOrNull(n.TypeName))
	addPair(node, "dataType", scalarOrNull(n.DataType))
	addPair(node, "length", scalarOrNull(n.Length))
	addPair(node, "optional", boolScalar(n.Optional))
	addPair(node, "default", scalarOrNull(n.Default))
	addPair(node, "description", scalarOrNull(n.Description))
	addPair(node, "groupId", scalarOrNull(n.GroupID))
	addPair(node, "repeat", repeatNode(n.Repeat))
	if n.Origin.ByteOffset >= 0 {
		addPair(node, "byteOffset", intScalar(n.Origin.ByteOffset))
	} else {
		addPair(node, "byteOffset", null())
	}

	children := sequence()
	for _, child := range n.NonMarkerChildren() {
		children.Content = append(children.Content, fieldNode(child))
	}
	addPair(node, "children", children)
	return node
}

func repeatNode(info *ir.ArrayInfo) *yaml.Node {
	if info == nil {
		return null()
	}
	node := mapping()
	addPair(node, "min", intScalar(info.Min))
	addPair(node, "max", intScalar(info.Max))
	return node
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func addPair(node *yaml.Node, key string, value *yaml.Node) {
	node.Content = append(node.Content, scalar(key), value)
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func scalarOrNull(v string) *yaml.Node {
	if v == "" {
		return null()
	}
	return scalar(v)
}

func boolScalar(v bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}
}

func intScalar(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}

func null() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
