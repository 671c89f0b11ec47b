package ir

// FieldGroup holds the ordered root nodes of one document section.
type FieldGroup struct {
	Section string       // Section (sheet) name
	Roots   []*FieldNode // Root nodes in authoring order
}

// Walk visits every node of the group in depth-first order.
func (g *FieldGroup) Walk(visit func(node *FieldNode)) {
	for _, root := range g.Roots {
		root.Walk(visit)
	}
}

// MessageModel is the fully built IR for one parsed document: document-level
// metadata plus one group per recognized section.
type MessageModel struct {
	Metadata *Metadata
	Groups   []*FieldGroup

	groupMap map[string]int // Groups indexed by section name
}

// AddGroup appends a group preserving section order.
func (m *MessageModel) AddGroup(group *FieldGroup) {
	if m.groupMap == nil {
		m.groupMap = make(map[string]int)
	}
	m.groupMap[group.Section] = len(m.Groups)
	m.Groups = append(m.Groups, group)
}

// GetGroup retrieves a group by section name.
func (m *MessageModel) GetGroup(section string) *FieldGroup {
	if m.groupMap == nil {
		return nil
	}
	if idx, ok := m.groupMap[section]; ok && idx < len(m.Groups) {
		return m.Groups[idx]
	}
	return nil
}
