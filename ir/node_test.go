package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldNode_AddChildKeepsOrder(t *testing.T) {
	parent := &FieldNode{RawName: "order:Order"}
	parent.AddChild(&FieldNode{RawName: "AMOUNT"})
	parent.AddChild(&FieldNode{RawName: "CURRENCY"})

	require.Len(t, parent.Children, 2)
	assert.Equal(t, "AMOUNT", parent.Children[0].RawName)
	assert.Equal(t, "CURRENCY", parent.Children[1].RawName)
	assert.Same(t, parent.Children[1], parent.GetChild("CURRENCY"))
	assert.Nil(t, parent.GetChild("MISSING"))
}

func TestFieldNode_GetChildDuplicateRawName(t *testing.T) {
	parent := &FieldNode{RawName: "order:Order"}
	first := &FieldNode{RawName: "AMOUNT", Origin: Origin{Row: 10}}
	second := &FieldNode{RawName: "AMOUNT", Origin: Origin{Row: 11}}
	parent.AddChild(first)
	parent.AddChild(second)

	require.Len(t, parent.Children, 2, "both occurrences keep their authoring position")
	assert.Same(t, first, parent.GetChild("AMOUNT"), "lookup stays on the first occurrence")
}
