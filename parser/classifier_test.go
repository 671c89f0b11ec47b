package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge/specforge/config"
	"github.com/specforge/specforge/ir"
	"github.com/specforge/specforge/sheet"
)

func parseRequest(t *testing.T, p *Parser, dataRows ...[]string) *ir.FieldGroup {
	t.Helper()
	model, err := p.ParseSheets([]*sheet.Sheet{newHierSheet("Request", nil, dataRows...)}, "test.xlsx")
	require.NoError(t, err)
	group := model.GetGroup("Request")
	require.NotNil(t, group)
	return group
}

func TestClassifier_PlainFieldAndObject(t *testing.T) {
	group := parseRequest(t, New(nil),
		[]string{"1", "DOMICILE_BRANCH", "Branch code", "10", "String"},
		[]string{"1", "customerInfo:CustomerInfo", "", "", ""},
		[]string{"2", "FIRST_NAME", "Given name", "20", "String"},
	)

	require.Len(t, group.Roots, 2)

	branch := group.Roots[0]
	assert.Equal(t, ir.RolePlainField, branch.Role)
	assert.Equal(t, "domicileBranch", branch.Identifier)
	assert.Equal(t, "10", branch.Length)
	assert.Equal(t, "String", branch.DataType)

	info := group.Roots[1]
	assert.Equal(t, ir.RoleObject, info.Role)
	assert.Equal(t, "CustomerInfo", info.TypeName)
	assert.Equal(t, "customerInfo", info.Identifier)
	require.Len(t, info.Children, 1)
	assert.Equal(t, "firstName", info.Children[0].Identifier)
}

func TestClassifier_RepeatMarkerReclassifiesToArray(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		wantRole ir.Role
		optional bool
	}{
		{name: "repeating", expr: "0..9", wantRole: ir.RoleArray, optional: true},
		{name: "single occurrence stays object", expr: "1..1", wantRole: ir.RoleObject},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			group := parseRequest(t, New(nil),
				[]string{"1", "items:Item", "", "", ""},
				[]string{"2", "REPEAT_COUNT", tc.expr, "", ""},
				[]string{"2", "ITEM_NAME", "", "20", "String"},
			)

			require.Len(t, group.Roots, 1)
			items := group.Roots[0]
			assert.Equal(t, tc.wantRole, items.Role)
			assert.Equal(t, "Item", items.TypeName, "element type survives reclassification")
			assert.Equal(t, tc.expr, items.RepeatExpr)
			require.NotNil(t, items.Repeat)
			assert.Equal(t, tc.optional, items.Optional)

			// The marker stays in the tree for downstream lookups but never
			// counts as a field and never gets an identifier.
			require.Len(t, items.Children, 2)
			marker := items.Children[0]
			assert.Equal(t, ir.RoleMarker, marker.Role)
			assert.Empty(t, marker.Identifier)
			assert.Len(t, items.NonMarkerChildren(), 1)
		})
	}
}

func TestClassifier_LegacyAndConfiguredRepeatSpellings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RepeatMarkerAliases = []string{"loop_count"}

	for _, spelling := range []string{"REPEAT_COUNT", "repeat_count", "REPEAT_CUONT", "LOOP_COUNT"} {
		t.Run(spelling, func(t *testing.T) {
			group := parseRequest(t, New(cfg),
				[]string{"1", "items:Item", "", "", ""},
				[]string{"2", spelling, "0..5", "", ""},
				[]string{"2", "ITEM_NAME", "", "20", "String"},
			)
			assert.Equal(t, ir.RoleArray, group.Roots[0].Role)
		})
	}
}

func TestClassifier_GroupMarker(t *testing.T) {
	group := parseRequest(t, New(nil),
		[]string{"1", "order:Order", "", "", ""},
		[]string{"2", "GROUP_ID", "G-77", "", ""},
		[]string{"2", "ORDER_ID", "", "10", "String"},
	)

	order := group.Roots[0]
	assert.Equal(t, ir.RoleObject, order.Role)
	assert.Equal(t, "G-77", order.GroupID)
	require.NotNil(t, order.GroupMarker())
	assert.Equal(t, "G-77", order.GroupMarker().GroupID)
}

func TestClassifier_MalformedRepeatFallsBack(t *testing.T) {
	group := parseRequest(t, New(nil),
		[]string{"1", "items:Item", "", "", ""},
		[]string{"2", "REPEAT_COUNT", "many", "", ""},
		[]string{"2", "ITEM_NAME", "", "20", "String"},
	)

	items := group.Roots[0]
	assert.Equal(t, ir.RoleObject, items.Role, "malformed repeat count never promotes to array")
	assert.Nil(t, items.Repeat)
}

func TestClassifier_ContainerWithoutChildrenKeepsPlainRole(t *testing.T) {
	group := parseRequest(t, New(nil),
		[]string{"1", "empty:Empty", "", "", ""},
	)

	empty := group.Roots[0]
	assert.Equal(t, ir.RolePlainField, empty.Role, "role assignment is withheld without non-marker children")
	assert.Equal(t, "Empty", empty.TypeName)
}

func TestClassifier_BadContainerName(t *testing.T) {
	for _, raw := range []string{"x:", ":Foo", "a:b:c"} {
		t.Run(raw, func(t *testing.T) {
			p := New(nil)
			_, err := p.ParseSheets([]*sheet.Sheet{newHierSheet("Request", nil,
				[]string{"1", raw, "", "", ""},
			)}, "test.xlsx")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadContainerName)
		})
	}
}

func TestClassifier_NameWithSeparatorButTypedColumnsIsPlain(t *testing.T) {
	group := parseRequest(t, New(nil),
		[]string{"1", "RATIO:PCT", "", "5", "String"},
	)

	node := group.Roots[0]
	assert.Equal(t, ir.RolePlainField, node.Role)
	assert.Empty(t, node.TypeName, "non-empty length and data type rule out the container pattern")
}
