package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge/specforge/ir"
	"github.com/specforge/specforge/naming"
	"github.com/specforge/specforge/sheet"
)

const requestCSV = `,Account Inquiry
,OP-1001
,2.1
,Accounts
,Core
,inquiry
,Returns account data for a customer
Segment Level,Field Name,Description,Length,Data Type
1,DOMICILE_BRANCH,Branch code,10,String
1,customerInfo:CustomerInfo,,,
2,FIRST_NAME,Given name,20,String
2,LAST_NAME,Family name,20,String
`

const sharedCSV = `,
,
,
,
,
,
,
Segment Level,Field Name,Description,Length,Data Type
1,MESSAGE_ID,Correlation id,36,String
`

func TestParser_ParseFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Request.csv")
	require.NoError(t, os.WriteFile(src, []byte(requestCSV), 0644))
	shared := filepath.Join(dir, "Shared Header.csv")
	require.NoError(t, os.WriteFile(shared, []byte(sharedCSV), 0644))

	p := New(nil)
	model, err := p.ParseFile(context.Background(), src, shared)
	require.NoError(t, err)

	assert.Equal(t, "OP-1001", model.Metadata.OperationID)
	assert.Equal(t, "Account Inquiry", model.Metadata.OperationName)
	assert.Equal(t, src, model.Metadata.SourcePath)

	require.Len(t, model.Groups, 2, spew.Sdump(model.Groups))

	request := model.GetGroup("Request")
	require.NotNil(t, request)
	require.Len(t, request.Roots, 2)
	info := request.Roots[1]
	assert.Equal(t, ir.RoleObject, info.Role)
	require.Len(t, info.Children, 2)
	assert.Equal(t, "firstName", info.Children[0].Identifier)
	assert.Equal(t, "lastName", info.Children[1].Identifier)

	sharedGroup := model.GetGroup("Shared Header")
	require.NotNil(t, sharedGroup)
	require.Len(t, sharedGroup.Roots, 1)
	assert.Equal(t, "messageId", sharedGroup.Roots[0].Identifier)
}

func TestParser_ParseFile_WrongExtension(t *testing.T) {
	p := New(nil)
	_, err := p.ParseFile(context.Background(), "spec.docx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadFile)
}

func TestParser_ParseFile_MissingFile(t *testing.T) {
	p := New(nil)
	_, err := p.ParseFile(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadFile)
}

func TestParser_DuplicateIdentifierAborts(t *testing.T) {
	p := New(nil)
	_, err := p.ParseSheets([]*sheet.Sheet{newHierSheet("Request", nil,
		[]string{"1", "CUSTOMER_NAME", "", "10", "String"},
		[]string{"1", "customerName", "", "10", "String"},
	)}, "dup.xlsx")
	require.Error(t, err)

	var dup *naming.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "customerName", dup.Identifier)
	assert.Equal(t, 10, dup.Row, "the second occurrence is reported")
}
