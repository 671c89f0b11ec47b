package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge/specforge/sheet"
)

func TestResolveMetadata_PrimarySectionFirst(t *testing.T) {
	primary := newHierSheet("Request", map[int]string{
		rowOperationName: "Account Inquiry",
		rowOperationID:   "",
		rowVersion:       "2.1",
	})
	secondary := newHierSheet("Response", map[int]string{
		rowOperationName: "SHOULD-NOT-WIN",
		rowOperationID:   "OP-1001",
	})
	shared := newHierSheet("Shared Header", map[int]string{
		rowOperationID: "OP-SHARED",
		rowCategory:    "Accounts",
	})

	p := New(nil)
	model, err := p.ParseSheets([]*sheet.Sheet{primary, secondary, shared}, "specs/account.xlsx")
	require.NoError(t, err)

	meta := model.Metadata
	assert.Equal(t, "Account Inquiry", meta.OperationName, "primary value wins over secondary")
	assert.Equal(t, "OP-1001", meta.OperationID, "blank primary cell falls back to secondary")
	assert.Equal(t, "2.1", meta.Version)
	assert.Equal(t, "Accounts", meta.Category, "shared section is the last fallback")
	assert.Equal(t, "specs/account.xlsx", meta.SourcePath)
	assert.Equal(t, ResolverVersion(), meta.ResolverVersion)
	assert.False(t, meta.ExtractedAt.IsZero())
}

func TestResolveMetadata_SharedSuppliedSeparately(t *testing.T) {
	primary := newHierSheet("Request", nil)
	shared := newHierSheet("Shared Header", map[int]string{rowService: "inquiry"})

	p := New(nil)
	model, err := p.ParseSheets([]*sheet.Sheet{primary, shared}, "specs/account.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "inquiry", model.Metadata.Service)
}
