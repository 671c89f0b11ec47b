package emit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge/specforge/emit"
)

func TestWrite_CreatesParentDirectories(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out", "nested", "ir.yaml")

	require.NoError(t, emit.Write(context.Background(), dest, []byte("x: 1\n")))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "x: 1\n", string(data))
}
