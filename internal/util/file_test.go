package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryWriteAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	assert.False(t, FileExists(path))

	require.NoError(t, TryWriteAtomic(path, []byte("first")))
	require.NoError(t, TryWriteAtomic(path, []byte("second")))
	assert.True(t, FileExists(path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(contents))

	err = TryWriteAtomic(filepath.Join(t.TempDir(), "missing", "table.txt"), []byte("x"))
	assert.Error(t, err)
}
