package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNestedDir(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b")

	got, err := EnsureDir(target)
	require.NoError(t, err)

	info, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureDir_IdempotentForExistingDir(t *testing.T) {
	base := t.TempDir()

	first, err := EnsureDir(base)
	require.NoError(t, err)
	second, err := EnsureDir(base)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
