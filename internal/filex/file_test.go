package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirectories(t *testing.T) {
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "state", "lumina", "lumina.db")

	require.NoError(t, EnsureParentDir(dbPath))

	fi, err := os.Stat(filepath.Dir(dbPath))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "lumina.db")

	require.NoError(t, EnsureParentDir(dbPath))
	require.NoError(t, EnsureParentDir(dbPath))
}

func TestEnsureParentDir_NoDirectoryComponent(t *testing.T) {
	require.NoError(t, EnsureParentDir("lumina.db"))
	require.NoError(t, EnsureParentDir(":memory:"))
	require.NoError(t, EnsureParentDir(""))
}

func TestEnsureParentDir_FailsIfFileBlocksDirectory(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(blocker, "lumina.db"))
	require.Error(t, err, "should fail when a file exists where the directory should be")
}
