package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/inkmark/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, fsutil.WriteAtomic(path, []byte("kind: Markup\n"), 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kind: Markup\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())
}

func TestWriteAtomic_Overwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, fsutil.WriteAtomic(path, []byte("new"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteAtomic_NoTempLeftovers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, fsutil.WriteAtomic(filepath.Join(dir, "out.yaml"), []byte("x"), 0))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.yaml", entries[0].Name())
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.yaml")

	written, err := fsutil.WriteAtomicIfChanged(path, []byte("a"), 0)
	require.NoError(t, err)
	assert.True(t, written, "first write creates the file")

	written, err = fsutil.WriteAtomicIfChanged(path, []byte("a"), 0)
	require.NoError(t, err)
	assert.False(t, written, "identical content skips the write")

	written, err = fsutil.WriteAtomicIfChanged(path, []byte("b"), 0)
	require.NoError(t, err)
	assert.True(t, written, "changed content rewrites the file")
}
