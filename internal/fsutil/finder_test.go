package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# test"), 0o600))
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.hcl")
	b := filepath.Join(dir, "nested", "b.hcl")
	write(t, a)
	write(t, b)
	write(t, filepath.Join(dir, "notes.txt"))

	files, err := CollectFiles(".hcl", dir, a, filepath.Join(dir, "missing"), filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}

func TestFindFilesByExtension_PanicsOnEmptyExtension(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
}
