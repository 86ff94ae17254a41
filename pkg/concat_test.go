package pkg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/photo-tidy/pkg"
)

func TestConcatDirectory(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first"), 0644)) // no trailing newline
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("nope"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.txt"), []byte("nested"), 0644))

	text, count, err := pkg.ConcatDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Equal(t, "----- a.txt -----\nfirst\n----- b.txt -----\nsecond\n", text)
	assert.NotContains(t, text, "nope", "hidden files are skipped")
	assert.NotContains(t, text, "nested", "subdirectories are not descended into")
}

func TestConcatDirectoryEmpty(t *testing.T) {
	text, count, err := pkg.ConcatDirectory(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, text)
}

func TestConcatDirectoryMissing(t *testing.T) {
	_, _, err := pkg.ConcatDirectory(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
