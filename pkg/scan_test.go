package pkg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/photo-tidy/pkg"
)

func writeEmpty(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
}

func TestScanSourceDirectory(t *testing.T) {
	root := t.TempDir()
	organized := filepath.Join(root, "Organized Photos")
	thumbs := filepath.Join(root, "Thumbnails")

	writeEmpty(t, filepath.Join(root, "a.jpg"))
	writeEmpty(t, filepath.Join(root, "sub", "b.PNG")) // extension match is case-insensitive
	writeEmpty(t, filepath.Join(root, "sub", "deeper", "c.tiff"))
	writeEmpty(t, filepath.Join(root, "note.txt"))
	writeEmpty(t, filepath.Join(root, "raw.cr2")) // not on the allow-list
	writeEmpty(t, filepath.Join(organized, "already.jpg"))
	writeEmpty(t, filepath.Join(thumbs, "small.png"))

	files, err := pkg.ScanSourceDirectory(root, []string{organized, thumbs})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.jpg"),
		filepath.Join(root, "sub", "b.PNG"),
		filepath.Join(root, "sub", "deeper", "c.tiff"),
	}, files)
}

func TestScanSourceDirectoryEmpty(t *testing.T) {
	root := t.TempDir()

	files, err := pkg.ScanSourceDirectory(root, nil)
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestScanSourceDirectoryErrors(t *testing.T) {
	root := t.TempDir()

	_, err := pkg.ScanSourceDirectory(filepath.Join(root, "missing"), nil)
	assert.Error(t, err)

	filePath := filepath.Join(root, "file.jpg")
	writeEmpty(t, filePath)
	_, err = pkg.ScanSourceDirectory(filePath, nil)
	assert.Error(t, err)
}

func TestIsImageExtension(t *testing.T) {
	assert.True(t, pkg.IsImageExtension("photo.jpg"))
	assert.True(t, pkg.IsImageExtension("photo.JPEG"))
	assert.True(t, pkg.IsImageExtension("scan.bmp"))
	assert.True(t, pkg.IsImageExtension("scan.tiff"))
	assert.True(t, pkg.IsImageExtension("shot.heic"))
	assert.False(t, pkg.IsImageExtension("clip.mp4"))
	assert.False(t, pkg.IsImageExtension("notes.txt"))
	assert.False(t, pkg.IsImageExtension("noext"))
}
