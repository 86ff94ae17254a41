package pkg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// BaseNameSeparator stands in for the ASCII colon inside destination names;
// the literal ':' is illegal in some filesystem namespaces. U+A789 MODIFIER
// LETTER COLON renders close enough to the real thing.
const BaseNameSeparator = "꞉"

// baseNameLayout formats a capture timestamp as "yyyy-MM-dd HH꞉mm꞉ss".
const baseNameLayout = "2006-01-02 15꞉04꞉05"

// DefaultThumbnailMaxDim is the pixel bound below which (on both axes) an
// image is routed to the thumbnails folder.
const DefaultThumbnailMaxDim = 600

// FormatBaseName returns the canonical destination base name for a capture
// timestamp, without extension.
func FormatBaseName(t time.Time) string {
	return t.Format(baseNameLayout)
}

// IsThumbnail reports whether an image with the given dimensions counts as a
// thumbnail: both width and height strictly below max.
func IsThumbnail(width, height, max int) bool {
	return width < max && height < max
}

// Placer computes destination paths for unique files and executes (or, in
// dry-run mode, only records) moves and deletes. Paths handed out during a
// run are remembered so collision suffixes stay deterministic even when no
// file is actually created.
type Placer struct {
	OrganizedDir string
	ThumbnailDir string
	ThumbnailMax int
	DryRun       bool

	claimed map[string]bool
}

// NewPlacer returns a Placer targeting the two output directories.
func NewPlacer(organizedDir, thumbnailDir string, thumbnailMax int, dryRun bool) *Placer {
	if thumbnailMax <= 0 {
		thumbnailMax = DefaultThumbnailMaxDim
	}
	return &Placer{
		OrganizedDir: organizedDir,
		ThumbnailDir: thumbnailDir,
		ThumbnailMax: thumbnailMax,
		DryRun:       dryRun,
		claimed:      make(map[string]bool),
	}
}

// TargetDir selects the output directory for an image by its dimensions.
func (p *Placer) TargetDir(width, height int) string {
	if IsThumbnail(width, height, p.ThumbnailMax) {
		return p.ThumbnailDir
	}
	return p.OrganizedDir
}

// ResolveDestination probes "base", "base (1)", "base (2)", ... inside dir
// until a path is free of both on-disk files and paths claimed earlier this
// run, then claims and returns it. src is the file being placed; its own
// current path never counts as occupied, so a correctly named file resolves
// onto itself.
func (p *Placer) ResolveDestination(dir, base, ext, src string) (string, error) {
	for n := 0; ; n++ {
		name := base + ext
		if n > 0 {
			name = fmt.Sprintf("%s (%d)%s", base, n, ext)
		}
		candidate := filepath.Join(dir, name)

		if candidate == filepath.Clean(src) {
			p.claimed[candidate] = true
			return candidate, nil
		}
		if p.claimed[candidate] {
			continue
		}
		occupied, err := fileExists(candidate)
		if err != nil {
			return "", err
		}
		if occupied {
			continue
		}

		p.claimed[candidate] = true
		return candidate, nil
	}
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("error checking target path %s: %w", path, err)
}

// Move relocates src to dst. A no-op in dry-run mode. Rename is attempted
// first; cross-device moves fall back to copy+delete.
func (p *Placer) Move(src, dst string) error {
	if p.DryRun {
		return nil
	}
	destDir := filepath.Dir(dst)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", destDir, err)
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// Delete removes the file at path. A no-op in dry-run mode.
func (p *Placer) Delete(path string) error {
	if p.DryRun {
		return nil
	}
	return os.Remove(path)
}

// copyFile copies a file from srcPath to destPath, syncing the destination
// to disk before returning.
func copyFile(srcPath, destPath string) error {
	sourceFile, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcPath, err)
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", destPath, err)
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy content from %s to %s: %w", srcPath, destPath, err)
	}

	if err = destinationFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync destination file %s: %w", destPath, err)
	}

	return nil
}
