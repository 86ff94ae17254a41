package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions maps the organizable image file extensions to true.
// Used by ScanSourceDirectory and IsImageExtension. HEIF extensions are
// included because the decoder stack registers HEIF support (see imaging.go).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".heic": true,
	".heif": true,
}

// IsImageExtension checks if the given filePath has a known image extension
// by comparing its lowercased extension against the imageExtensions map.
func IsImageExtension(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return imageExtensions[ext]
}

// ScanSourceDirectory recursively scans root for image files based on the
// imageExtensions map. Directories listed in excludeDirs (the two output
// folders) are skipped entirely so already-organized files are never
// re-enumerated. Results follow filesystem enumeration order.
func ScanSourceDirectory(root string, excludeDirs []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source directory '%s' does not exist", root)
		}
		return nil, fmt.Errorf("error accessing source directory '%s': %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path '%s' is not a directory", root)
	}

	excluded := make([]string, 0, len(excludeDirs))
	for _, d := range excludeDirs {
		if d == "" {
			continue
		}
		excluded = append(excluded, filepath.Clean(d))
	}

	var imageFiles []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Printf("Warning: Error accessing path %q: %v\n", path, err)
			return nil // Returning nil continues the walk
		}
		if info.IsDir() {
			if isExcludedDir(path, excluded) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsImageExtension(path) {
			imageFiles = append(imageFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking through source directory '%s': %w", root, err)
	}

	if imageFiles == nil {
		return []string{}, nil // Return empty slice instead of nil
	}
	return imageFiles, nil
}

func isExcludedDir(path string, excluded []string) bool {
	path = filepath.Clean(path)
	for _, base := range excluded {
		if path == base {
			return true
		}
	}
	return false
}
