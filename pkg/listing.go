package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// EntrySize is one row of a size-sorted directory listing.
type EntrySize struct {
	Name  string
	Size  int64
	IsDir bool
}

// ListBySize lists the entries of dir sorted by size descending, name
// ascending on ties. Directories are sized recursively; unreadable files
// inside them simply contribute nothing.
func ListBySize(dir string) ([]EntrySize, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory '%s': %w", dir, err)
	}

	sizes := make([]EntrySize, 0, len(entries))
	for _, e := range entries {
		row := EntrySize{Name: e.Name(), IsDir: e.IsDir()}
		if e.IsDir() {
			row.Size = dirSize(filepath.Join(dir, e.Name()))
		} else {
			info, err := e.Info()
			if err != nil {
				continue
			}
			row.Size = info.Size()
		}
		sizes = append(sizes, row)
	}

	sort.Slice(sizes, func(i, j int) bool {
		if sizes[i].Size != sizes[j].Size {
			return sizes[i].Size > sizes[j].Size
		}
		return sizes[i].Name < sizes[j].Name
	})
	return sizes, nil
}

func dirSize(dir string) int64 {
	var total int64
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip unreadable entries, keep walking
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	return total
}
