package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConcatDirectory reads the regular files directly under dir in name order
// and joins their contents into one text blob with a per-file header line.
// Hidden files and subdirectories are skipped. Returns the blob and the
// number of files included.
func ConcatDirectory(dir string) (string, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read directory '%s': %w", dir, err)
	}

	var b strings.Builder
	count := 0
	for _, e := range entries {
		if e.IsDir() || !e.Type().IsRegular() {
			continue
		}
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return "", 0, fmt.Errorf("failed to read file '%s': %w", e.Name(), err)
		}
		fmt.Fprintf(&b, "----- %s -----\n", e.Name())
		b.Write(data)
		if len(data) == 0 || data[len(data)-1] != '\n' {
			b.WriteByte('\n')
		}
		count++
	}
	return b.String(), count, nil
}
