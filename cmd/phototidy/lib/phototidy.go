package phototidy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/user/photo-tidy/pkg"
)

// Config carries the resolved options for one organizing run. Directory
// paths are absolute; Location is already validated by the caller.
type Config struct {
	Root         string
	OrganizedDir string
	ThumbnailDir string
	ThumbnailMax int
	Location     *time.Location
	DryRun       bool
	Confirm      bool

	// ConfirmInput feeds interactive confirmation; defaults to os.Stdin.
	ConfirmInput io.Reader
	// ConfirmOutput receives the prompts; defaults to os.Stdout.
	ConfirmOutput io.Writer
}

// Stats summarizes one run.
type Stats struct {
	Processed int
	Moved     int
	Deleted   int
	Skipped   int
	Errors    int
}

// Run executes the organizing pipeline once over cfg.Root: enumerate, extract
// a capture time, detect duplicates, place. Per-file failures are journaled
// and never abort the run.
func Run(cfg Config, journal *pkg.Journal) (Stats, error) {
	var stats Stats

	slog.Info("scanning source directory", "root", cfg.Root, "dry_run", cfg.DryRun)
	files, err := pkg.ScanSourceDirectory(cfg.Root, []string{cfg.OrganizedDir, cfg.ThumbnailDir})
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		journal.Log(pkg.ActionInfo, "no image files found under %s", cfg.Root)
		return stats, nil
	}
	journal.Log(pkg.ActionInfo, "found %d image file(s) under %s", len(files), cfg.Root)

	placer := pkg.NewPlacer(cfg.OrganizedDir, cfg.ThumbnailDir, cfg.ThumbnailMax, cfg.DryRun)
	registry := pkg.NewSignatureRegistry()
	confirm := newConfirmer(cfg)

	for _, path := range files {
		stats.Processed++
		journal.Log(pkg.ActionProcessed, "%s", path)
		processFile(cfg, journal, placer, registry, confirm, path, &stats)
	}

	journal.Log(pkg.ActionInfo, "run complete: %d processed, %d moved, %d deleted, %d skipped, %d errors",
		stats.Processed, stats.Moved, stats.Deleted, stats.Skipped, stats.Errors)
	return stats, nil
}

// processFile runs stages 2-4 for a single candidate. Every exit path leaves
// a journal line behind.
func processFile(cfg Config, journal *pkg.Journal, placer *pkg.Placer, registry *pkg.SignatureRegistry, confirm *confirmer, path string, stats *Stats) {
	width, height, err := pkg.GetImageResolution(path)
	if err != nil {
		journal.Log(pkg.ActionError, "%s: %v", path, err)
		stats.Errors++
		return
	}
	slog.Debug("processing", "path", path, "width", width, "height", height)

	taken, ok := extractCaptureTime(cfg, journal, path)
	if !ok {
		stats.Skipped++
		return
	}

	hash, err := pkg.CalculateFileHash(path)
	if err != nil {
		journal.Log(pkg.ActionError, "%s: %v", path, err)
		stats.Errors++
		return
	}

	sig := pkg.Signature{Taken: taken, Hash: hash}
	if prior, dup := registry.Lookup(sig); dup {
		if confirm != nil && !confirm.ask("delete %s (duplicate of %s)?", path, prior) {
			journal.Log(pkg.ActionSkipped, "%s: delete declined", path)
			stats.Skipped++
			return
		}
		if err := placer.Delete(path); err != nil {
			journal.Log(pkg.ActionError, "%s: %v", path, err)
			stats.Errors++
			return
		}
		journal.Log(pkg.ActionDeleted, "%s (duplicate of %s)", path, prior)
		stats.Deleted++
		return
	}

	dir := placer.TargetDir(width, height)
	base := pkg.FormatBaseName(taken)
	dest, err := placer.ResolveDestination(dir, base, filepath.Ext(path), path)
	if err != nil {
		journal.Log(pkg.ActionError, "%s: %v", path, err)
		stats.Errors++
		return
	}
	registry.Register(sig, dest)

	if dest == filepath.Clean(path) {
		journal.Log(pkg.ActionInfo, "%s already in place", path)
		return
	}
	if confirm != nil && !confirm.ask("move %s -> %s?", path, dest) {
		journal.Log(pkg.ActionSkipped, "%s: move declined", path)
		stats.Skipped++
		return
	}
	if err := placer.Move(path, dest); err != nil {
		journal.Log(pkg.ActionError, "%s: %v", path, err)
		stats.Errors++
		return
	}
	journal.Log(pkg.ActionMoved, "%s -> %s", path, dest)
	stats.Moved++
}

// extractCaptureTime implements the date-extraction state machine: EXIF
// first, filename patterns second, year bound last. A false return means the
// file was journaled and must be skipped.
func extractCaptureTime(cfg Config, journal *pkg.Journal, path string) (time.Time, bool) {
	taken, err := pkg.GetPhotoCreationDate(path, cfg.Location)
	switch {
	case err == nil && pkg.CaptureYearInRange(taken):
		return taken, true
	case err == nil:
		journal.Log(pkg.ActionWarning, "%s: EXIF timestamp year %d outside %d-%d, trying filename",
			path, taken.Year(), pkg.MinCaptureYear, pkg.MaxCaptureYear)
	case errors.Is(err, pkg.ErrNoExifDate):
		// Nothing embedded; the filename is the only hope.
	default:
		// The tag exists but would not decode or parse. Fall through to the
		// filename rather than abandoning the file.
		journal.Log(pkg.ActionWarning, "%s: %v", path, err)
	}

	taken, err = pkg.GetDateFromFilename(pkg.BaseNameWithoutExt(path), cfg.Location)
	if err != nil {
		if errors.Is(err, pkg.ErrNoFilenameDate) {
			journal.Log(pkg.ActionSkipped, "%s: no usable capture time", path)
		} else {
			journal.Log(pkg.ActionSkipped, "%s: %v", path, err)
		}
		return time.Time{}, false
	}
	if !pkg.CaptureYearInRange(taken) {
		journal.Log(pkg.ActionSkipped, "%s: filename timestamp year %d outside %d-%d",
			path, taken.Year(), pkg.MinCaptureYear, pkg.MaxCaptureYear)
		return time.Time{}, false
	}
	return taken, true
}

// confirmer prompts before destructive actions. nil when confirmation is off.
type confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newConfirmer(cfg Config) *confirmer {
	if !cfg.Confirm {
		return nil
	}
	in := cfg.ConfirmInput
	if in == nil {
		in = os.Stdin
	}
	out := cfg.ConfirmOutput
	if out == nil {
		out = os.Stdout
	}
	return &confirmer{in: bufio.NewReader(in), out: out}
}

// ask prints the question and reads one line; anything but y/yes declines.
func (c *confirmer) ask(format string, args ...any) bool {
	fmt.Fprintf(c.out, format+" [y/N] ", args...)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
