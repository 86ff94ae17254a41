package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jessevdk/go-flags"

	phototidy "github.com/user/photo-tidy/cmd/phototidy/lib"
	"github.com/user/photo-tidy/pkg"
)

type options struct {
	Root         string `long:"root" env:"PHOTOTIDY_ROOT" default:"." description:"Directory tree to organize"`
	OrganizedDir string `long:"organized-dir" env:"PHOTOTIDY_ORGANIZED_DIR" default:"Organized Photos" description:"Folder under root for full-size images"`
	ThumbnailDir string `long:"thumbnail-dir" env:"PHOTOTIDY_THUMBNAIL_DIR" default:"Thumbnails" description:"Folder under root for thumbnail-size images"`
	LogFile      string `long:"log-file" env:"PHOTOTIDY_LOG_FILE" default:"phototidy.log" description:"Action log file; relative paths resolve under root"`
	AppendLog    bool   `long:"append-log" env:"PHOTOTIDY_APPEND_LOG" description:"Append to the log file instead of overwriting it"`
	Timezone     string `long:"timezone" env:"PHOTOTIDY_TZ" default:"UTC" description:"Time zone for epoch-style filename timestamps (e.g. Europe/Berlin)"`
	ThumbnailMax int    `long:"thumbnail-max" env:"PHOTOTIDY_THUMBNAIL_MAX" default:"600" description:"Images with both dimensions below this many pixels go to the thumbnail folder"`
	DryRun       bool   `long:"dry-run" short:"n" description:"Report every decision without touching the filesystem"`
	Confirm      bool   `long:"confirm" short:"i" description:"Ask before each move or delete"`
	Verbose      bool   `long:"verbose" short:"v" description:"Enable debug logging on stderr"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		fatalf("invalid timezone %q: %v", opts.Timezone, err)
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		fatalf("cannot resolve root %q: %v", opts.Root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		fatalf("cannot access root %q: %v", root, err)
	}
	if !info.IsDir() {
		fatalf("root %q is not a directory", root)
	}

	organizedDir := filepath.Join(root, opts.OrganizedDir)
	thumbnailDir := filepath.Join(root, opts.ThumbnailDir)
	if !opts.DryRun {
		for _, dir := range []string{organizedDir, thumbnailDir} {
			if err := os.MkdirAll(dir, 0755); err != nil {
				fatalf("cannot create output directory %q: %v", dir, err)
			}
		}
	}

	// Dry-run journals to stdout so the run leaves the filesystem untouched.
	var journal *pkg.Journal
	if opts.DryRun {
		journal = pkg.NewJournal(os.Stdout)
	} else {
		logPath := opts.LogFile
		if !filepath.IsAbs(logPath) {
			logPath = filepath.Join(root, logPath)
		}
		journal, err = pkg.OpenJournal(logPath, opts.AppendLog)
		if err != nil {
			fatalf("%v", err)
		}
		defer journal.Close()
	}

	stats, err := phototidy.Run(phototidy.Config{
		Root:         root,
		OrganizedDir: organizedDir,
		ThumbnailDir: thumbnailDir,
		ThumbnailMax: opts.ThumbnailMax,
		Location:     loc,
		DryRun:       opts.DryRun,
		Confirm:      opts.Confirm,
	}, journal)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Run summary: processed %d, moved %d, deleted %d, skipped %d, errors %d\n",
		stats.Processed, stats.Moved, stats.Deleted, stats.Skipped, stats.Errors)
	if opts.DryRun {
		fmt.Println("(dry run: nothing was changed)")
	}
}

func fatalf(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
