package pkg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// ErrNoExifDate is returned when the file carries no usable EXIF date tag
// (including files with no EXIF block at all, e.g. most PNGs).
var ErrNoExifDate = errors.New("no EXIF date tag found")

// ErrNoFilenameDate is returned when no timestamp pattern matches a filename.
var ErrNoFilenameDate = errors.New("no timestamp pattern in filename")

// Capture timestamps with a year outside this range are treated as absent.
const (
	MinCaptureYear = 1900
	MaxCaptureYear = 2200
)

// exifTimeLayout is the EXIF datetime format, "yyyy:MM:dd HH:mm:ss".
const exifTimeLayout = "2006:01:02 15:04:05"

// CaptureYearInRange reports whether t falls inside the sane capture bound.
func CaptureYearInRange(t time.Time) bool {
	return t.Year() >= MinCaptureYear && t.Year() <= MaxCaptureYear
}

// GetPhotoCreationDate extracts the capture date from a photo's EXIF data.
// It prioritizes DateTimeOriginal and falls back to DateTimeDigitized.
// Returns ErrNoExifDate when no date tag is present; a tag that is present
// but unparsable yields a distinct error so callers can decide whether to
// fall through to filename parsing.
func GetPhotoCreationDate(photoPath string, loc *time.Location) (time.Time, error) {
	file, err := os.Open(photoPath)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to open file %s: %w", photoPath, err)
	}
	defer file.Close()

	x, err := exif.Decode(file)
	if err != nil {
		// Most non-JPEG formats simply carry no EXIF block.
		return time.Time{}, ErrNoExifDate
	}

	dateTag, err := x.Get(exif.DateTimeOriginal)
	if err == nil {
		return parseExifTag(dateTag, loc)
	}

	dateTag, err = x.Get(exif.DateTimeDigitized)
	if err == nil {
		return parseExifTag(dateTag, loc)
	}

	return time.Time{}, ErrNoExifDate
}

// parseExifTag is a helper to parse an EXIF datetime tag value.
func parseExifTag(tag *tiff.Tag, loc *time.Location) (time.Time, error) {
	if tag == nil {
		return time.Time{}, fmt.Errorf("tag is nil")
	}
	dateStr, err := tag.StringVal() // Handles potential null terminators.
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get string value from EXIF date tag: %w", err)
	}
	return ParseExifTimestamp(dateStr, loc)
}

// ParseExifTimestamp parses the "yyyy:MM:dd HH:mm:ss" EXIF datetime form.
// Trailing null bytes and padding are trimmed before parsing.
func ParseExifTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimRight(value, "\x00 ")
	t, err := time.ParseInLocation(exifTimeLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse EXIF date string '%s': %w", value, err)
	}
	return t, nil
}

// filenamePatterns are tried in order against the extension-less filename.
// Only the first pattern that matches syntactically is parsed; later
// patterns are never consulted, even when that parse fails.
var filenamePatterns = []struct {
	regex *regexp.Regexp
	parse func(m []string, loc *time.Location) (time.Time, error)
	desc  string
}{
	// Generic timestamp: IMG_20230615_143022.jpg
	{regexp.MustCompile(`(\d{8})_(\d{6})`), parseCompactPair, "YYYYMMDD_HHmmss"},

	// Compact timestamp: 20230615143022.jpg
	{regexp.MustCompile(`(\d{14})`), parseCompact, "YYYYMMDDHHmmss"},

	// Whole name is 10 digits: seconds since the Unix epoch
	{regexp.MustCompile(`^(\d{10})$`), parseEpochSeconds, "Unix seconds"},

	// Whole name is 13 digits: milliseconds since the Unix epoch
	{regexp.MustCompile(`^(\d{13})$`), parseEpochMillis, "Unix milliseconds"},
}

func parseCompactPair(m []string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("20060102150405", m[1]+m[2], loc)
}

func parseCompact(m []string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("20060102150405", m[1], loc)
}

func parseEpochSeconds(m []string, loc *time.Location) (time.Time, error) {
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(n, 0).In(loc), nil
}

func parseEpochMillis(m []string, loc *time.Location) (time.Time, error) {
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(n).In(loc), nil
}

// GetDateFromFilename attempts to extract a capture timestamp from a filename
// (without extension). Epoch-style values are converted from UTC into loc;
// wall-clock patterns are interpreted directly in loc.
func GetDateFromFilename(name string, loc *time.Location) (time.Time, error) {
	for _, p := range filenamePatterns {
		m := p.regex.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		t, err := p.parse(m, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("filename '%s' matched %s but did not parse: %w", name, p.desc, err)
		}
		return t, nil
	}
	return time.Time{}, ErrNoFilenameDate
}

// BaseNameWithoutExt returns the file's base name with the extension removed,
// the form the filename patterns are matched against.
func BaseNameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
