package pkg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Action classifies a journal entry.
type Action string

const (
	ActionProcessed Action = "PROCESSED"
	ActionMoved     Action = "MOVED"
	ActionDeleted   Action = "DELETED"
	ActionSkipped   Action = "SKIPPED"
	ActionError     Action = "ERROR"
	ActionWarning   Action = "WARNING"
	ActionInfo      Action = "INFO"
)

// Journal is the append-only action log: one timestamped line per decision.
// The sink is any writer; dry-run passes stdout so the filesystem stays
// untouched, a live run passes the log file.
type Journal struct {
	w io.Writer
	c io.Closer // nil when the sink is not owned by the journal

	// Clock supplies entry timestamps; tests pin it.
	Clock func() time.Time
}

// NewJournal wraps an existing writer. The caller keeps ownership of w.
func NewJournal(w io.Writer) *Journal {
	return &Journal{w: w, Clock: time.Now}
}

// OpenJournal opens (creating if absent) the log file at path, appending
// when appendMode is set and truncating otherwise.
func OpenJournal(path string, appendMode bool) (*Journal, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for log '%s': %w", dir, err)
	}

	mode := os.O_CREATE | os.O_WRONLY
	if appendMode {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, mode, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}
	return &Journal{w: f, c: f, Clock: time.Now}, nil
}

// Log writes one action line: "2006-01-02 15:04:05 [ACTION] message".
func (j *Journal) Log(action Action, format string, args ...any) {
	ts := j.Clock().Format("2006-01-02 15:04:05")
	fmt.Fprintf(j.w, "%s [%s] %s\n", ts, action, fmt.Sprintf(format, args...))
}

// Close releases the underlying file, if the journal owns one.
func (j *Journal) Close() error {
	if j.c == nil {
		return nil
	}
	return j.c.Close()
}
