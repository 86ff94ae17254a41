package pkg_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/user/photo-tidy/pkg"
)

func TestJournalLineFormat(t *testing.T) {
	var buf bytes.Buffer
	journal := pkg.NewJournal(&buf)
	journal.Clock = func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}

	journal.Log(pkg.ActionMoved, "%s -> %s", "a.jpg", "b.jpg")
	journal.Log(pkg.ActionDeleted, "dup.jpg (duplicate of b.jpg)")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 journal lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "2024-01-02 03:04:05 [MOVED] a.jpg -> b.jpg" {
		t.Errorf("unexpected line: %q", lines[0])
	}
	if lines[1] != "2024-01-02 03:04:05 [DELETED] dup.jpg (duplicate of b.jpg)" {
		t.Errorf("unexpected line: %q", lines[1])
	}
}

func TestOpenJournalTruncate(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "run.log")
	if err := os.WriteFile(path, []byte("old line\n"), 0644); err != nil {
		t.Fatalf("Failed to seed log file: %v", err)
	}

	journal, err := pkg.OpenJournal(path, false)
	if err != nil {
		t.Fatalf("OpenJournal error: %v", err)
	}
	journal.Log(pkg.ActionInfo, "fresh run")
	if err := journal.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if strings.Contains(string(data), "old line") {
		t.Error("truncate mode kept the previous contents")
	}
	if !strings.Contains(string(data), "[INFO] fresh run") {
		t.Errorf("log file missing new entry: %q", string(data))
	}
}

func TestOpenJournalAppend(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "run.log")
	if err := os.WriteFile(path, []byte("old line\n"), 0644); err != nil {
		t.Fatalf("Failed to seed log file: %v", err)
	}

	journal, err := pkg.OpenJournal(path, true)
	if err != nil {
		t.Fatalf("OpenJournal error: %v", err)
	}
	journal.Log(pkg.ActionInfo, "second run")
	if err := journal.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !strings.Contains(string(data), "old line") {
		t.Error("append mode lost the previous contents")
	}
	if !strings.Contains(string(data), "[INFO] second run") {
		t.Errorf("log file missing new entry: %q", string(data))
	}
}

func TestOpenJournalCreatesParentDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "logs", "run.log")

	journal, err := pkg.OpenJournal(path, false)
	if err != nil {
		t.Fatalf("OpenJournal error: %v", err)
	}
	journal.Log(pkg.ActionInfo, "hello")
	if err := journal.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
