package logbook

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAppendAndTail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines := book.Tail(3)
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestTailOfEmptyOrMissingFile(t *testing.T) {
	dir := t.TempDir()
	book, err := New(filepath.Join(dir, "console.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	if lines := book.Tail(5); lines != nil {
		t.Fatalf("tail of missing file = %v, want nil", lines)
	}
	if lines := book.Tail(0); lines != nil {
		t.Fatalf("tail(0) = %v, want nil", lines)
	}
}

func TestEntriesCarryLevelAndClock(t *testing.T) {
	dir := t.TempDir()
	fixed := time.Date(2025, time.April, 1, 8, 30, 0, 0, time.UTC)
	book, err := New(filepath.Join(dir, "console.log"), WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.Warn("low disk")
	book.Error("boom")
	lines := book.Tail(2)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "WARN") || !strings.Contains(lines[0], "2025-04-01T08:30:00Z") {
		t.Fatalf("warn line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "ERROR") || !strings.Contains(lines[1], "boom") {
		t.Fatalf("error line = %q", lines[1])
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("ignored")
	if book.Path() != "" {
		t.Fatalf("nil logbook path should be empty")
	}
	if lines := book.Tail(3); lines != nil {
		t.Fatalf("nil logbook tail = %v", lines)
	}
}
