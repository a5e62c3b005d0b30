package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewCreatesLogFile verifies that New creates a log file inside
// <root>/.dlt/logs/.
func TestNewCreatesLogFile(t *testing.T) {
	dir := t.TempDir()

	l, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer l.Close()

	logPath := l.LogPath()
	if logPath == "" {
		t.Fatal("LogPath() returned empty string")
	}

	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file not found at %q: %v", logPath, err)
	}
}

// TestNewLogPathUnderProjectDir verifies the log file is created inside the
// expected subdirectory.
func TestNewLogPathUnderProjectDir(t *testing.T) {
	dir := t.TempDir()

	l, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer l.Close()

	wantPrefix := filepath.Join(dir, ".dlt", "logs")
	if !strings.HasPrefix(l.LogPath(), wantPrefix) {
		t.Errorf("LogPath() = %q, want prefix %q", l.LogPath(), wantPrefix)
	}
}

// TestNewLogFileNameFormat verifies the log file name follows the
// install-<timestamp>.log convention.
func TestNewLogFileNameFormat(t *testing.T) {
	dir := t.TempDir()

	l, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer l.Close()

	base := filepath.Base(l.LogPath())
	if !strings.HasPrefix(base, "install-") || !strings.HasSuffix(base, ".log") {
		t.Errorf("log file name %q does not match install-<ts>.log pattern", base)
	}
}

// TestPrintfWritesToFile verifies that Printf output reaches the log file.
func TestPrintfWritesToFile(t *testing.T) {
	dir := t.TempDir()

	l, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Printf("hello %s", "world")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(l.LogPath())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello world") {
		t.Errorf("log file content = %q, want to contain %q", string(data), "hello world")
	}
}

// TestNewDiscard verifies the discard logger has no file and swallows writes.
func TestNewDiscard(t *testing.T) {
	l := NewDiscard()
	if l.LogPath() != "" {
		t.Errorf("LogPath() = %q, want empty", l.LogPath())
	}
	l.Printf("dropped")
	if err := l.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

// TestLatestLogPath verifies the most recent log is returned.
func TestLatestLogPath(t *testing.T) {
	dir := t.TempDir()
	logsDir := filepath.Join(dir, ".dlt", "logs")
	os.MkdirAll(logsDir, 0o755)
	os.WriteFile(filepath.Join(logsDir, "install-20260101-000000.log"), []byte("old"), 0o644)
	os.WriteFile(filepath.Join(logsDir, "install-20260201-000000.log"), []byte("new"), 0o644)

	got := LatestLogPath(dir)
	if filepath.Base(got) != "install-20260201-000000.log" {
		t.Errorf("LatestLogPath() = %q, want the newest log", got)
	}
}

// TestLatestLogPathEmpty verifies "" is returned when no logs exist.
func TestLatestLogPathEmpty(t *testing.T) {
	if got := LatestLogPath(t.TempDir()); got != "" {
		t.Errorf("LatestLogPath() = %q, want empty", got)
	}
}
