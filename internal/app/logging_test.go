package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedLogger(buf *bytes.Buffer, level LogLevel) *Logger {
	l := NewLogger(LoggerConfig{Level: level, Output: buf, Prefix: "quill"})
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LogLevelDebug).WithComponent("app").WithField("session", "abc")

	l.Info("loaded %s", "f.txt")

	want := "2024-01-02T03:04:05.000 [INFO] quill: loaded f.txt {component=app, session=abc}\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LogLevelWarn)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[WARN]") || !strings.Contains(lines[1], "[ERROR]") {
		t.Errorf("unexpected lines %q", lines)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"Error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestNullLogger(t *testing.T) {
	if NullLogger.Enabled(LogLevelError) {
		t.Error("expected NullLogger to be disabled")
	}
	child := NullLogger.WithComponent("x")
	if child.Enabled(LogLevelError) {
		t.Error("expected children of NullLogger to be disabled")
	}
	child.Error("dropped")
}

func TestOpenLogFile(t *testing.T) {
	l, closer, err := OpenLogFile("debug", "")
	if err != nil {
		t.Fatalf("OpenLogFile failed: %v", err)
	}
	l.Info("discarded")
	if err := closer.Close(); err != nil {
		t.Errorf("expected no close error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "quill.log")
	l, closer, err = OpenLogFile("info", path)
	if err != nil {
		t.Fatalf("OpenLogFile failed: %v", err)
	}
	l.WithField("session", NewSessionID()).Info("hello")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "quill: hello {session=") {
		t.Errorf("unexpected log content %q", data)
	}

	_, _, err = OpenLogFile("info", filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == b {
		t.Error("expected distinct session ids")
	}
	if len(a) != 36 {
		t.Errorf("expected 36 character id, got %d", len(a))
	}
}
