package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   Debug,
		"INFO":    Info,
		"":        Info,
		"warning": Warn,
		"Error":   Error,
		"fatal":   Fatal,
	}

	for input, expected := range tests {
		level, err := ParseLevel(input)
		if err != nil {
			t.Fatalf("ParseLevel(%q) failed: %v", input, err)
		}
		if level != expected {
			t.Errorf("ParseLevel(%q) = %s, expected %s", input, level, expected)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("test", Warn, &buf)

	logger.Info("hidden")
	logger.Warn("shown %d", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "shown 1") {
		t.Errorf("expected warn message, got %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("expected no color codes, got %q", out)
	}
}

func TestLogger_Named(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("uprocfs", Debug, &buf).Named("fuse")

	logger.Debug("lookup")

	if !strings.Contains(buf.String(), "[uprocfs/fuse]") {
		t.Errorf("expected nested name, got %q", buf.String())
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("svc", Debug, &buf)
	logger.JSON = true

	logger.Error("failed: %s", "boom")

	var entry logEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if entry.Level != "ERROR" || entry.Service != "svc" || entry.Message != "failed: boom" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestLogger_MessageWithoutArgsKeepsPercent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("", Debug, &buf)

	logger.Info("100%")

	if !strings.Contains(buf.String(), "100%") || strings.Contains(buf.String(), "MISSING") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestLogger_StdLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("fuse", Debug, &buf)

	std := logger.StdLogger(Debug)
	std.Print("first line\nsecond line")

	out := buf.String()
	if strings.Count(out, "DEBUG") != 2 {
		t.Errorf("expected two forwarded lines, got %q", out)
	}
}
