package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dbsmedya/gsread/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		cfg  *config.LoggingConfig
	}{
		{
			name: "json format info level",
			cfg:  &config.LoggingConfig{Level: "info", Format: "json", Output: "stderr"},
		},
		{
			name: "text format debug level",
			cfg:  &config.LoggingConfig{Level: "debug", Format: "text", Output: "stdout"},
		},
		{
			name: "file output",
			cfg:  &config.LoggingConfig{Level: "warn", Format: "json", Output: filepath.Join(tmpDir, "gsread.log")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if logger == nil {
				t.Fatal("New() returned nil logger without error")
			}
			_ = logger.Sync()
		})
	}
}

func TestNewWithErrWriter(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithErrWriter(&config.LoggingConfig{Level: "debug", Format: "json", Output: "stderr"}, &buf)
	if err != nil {
		t.Fatalf("NewWithErrWriter() error = %v", err)
	}
	logger.WithCompany("1P02").Debug("routed to error writer")
	_ = logger.Sync()

	if !strings.Contains(buf.String(), "routed to error writer") {
		t.Errorf("expected log line in error writer, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"company":"1P02"`) {
		t.Errorf("expected company field in error writer, got %q", buf.String())
	}
}

func TestNewWithErrWriter_EmptyOutputDefaultsToErrWriter(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithErrWriter(&config.LoggingConfig{Level: "warn", Format: "text"}, &buf)
	if err != nil {
		t.Fatalf("NewWithErrWriter() error = %v", err)
	}
	logger.Warn("warned")
	logger.Info("filtered")
	_ = logger.Sync()

	if !strings.Contains(buf.String(), "warned") {
		t.Errorf("expected warning in error writer, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "filtered") {
		t.Errorf("info line should be filtered at warn level, got %q", buf.String())
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.WithCollection("Company").Info("discarded")
	if err := logger.Sync(); err != nil {
		t.Errorf("Sync() on nop logger returned %v", err)
	}
}

func TestContextHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.WithCollection("company_person").WithOffset(1000).WithCompany("1P02").Info("page fetched")
	logger.Debugw("counted", "count", 7)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["collection"] != "company_person" {
		t.Errorf("expected collection field, got %v", ctx["collection"])
	}
	if ctx["offset"] != int64(1000) {
		t.Errorf("expected offset 1000, got %v", ctx["offset"])
	}
	if ctx["company"] != "1P02" {
		t.Errorf("expected company field, got %v", ctx["company"])
	}

	if entries[1].ContextMap()["count"] != int64(7) {
		t.Errorf("expected count field, got %v", entries[1].ContextMap()["count"])
	}
}

func TestWithHelpersReturnNewInstance(t *testing.T) {
	logger := NewNop()

	if logger.WithCollection("Company") == logger {
		t.Error("WithCollection() should return a new logger instance")
	}
	if logger.WithOffset(0) == logger {
		t.Error("WithOffset() should return a new logger instance")
	}
}

func TestBuildEncoder(t *testing.T) {
	if buildEncoder("json") == nil {
		t.Error("buildEncoder('json') returned nil")
	}
	if buildEncoder("text") == nil {
		t.Error("buildEncoder('text') returned nil")
	}
	if buildEncoder("unknown") == nil {
		t.Error("buildEncoder('unknown') returned nil")
	}
}

func TestBuildWriters(t *testing.T) {
	for _, output := range []string{"stdout", "stderr", ""} {
		if buildWriters(output, os.Stderr) == nil {
			t.Errorf("buildWriters(%q) returned nil", output)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "writer.log")
	if buildWriters(tmpFile, os.Stderr) == nil {
		t.Error("buildWriters(file) returned nil")
	}
}

func TestLoggingOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logger-test.json")

	cfg := &config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: logPath,
	}

	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("test info message")
	logger.Debug("filtered debug message")
	logger.WithCollection("activity_timeline").Warn("message with collection context")

	_ = logger.Sync()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "test info message") {
		t.Error("Log file should contain 'test info message'")
	}
	if strings.Contains(contentStr, "filtered debug message") {
		t.Error("Debug message should be filtered at info level")
	}
	if !strings.Contains(contentStr, "activity_timeline") {
		t.Error("Log file should contain collection context")
	}
}
