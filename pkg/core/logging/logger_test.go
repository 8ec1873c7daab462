package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/numtower/foundation/core/log"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"", mdwlog.LevelWarn},
		{"nonsense", mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("numtower")
	if cfg.Name != "numtower" || cfg.Level != "warn" || cfg.Format != "text" {
		t.Errorf("DefaultLoggerConfig() = %+v", cfg)
	}
}

func TestNewLoggerWritesToOutput(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "calc",
		Level:             "info",
		Format:            "logfmt",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Debug("hidden")
	logger.Info("evaluated", mdwlog.Fields{"expr": "(+ 1 2)"})

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "extra": &extra} {
		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("%s: debug entry written at info level", name)
		}
		if !strings.Contains(out, `message="evaluated"`) || !strings.Contains(out, "logger=calc") {
			t.Errorf("%s: output = %q", name, out)
		}
	}
}

func TestKeyValueLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := Wrap(NewLogger(LoggerConfig{Name: "repl", Level: "warn", Format: "text", Output: &buf}), "repl").
		WithLevel(LevelDebug)

	logger.Debug("line read", "line", "(+ 1 2)", "dangling")
	out := buf.String()
	if !strings.Contains(out, "line=(+ 1 2)") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "dangling") {
		t.Errorf("dangling key should be dropped: %q", out)
	}
	if logger.Name() != "repl" {
		t.Errorf("Name() = %q", logger.Name())
	}
}

func TestToFields(t *testing.T) {
	if toFields() != nil {
		t.Error("toFields() should be nil")
	}
	fields := toFields("a", 1, 2, "skipped", "b", "x")
	if len(fields) != 2 || fields["a"] != 1 || fields["b"] != "x" {
		t.Errorf("toFields() = %v", fields)
	}
}
