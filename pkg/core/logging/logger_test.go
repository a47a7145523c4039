package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	mdwlog "github.com/msto63/zeitwerk/foundation/core/log"
	"github.com/msto63/zeitwerk/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("zeitwerk")

	if cfg.Name != "zeitwerk" {
		t.Errorf("Name = %v, want zeitwerk", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"off", mdwlog.LevelOff},
		{"invalid", mdwlog.LevelInfo}, // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := DefaultLoggerConfig("test")
			cfg.Level = tt.input
			cfg.Output = &bytes.Buffer{}

			if got := NewLogger(cfg).GetLevel(); got != tt.expected {
				t.Errorf("GetLevel() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:          "zeitwerk",
		Level:         "debug",
		Format:        "json",
		Output:        &buf,
		CorrelationID: "run-1",
	})

	logger.Debug("zone parsed", mdwlog.Field("zone", "+05:30"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	want := map[string]interface{}{
		"level":          "debug",
		"message":        "zone parsed",
		"logger":         "zeitwerk",
		"correlation_id": "run-1",
		"zone":           "+05:30",
	}
	delete(entry, "timestamp")
	if diff := cmp.Diff(want, entry); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestNewLogger_CorrelationID(t *testing.T) {
	a := NewLogger(LoggerConfig{Output: &bytes.Buffer{}})
	b := NewLogger(LoggerConfig{Output: &bytes.Buffer{}})

	if _, err := uuid.Parse(a.CorrelationID()); err != nil {
		t.Errorf("CorrelationID() = %q is not a UUID: %v", a.CorrelationID(), err)
	}
	if a.CorrelationID() == b.CorrelationID() {
		t.Error("two loggers share a correlation id")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.General.LogLevel = "info"
	cfg.General.LogFormat = "logfmt"

	var buf bytes.Buffer
	logger := FromConfig("zeitwerk", cfg, &buf)
	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %q", out)
	}
	if !strings.Contains(out, `message="shown"`) {
		t.Errorf("logfmt output missing message: %q", out)
	}

	if got := FromConfig("zeitwerk", nil, &buf).GetLevel(); got != mdwlog.LevelWarn {
		t.Errorf("FromConfig(nil).GetLevel() = %v, want warn", got)
	}
}

func TestLogger_KeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := Wrap(NewLogger(LoggerConfig{Level: "debug", Format: "json", Output: &buf}))

	logger.With("command", "convert").Info("converted", "from", "UTC", "to", "+01:00", "orphan")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	for k, v := range map[string]string{"command": "convert", "from": "UTC", "to": "+01:00"} {
		if entry[k] != v {
			t.Errorf("entry[%s] = %v, want %v", k, entry[k], v)
		}
	}
	if _, ok := entry["orphan"]; ok {
		t.Error("trailing key without value was logged")
	}
}

func TestLogger_LogMethods(t *testing.T) {
	// Test that log methods don't panic
	logger := Wrap(nil)

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")
	logger.Info("message without key-values")
}

func TestToFields(t *testing.T) {
	// Empty input
	fields := toFields()
	if fields != nil {
		t.Error("toFields() with no args should return nil")
	}

	// Valid key-value pairs
	fields = toFields("key1", "value1", "key2", 42)
	if fields == nil {
		t.Fatal("toFields() returned nil")
	}
	if fields["key1"] != "value1" {
		t.Errorf("fields[key1] = %v, want value1", fields["key1"])
	}
	if fields["key2"] != 42 {
		t.Errorf("fields[key2] = %v, want 42", fields["key2"])
	}

	// Non-string key (should be skipped)
	fields = toFields(123, "value")
	if len(fields) != 0 {
		t.Errorf("Non-string key should be skipped, got %v fields", len(fields))
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := Wrap(NewLogger(LoggerConfig{Level: "info", Output: &bytes.Buffer{}}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", "iteration", i)
	}
}
