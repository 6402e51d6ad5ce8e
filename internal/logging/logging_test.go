package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(slog.LevelInfo, "text", &buf)
		logger.Info("schedule generated", "seed", 42)

		out := buf.String()
		if !strings.Contains(out, "schedule generated") || !strings.Contains(out, "seed=42") {
			t.Errorf("unexpected output: %s", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(slog.LevelInfo, "JSON", &buf)
		logger.Info("schedule generated", "days", 7)

		out := buf.String()
		if !strings.Contains(out, `"msg":"schedule generated"`) || !strings.Contains(out, `"days":7`) {
			t.Errorf("unexpected output: %s", out)
		}
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(slog.LevelWarn, "text", &buf)
		logger.Info("hidden")
		logger.Warn("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("info message logged at warn level: %s", out)
		}
		if !strings.Contains(out, "shown") {
			t.Errorf("warn message missing: %s", out)
		}
	})

	t.Run("component tag", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(slog.LevelDebug, "text", &buf).With("component", "store")
		logger.Debug("run saved", "id", "run_1")

		out := buf.String()
		if !strings.Contains(out, "component=store") || !strings.Contains(out, "id=run_1") {
			t.Errorf("unexpected output: %s", out)
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{" Error ", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
