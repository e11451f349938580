package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/wordcloud/internal/config"
)

func TestNewHandler_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "json"}))
	logger.Info("test message", slog.Int("words", 3))

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("JSON handler should produce valid JSON: %v", err)
	}
	if m["msg"] != "test message" {
		t.Errorf("msg = %v, want %q", m["msg"], "test message")
	}
	if _, ok := m["source"]; ok {
		t.Error("json format should not include source information")
	}
}

func TestNewHandler_TextFormatAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "debug", Format: "TEXT"}))
	logger.Debug("source test")

	if !strings.Contains(buf.String(), "source=") {
		t.Error("text format should include source information")
	}
}

func TestNewHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "warn", Format: "json"}))
	logger.Info("hidden")

	if buf.Len() != 0 {
		t.Errorf("info record should be filtered at warn level, got %q", buf.String())
	}
}

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the default logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
