package log_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/Tiliavir/hourbill/internal/log"
)

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(log.Config{Level: slog.LevelInfo, Component: "loader", Output: &buf})

	l.Info("timesheet loaded", "rows", 3)
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "component=loader") || !strings.Contains(out, "rows=3") {
		t.Errorf("unexpected log output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record logged at info level: %q", out)
	}

	buf.Reset()
	l.WithComponent("render").Warn("slow")
	if !strings.Contains(buf.String(), "component=render") {
		t.Errorf("unexpected log output: %q", buf.String())
	}

	buf.Reset()
	l.Error("command failed", "error", "boom")
	if out := buf.String(); !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "error=boom") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		got, err := log.ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
