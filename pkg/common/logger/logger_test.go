package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jenniferntran/gitlet/pkg/common/logger"
)

func TestLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.Config{
		Level:  logger.LevelWarn,
		Format: logger.FormatText,
		Output: buf,
	})

	log.Info("loading store")
	if strings.Contains(buf.String(), "loading store") {
		t.Error("info message should not appear at Warn level")
	}

	log.Warn("stage file missing")
	if !strings.Contains(buf.String(), "stage file missing") {
		t.Error("warn message should appear at Warn level")
	}
}

func TestJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.Config{
		Level:  logger.LevelDebug,
		Format: logger.FormatJSON,
		Output: buf,
	})

	log.With("component", "engine").Debug("commit created", "branch", "master")

	out := buf.String()
	for _, want := range []string{`"msg":"commit created"`, `"component":"engine"`, `"branch":"master"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    logger.Level
		wantErr bool
	}{
		{"debug", logger.LevelDebug, false},
		{"INFO", logger.LevelInfo, false},
		{" warn ", logger.LevelWarn, false},
		{"warning", logger.LevelWarn, false},
		{"error", logger.LevelError, false},
		{"loud", logger.LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := logger.ParseFormat("json"); err != nil || f != logger.FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := logger.ParseFormat(""); err != nil || f != logger.FormatText {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := logger.ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestDefaultLogger(t *testing.T) {
	prev := logger.Default
	defer func() { logger.Default = prev }()

	buf := &bytes.Buffer{}
	logger.Default = logger.New(logger.Config{
		Level:  logger.LevelInfo,
		Format: logger.FormatText,
		Output: buf,
	})

	logger.With("component", "test").Info("hello")
	if !strings.Contains(buf.String(), "component=test") {
		t.Error("package-level With should use Default")
	}
}
