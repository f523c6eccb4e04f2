package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dalton/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := logging.ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_StderrRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := logging.New(logging.Options{Level: slog.LevelWarn, Stderr: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closeFn()

	log.Info("hidden")
	log.Warn("shown", "path", "main.dt")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "path=main.dt") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestNew_FanoutToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "dalton.log")
	log, closeFn, err := logging.New(logging.Options{Level: slog.LevelInfo, Stderr: &buf, File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("tokenized", "tokens", 3)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if buf.Len() != 0 {
		t.Fatalf("debug record must not reach stderr at info level: %q", buf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("log file is not JSON: %v (%q)", err, data)
	}
	if rec["msg"] != "tokenized" || rec["tokens"] != float64(3) {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNew_BadFile(t *testing.T) {
	_, _, err := logging.New(logging.Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	if err == nil {
		t.Fatal("expected error for unwritable log path")
	}
}
