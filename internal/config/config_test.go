package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dalton/internal/config"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Lex.MaxDiagnostics != 100 || cfg.Output.Format != "pretty" || cfg.Output.Color != "auto" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.Lex.Extensions) != 1 || cfg.Lex.Extensions[0] != ".dt" {
		t.Fatalf("unexpected default extensions: %v", cfg.Lex.Extensions)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[lex]
extensions = [".dt", ".dalton"]
jobs = 4

[output]
format = "json"

[cache]
enabled = true
dir = ".cache/dalton"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q", cfg.Path)
	}
	if len(cfg.Lex.Extensions) != 2 || cfg.Lex.Extensions[1] != ".dalton" {
		t.Fatalf("extensions = %v", cfg.Lex.Extensions)
	}
	if cfg.Lex.Jobs != 4 {
		t.Fatalf("jobs = %d", cfg.Lex.Jobs)
	}
	// Not mentioned in the file: default survives.
	if cfg.Lex.MaxDiagnostics != 100 || cfg.Output.Color != "auto" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("format = %q", cfg.Output.Format)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Dir != filepath.Join(dir, ".cache", "dalton") {
		t.Fatalf("cache = %+v", cfg.Cache)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unknown key", "[lex]\nextension = [\".dt\"]\n", config.ErrUnknownKey},
		{"unknown section", "[render]\ncolor = \"on\"\n", config.ErrUnknownKey},
		{"bad color", "[output]\ncolor = \"sometimes\"\n", config.ErrInvalidValue},
		{"bad format", "[output]\nformat = \"xml\"\n", config.ErrInvalidValue},
		{"negative jobs", "[lex]\njobs = -1\n", config.ErrInvalidValue},
		{"extension without dot", "[lex]\nextensions = [\"dt\"]\n", config.ErrInvalidValue},
		{"empty extensions", "[lex]\nextensions = []\n", config.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := config.Load(path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Load error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_ShortFormat(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\nformat = \"short\"\n")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "short" {
		t.Fatalf("format = %q", cfg.Output.Format)
	}
}

func TestLoad_SyntaxError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[lex\n")
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, ok, err := config.Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("Find = %q, want %q", got, want)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[lex]\nmax_diagnostics = 7\n")

	cfg, err := config.Discover("", root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Lex.MaxDiagnostics != 7 {
		t.Fatalf("max_diagnostics = %d", cfg.Lex.MaxDiagnostics)
	}

	other := filepath.Join(t.TempDir(), "explicit.toml")
	if err := os.WriteFile(other, []byte("[lex]\nmax_diagnostics = 3\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err = config.Discover(other, root)
	if err != nil {
		t.Fatalf("Discover explicit: %v", err)
	}
	if cfg.Lex.MaxDiagnostics != 3 {
		t.Fatalf("explicit config ignored: %d", cfg.Lex.MaxDiagnostics)
	}

	if _, err := config.Discover(filepath.Join(root, "missing.toml"), root); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}
