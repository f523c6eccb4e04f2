package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the project configuration file looked up from the working directory.
const FileName = "dalton.toml"

// Config mirrors dalton.toml.
type Config struct {
	Lex    LexConfig    `toml:"lex"`
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

// LexConfig is the [lex] section.
type LexConfig struct {
	Extensions     []string `toml:"extensions"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Jobs           int      `toml:"jobs"`
}

// OutputConfig is the [output] section.
type OutputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

// CacheConfig is the [cache] section.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

var (
	// ErrUnknownKey indicates a key in dalton.toml that no section understands.
	ErrUnknownKey = errors.New("unknown key")
	// ErrInvalidValue indicates a key with a value outside its allowed set.
	ErrInvalidValue = errors.New("invalid value")
)

// Default returns the configuration used when no dalton.toml is present.
func Default() Config {
	return Config{
		Lex: LexConfig{
			Extensions:     []string{".dt"},
			MaxDiagnostics: 100,
		},
		Output: OutputConfig{
			Color:  "auto",
			Format: "pretty",
		},
	}
}

// Find walks up from startDir to locate dalton.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses path on top of Default. Keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), cfg.Cache.Dir)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads explicit when set, otherwise the nearest dalton.toml above
// startDir, otherwise Default.
func Discover(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%w: output.color = %q (want auto|on|off)", ErrInvalidValue, c.Output.Color)
	}
	switch c.Output.Format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("%w: output.format = %q (want pretty|json|short)", ErrInvalidValue, c.Output.Format)
	}
	if c.Lex.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: lex.max_diagnostics = %d", ErrInvalidValue, c.Lex.MaxDiagnostics)
	}
	if c.Lex.Jobs < 0 {
		return fmt.Errorf("%w: lex.jobs = %d", ErrInvalidValue, c.Lex.Jobs)
	}
	if len(c.Lex.Extensions) == 0 {
		return fmt.Errorf("%w: lex.extensions is empty", ErrInvalidValue)
	}
	for _, ext := range c.Lex.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: lex.extensions entry %q must start with '.'", ErrInvalidValue, ext)
		}
	}
	return nil
}
