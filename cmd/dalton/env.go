package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"dalton/internal/config"
	"dalton/internal/driver"
	"dalton/internal/logging"
	"dalton/internal/observ"
	"dalton/internal/prof"
)

// cliEnv is what every subcommand needs after flags and dalton.toml are merged.
type cliEnv struct {
	cfg            config.Config
	log            *slog.Logger
	closeLog       func() error
	colorMode      string
	maxDiagnostics int
	timings        bool
	timer          *observ.Timer
	profile        *prof.Session
}

// loadEnv reads persistent flags and the project config. Flags set explicitly
// on the command line win over dalton.toml.
func loadEnv(cmd *cobra.Command) (*cliEnv, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Discover(configPath, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	levelStr, err := flags.GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	logFile, err := flags.GetString("log-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-file flag: %w", err)
	}
	log, closeLog, err := logging.New(logging.Options{Level: level, Stderr: cmd.ErrOrStderr(), File: logFile})
	if err != nil {
		return nil, err
	}

	env := &cliEnv{
		cfg:            cfg,
		log:            log,
		closeLog:       closeLog,
		colorMode:      cfg.Output.Color,
		maxDiagnostics: cfg.Lex.MaxDiagnostics,
		timer:          observ.NewTimer(),
	}

	// после открытия лог-файла все ошибки идут через fail
	fail := func(err error) (*cliEnv, error) {
		env.close()
		return nil, err
	}

	if flags.Changed("color") {
		if env.colorMode, err = flags.GetString("color"); err != nil {
			return fail(fmt.Errorf("failed to get color flag: %w", err))
		}
	}
	switch env.colorMode {
	case "auto", "on", "off":
	default:
		return fail(fmt.Errorf("invalid --color value %q (expected auto|on|off)", env.colorMode))
	}
	if flags.Changed("max-diagnostics") {
		if env.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return fail(fmt.Errorf("failed to get max-diagnostics flag: %w", err))
		}
	}
	if env.timings, err = flags.GetBool("timings"); err != nil {
		return fail(fmt.Errorf("failed to get timings flag: %w", err))
	}

	if cfg.Path != "" {
		log.Debug("config loaded", "path", cfg.Path)
	}

	var profOpts prof.Options
	if profOpts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fail(fmt.Errorf("failed to get cpu-profile flag: %w", err))
	}
	if profOpts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fail(fmt.Errorf("failed to get mem-profile flag: %w", err))
	}
	if profOpts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fail(fmt.Errorf("failed to get runtime-trace flag: %w", err))
	}
	if env.profile, err = prof.Start(profOpts); err != nil {
		return fail(err)
	}
	return env, nil
}

// close stops profiling and releases the log file.
func (e *cliEnv) close() {
	if err := e.profile.Stop(); err != nil {
		e.log.Warn("profiling", "err", err)
	}
	if e.closeLog != nil {
		_ = e.closeLog()
	}
}

func (e *cliEnv) useColor(w io.Writer) bool {
	return resolveColor(e.colorMode, w)
}

// resolveColor maps auto|on|off onto a decision for w; auto means "w is a terminal".
func resolveColor(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && isTerminal(f)
	}
}

// format returns the --format flag when set, otherwise the configured default.
// extra lists command-specific formats on top of pretty and json.
func (e *cliEnv) format(cmd *cobra.Command, extra ...string) (string, error) {
	format := e.cfg.Output.Format
	if cmd.Flags().Changed("format") {
		var err error
		if format, err = cmd.Flags().GetString("format"); err != nil {
			return "", fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	format = strings.ToLower(format)
	allowed := append([]string{"pretty", "json"}, extra...)
	if slices.Contains(allowed, format) {
		return format, nil
	}
	return "", fmt.Errorf("unsupported format %q (must be one of %s)", format, strings.Join(allowed, "|"))
}

// driverOptions builds driver options from config and the per-command flags
// shared by tokenize and diag.
func (e *cliEnv) driverOptions(cmd *cobra.Command) (driver.Options, error) {
	opts := driver.Options{
		Extensions: e.cfg.Lex.Extensions,
		Jobs:       e.cfg.Lex.Jobs,
		Logger:     e.log,
	}
	if cmd.Flags().Changed("jobs") {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return opts, fmt.Errorf("failed to get jobs flag: %w", err)
		}
		opts.Jobs = jobs
	}

	useCache := e.cfg.Cache.Enabled
	if cmd.Flags().Changed("cache") {
		var err error
		if useCache, err = cmd.Flags().GetBool("cache"); err != nil {
			return opts, fmt.Errorf("failed to get cache flag: %w", err)
		}
	}
	if useCache {
		cache, err := e.openCache()
		if err != nil {
			// работаем без кэша
			e.log.Warn("token cache disabled", "err", err)
		} else {
			opts.Cache = cache
			e.log.Debug("token cache enabled", "dir", cache.Dir())
		}
	}
	return opts, nil
}

// openCache opens the token cache: [cache].dir from dalton.toml, or the
// per-user cache directory.
func (e *cliEnv) openCache() (*driver.DiskCache, error) {
	if e.cfg.Cache.Dir != "" {
		return driver.NewDiskCache(e.cfg.Cache.Dir)
	}
	return driver.OpenDiskCache("dalton")
}

func (e *cliEnv) printTimings(w io.Writer) {
	if e.timings {
		fmt.Fprint(w, e.timer.Summary())
	}
}
