package driver

import (
	"log/slog"
	"runtime"
	"strings"
)

// DefaultExtensions lists the file suffixes picked up in directory mode.
var DefaultExtensions = []string{".dt"}

// Options configures the tokenize driver.
type Options struct {
	Extensions []string     // суффиксы файлов для режима директории; пусто: DefaultExtensions
	Jobs       int          // <= 0: GOMAXPROCS
	Cache      *DiskCache   // nil: без кэша
	Logger     *slog.Logger // nil: логи отбрасываются
	Progress   ProgressSink // nil: без событий
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) emit(evt Event) {
	if o.Progress != nil {
		o.Progress.OnEvent(evt)
	}
}

func (o Options) matches(path string) bool {
	exts := o.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	for _, ext := range exts {
		if ext != "" && strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
