package diag

import (
	"strings"

	"dalton/internal/source"
)

// Reporter: минимальный контракт получения диагностик от фаз.
// Реализации: *Bag (кладёт в себя), NopReporter.
type Reporter interface {
	Report(sev Severity, loc source.Location, span source.Span, msg, help string)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Severity, source.Location, source.Span, string, string) {}

// joinHelp renders optional help arguments; several parts become separate lines.
func joinHelp(help []string) string {
	switch len(help) {
	case 0:
		return ""
	case 1:
		return help[0]
	}
	return strings.Join(help, "\n")
}
