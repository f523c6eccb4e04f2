package diag

import (
	"fmt"

	"dalton/internal/source"
)

// Diagnostic is an immutable record of one finding.
// Help is optional; the empty string means "no help".
type Diagnostic struct {
	Severity Severity
	Location source.Location
	Span     source.Span
	Message  string
	Help     string
}

// HasHelp reports whether the diagnostic carries help text.
func (d Diagnostic) HasHelp() bool { return d.Help != "" }

// IsError reports whether the diagnostic has error severity.
func (d Diagnostic) IsError() bool { return d.Severity == SevError }

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Severity, d.Message)
}
