package diag

import (
	"fmt"
	"strings"
)

// FormatShortDiagnostics renders diagnostics one per line in a stable form
// suitable for golden files and the CLI short output:
//
//	error main.dt:1:2 unknown token: '#'
//
// Newlines inside messages are flattened. Order is the order of diags.
func FormatShortDiagnostics(diags []Diagnostic, includeHelp bool) string {
	if len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, d := range diags {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s %s %s", strings.ToLower(d.Severity.String()), d.Location, flatten(d.Message))
		if includeHelp && d.HasHelp() {
			fmt.Fprintf(&sb, "\nhelp %s %s", d.Location, flatten(d.Help))
		}
	}
	return sb.String()
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
