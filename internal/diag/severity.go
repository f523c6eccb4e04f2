package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevWarning is informational and never fails a compilation.
	SevWarning Severity = iota + 1
	// SevError means the compilation must not proceed past the current stage.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
