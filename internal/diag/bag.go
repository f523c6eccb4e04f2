package diag

import (
	"slices"
	"sort"

	"dalton/internal/source"
)

// Bag is the diagnostics sink: an ordered, append-only list.
// Insertion order is emission order. There is no dedup and no removal except Clear.
// Bag is not safe for concurrent writers; use one per goroutine and Merge afterwards.
type Bag struct {
	items  []Diagnostic
	errors int
}

func NewBag() *Bag {
	return &Bag{items: make([]Diagnostic, 0, 8)}
}

// Error добавляет диагностику уровня Error.
func (b *Bag) Error(loc source.Location, msg string, help ...string) {
	b.Report(SevError, loc, source.Span{}, msg, joinHelp(help))
}

// Warn добавляет диагностику уровня Warning; HasError не меняется.
func (b *Bag) Warn(loc source.Location, msg string, help ...string) {
	b.Report(SevWarning, loc, source.Span{}, msg, joinHelp(help))
}

// Report implements Reporter.
func (b *Bag) Report(sev Severity, loc source.Location, span source.Span, msg, help string) {
	b.Add(Diagnostic{Severity: sev, Location: loc, Span: span, Message: msg, Help: help})
}

// Add appends a ready diagnostic.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
	if d.Severity == SevError {
		b.errors++
	}
}

// HasDiagnostics reports whether anything was recorded.
func (b *Bag) HasDiagnostics() bool {
	return len(b.items) > 0
}

// HasError возвращает true, если есть хотя бы одна диагностика уровня Error.
func (b *Bag) HasError() bool {
	return b.errors > 0
}

// HasWarnings returns true if at least one warning was recorded.
func (b *Bag) HasWarnings() bool {
	return len(b.items) > b.errors
}

// ErrorCount returns the number of error diagnostics.
func (b *Bag) ErrorCount() int {
	return b.errors
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает копию диагностик в порядке добавления.
func (b *Bag) Items() []Diagnostic {
	return slices.Clone(b.items)
}

// Clear empties the bag so it can be reused for an independent compilation.
func (b *Bag) Clear() {
	b.items = b.items[:0]
	b.errors = 0
}

// Merge appends the diagnostics of other, preserving their order.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	for _, d := range other.items {
		b.Add(d)
	}
}

// Sort orders diagnostics for display: file, line, column, then errors before warnings.
// The sort is stable so equal positions keep emission order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Location.Filename != dj.Location.Filename {
			return di.Location.Filename < dj.Location.Filename
		}
		if di.Location != dj.Location {
			return di.Location.Less(dj.Location)
		}
		return di.Severity > dj.Severity
	})
}
