// Package diag defines the diagnostic model shared by all pipeline phases.
//
// # Purpose
//
//   - Provide a passive side channel (Bag) that lexer, parser and later passes
//     write into instead of aborting on recoverable problems.
//   - Keep the data model small and deterministic: severity, location, message
//     and optional help text.
//
// # Scope
//
// Package diag does not perform any IO, colouring or CLI integration.
// Rendering lives in internal/diagfmt; orchestration lives in internal/driver.
//
// # Lifecycle
//
// A driver creates one Bag per compilation, hands it to every phase as a
// Reporter, and queries HasError after all phases have run. Clear resets the
// bag for reuse across independent compilations; it is not meant to be called
// mid-pass. Phases never own the bag.
//
// # Severities
//
// Exactly two: SevWarning (informational) and SevError (compilation failed).
// The lexer only emits errors; warnings are reserved for later passes.
//
// # Concurrency
//
// Bag has no internal locking. Parallel drivers give each goroutine its own
// Bag and Merge them once the goroutines are done.
package diag
