// Package token defines lexical token kinds and the reserved-word table for the Dalton compiler.
// Invariants:
//   - Token.Text is the exact lexeme; it is empty only for EOF.
//   - Token.Span covers Text exactly (Start..End in bytes).
//   - Token.Loc points just past the lexeme (see lexer package docs).
//   - Built-in type names (i32, u8, f64, str, bool, ...) are reserved words,
//     not identifiers.
//   - The keyword table is immutable after package initialisation.
package token
