// Package lexer turns a source buffer into a stream of tokens.
//
// The lexer is a single left-to-right pass with at most two characters of
// lookahead. It never fails: unknown characters are reported to the
// diag.Reporter given in Options and skipped, so one bad character costs
// exactly one diagnostic and no following tokens.
//
// Location policy: Token.Loc and diagnostic locations are taken from the
// cursor after the lexeme has been consumed, so they point at the column just
// past the lexeme. Token.Span keeps the exact byte range for renderers that
// need the start.
//
// A Lexer is not safe for concurrent use. Lex files in parallel by giving each
// goroutine its own Lexer and diag.Bag.
package lexer
