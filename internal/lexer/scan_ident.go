package lexer

import (
	"fmt"

	"dalton/internal/token"
)

// maxTokenLength caps identifier length in bytes; longer ones are still returned.
const maxTokenLength = 4096

// scanIdentOrKeyword сканирует [A-Za-z_][A-Za-z0-9_]* и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые. Token.Text: ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	kind := token.Ident
	tok := lx.makeToken(kind, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}

	if tok.Span.Len() > maxTokenLength {
		lx.report(tok.Span,
			fmt.Sprintf("token too long: %d bytes (limit %d)", tok.Span.Len(), maxTokenLength),
			"split the name into shorter parts")
	}
	return tok
}
