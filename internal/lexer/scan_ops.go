package lexer

import (
	"dalton/internal/token"
)

// scanOperatorOrPunct разбирает операторы с жадностью (maximal munch):
// после первого символа пробуем продлить лексему ровно одним символом за шаг.
// Если символ не относится к операторам, курсор не сдвигается и ok == false.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) (token.Token, bool) {
		return lx.makeToken(k, start), true
	}

	ch := lx.cursor.Peek()
	if !isOperatorStart(ch) {
		return token.Token{}, false
	}
	lx.cursor.Bump()

	switch ch {
	case '+':
		if lx.cursor.Eat('=') {
			return emit(token.PlusEqual)
		}
		return emit(token.Plus)
	case '-':
		if lx.cursor.Eat('=') {
			return emit(token.MinusEqual)
		}
		if lx.cursor.Eat('>') {
			return emit(token.Arrow)
		}
		return emit(token.Minus)
	case '*':
		if lx.cursor.Eat('=') {
			return emit(token.StarEqual)
		}
		return emit(token.Star)
	case '/':
		if lx.cursor.Eat('=') {
			return emit(token.SlashEqual)
		}
		return emit(token.Slash)
	case '%':
		if lx.cursor.Eat('=') {
			return emit(token.PercentEqual)
		}
		return emit(token.Percent)
	case '^':
		if lx.cursor.Eat('=') {
			return emit(token.CaretEqual)
		}
		return emit(token.Caret)
	case '!':
		if lx.cursor.Eat('=') {
			return emit(token.BangEqual)
		}
		return emit(token.Bang)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case '=':
		if lx.cursor.Eat('=') {
			return emit(token.EqualEqual)
		}
		return emit(token.Equal)
	case '.':
		if lx.cursor.Eat('.') {
			if lx.cursor.Eat('.') {
				return emit(token.DotDotDot)
			}
			return emit(token.DotDot)
		}
		return emit(token.Dot)
	case '?':
		return emit(token.Question)
	case '|':
		if lx.cursor.Eat('|') {
			return emit(token.OrOr)
		}
		return emit(token.Pipe)
	case '&':
		if lx.cursor.Eat('&') {
			return emit(token.AndAnd)
		}
		return emit(token.Amp)
	case '~':
		return emit(token.Tilde)
	case '>':
		if lx.cursor.Eat('=') {
			return emit(token.GreaterEqual)
		}
		if lx.cursor.Eat('>') {
			return emit(token.ShiftRight)
		}
		return emit(token.Greater)
	case '<':
		if lx.cursor.Eat('=') {
			return emit(token.LessEqual)
		}
		if lx.cursor.Eat('<') {
			return emit(token.ShiftLeft)
		}
		return emit(token.Less)
	case '(':
		return emit(token.LeftParen)
	case ')':
		return emit(token.RightParen)
	case '[':
		return emit(token.LeftBracket)
	case ']':
		return emit(token.RightBracket)
	case '{':
		return emit(token.LeftBrace)
	default: // '}'
		return emit(token.RightBrace)
	}
}

// skipUnknown consumes one unrecognised character (a whole rune for UTF-8
// sequences) and reports it. No token is produced.
func (lx *Lexer) skipUnknown() {
	start := lx.cursor.Mark()
	r, sz := lx.cursor.BumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.report(sp, "unknown token: "+describeChar(r, sz, lx.file.Content[sp.Start:sp.End]),
		"check for typos or unsupported characters")
}
