package lexer

import (
	"dalton/internal/diag"
	"dalton/internal/source"
	"dalton/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// FromString builds a lexer over an in-memory buffer. filename may be empty.
func FromString(filename, src string, r diag.Reporter) *Lexer {
	fs := source.NewFileSet()
	id := fs.Add(filename, []byte(src), source.FileVirtual)
	return New(fs.Get(id), Options{Reporter: r})
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File { return lx.file }

// Next возвращает следующий значимый токен.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipWhitespace()

		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Loc:  lx.cursor.Location(),
				Span: lx.emptySpan(),
				Text: "",
			}
		}

		ch := lx.cursor.Peek()
		if isIdentStartByte(ch) {
			return lx.scanIdentOrKeyword()
		}
		// TODO: number and string literal scanners go here, before operators.
		if tok, ok := lx.scanOperatorOrPunct(); ok {
			return tok
		}
		lx.skipUnknown()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokens drains the lexer and returns every token including the final EOF.
func (lx *Lexer) Tokens() []token.Token {
	tokens := make([]token.Token, 0, 64)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) makeToken(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: k,
		Loc:  lx.cursor.Location(),
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
