package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"dalton/internal/source"
)

// Cursor представляет собой позицию в файле: байтовое смещение плюс строка и колонка.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32 // 1-based
	Col  uint32 // 1-based
	// Limit is the exclusive upper bound for Off; set to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor positioned at 1:1 of the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Line:  1,
		Col:   1,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт.
// '\n' увеличивает строку и сбрасывает колонку в 1, любой другой байт сдвигает колонку.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	c.advance(b == '\n')
	return b
}

// BumpRune consumes one UTF-8 encoded rune (or one invalid byte) as a single character.
func (c *Cursor) BumpRune() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	r, sz := utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	c.Off += usz
	c.advance(r == '\n')
	return r, sz
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}

func (c *Cursor) advance(newline bool) {
	if newline {
		c.Line++
		c.Col = 1
		return
	}
	c.Col++
}

// Location returns the human-readable position of the cursor.
func (c *Cursor) Location() source.Location {
	return source.Location{Filename: c.File.Path, Line: c.Line, Column: c.Col}
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}
