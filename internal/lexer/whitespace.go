package lexer

// skipWhitespace съедает ASCII пробельные символы: ' ', \t, \n, \v, \f, \r.
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
