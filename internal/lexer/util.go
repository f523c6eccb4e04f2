package lexer

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// ===== Классификаторы =====

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isOperatorStart(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '^', '!', ',', ':', ';', '=', '.', '?',
		'|', '&', '~', '>', '<', '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

// describeChar quotes the offending character for diagnostics: '#', 'é', '\x00', '\xff'.
func describeChar(r rune, size int, raw []byte) string {
	if r == utf8.RuneError && size <= 1 {
		if len(raw) == 0 {
			return "''"
		}
		return fmt.Sprintf(`'\x%02x'`, raw[0])
	}
	if unicode.IsPrint(r) {
		return "'" + string(r) + "'"
	}
	return strconv.QuoteRune(r)
}
