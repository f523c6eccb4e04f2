package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"

	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// normalizeContent turns raw file bytes into the UTF-8, LF-only form the lexer expects.
func normalizeContent(content []byte) ([]byte, FileFlags, error) {
	var flags FileFlags

	decoded, wasUTF16, err := decodeUTF16(content)
	if err != nil {
		return nil, 0, err
	}
	if wasUTF16 {
		flags |= FileDecodedUTF16 | FileHadBOM
		content = decoded
	}

	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	content, hadCRLF := normalizeCRLF(content)
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return content, flags, nil
}

// decodeUTF16 декодирует UTF-16 с BOM в UTF-8. Без BOM вход считается UTF-8.
func decodeUTF16(content []byte) ([]byte, bool, error) {
	if !bytes.HasPrefix(content, bomUTF16LE) && !bytes.HasPrefix(content, bomUTF16BE) {
		return content, false, nil
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	out, err := dec.Bytes(content)
	if err != nil {
		return nil, false, fmt.Errorf("decode utf-16: %w", err)
	}
	return out, true, nil
}

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bomUTF8) {
		return content[len(bomUTF8):], true
	}
	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

type lineCol struct {
	line uint32
	col  uint32
}

// toLineCol maps a byte offset to a 1-based line and byte column.
func toLineCol(lineIdx []uint32, off uint32) lineCol {
	// бинпоиск: количество '\n' строго перед off
	line, _ := slices.BinarySearch(lineIdx, off)
	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}
	return lineCol{line: uint32(line + 1), col: off - startOff + 1}
}

func normalizePath(p string) string {
	if p == "" {
		return ""
	}
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
