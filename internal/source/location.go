package source

import "fmt"

// Location is a human-readable position: file name plus one-based line and column.
// The zero Filename is used for virtual buffers and stdin.
type Location struct {
	Filename string
	Line     uint32 // 1-based
	Column   uint32 // 1-based
}

// NewLocation builds a Location value.
func NewLocation(filename string, line, column uint32) Location {
	return Location{Filename: filename, Line: line, Column: column}
}

func (l Location) String() string {
	if l.Filename == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Column)
}

// Less orders locations by line, then column. Filenames are not compared.
func (l Location) Less(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Column < other.Column
}

// IsValid reports whether both line and column are one-based.
func (l Location) IsValid() bool {
	return l.Line >= 1 && l.Column >= 1
}
