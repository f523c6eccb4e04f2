package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"dalton/internal/source"
	"dalton/internal/token"
)

// CheckTokenStream runs the structural invariants every lexer output must satisfy:
// 1) the stream is non-empty and ends with exactly one EOF
// 2) every span lies in the file, spans are ordered and never overlap
// 3) Text is the exact lexeme at Span, EOF has empty text and an empty span
// 4) Loc is the position just past the lexeme: same line as Span.End, and
//    positions never go backwards
func CheckTokenStream(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 {
		return fmt.Errorf("empty token stream")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	var prevLoc source.Location
	for i, tok := range toks {
		last := i == len(toks)-1
		if tok.Kind == token.EOF && !last {
			return fmt.Errorf("token %d: EOF before end of stream", i)
		}
		if last && tok.Kind != token.EOF {
			return fmt.Errorf("stream ends with %s, want EOF", tok.Kind)
		}

		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d: span %v outside content of %d bytes", i, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous end %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		if tok.Kind == token.EOF {
			if tok.Text != "" || !sp.Empty() {
				return fmt.Errorf("EOF must be empty, got text=%q span=%v", tok.Text, sp)
			}
		} else {
			if sp.Empty() {
				return fmt.Errorf("token %d (%s): empty span", i, tok.Kind)
			}
			if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
				return fmt.Errorf("token %d (%s): text %q does not match source %q", i, tok.Kind, tok.Text, got)
			}
		}

		if tok.Loc.Filename != sf.Path {
			return fmt.Errorf("token %d: filename %q, want %q", i, tok.Loc.Filename, sf.Path)
		}
		if !tok.Loc.IsValid() {
			return fmt.Errorf("token %d: invalid location %s", i, tok.Loc)
		}
		if want := sf.LocationAt(sp.End).Line; tok.Loc.Line != want {
			return fmt.Errorf("token %d (%s): line %d, want %d", i, tok.Kind, tok.Loc.Line, want)
		}
		if i > 0 && tok.Loc.Less(prevLoc) {
			return fmt.Errorf("token %d: location %s before previous %s", i, tok.Loc, prevLoc)
		}
		prevLoc = tok.Loc
	}
	return nil
}
