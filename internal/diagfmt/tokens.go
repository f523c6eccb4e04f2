package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"dalton/internal/source"
	"dalton/internal/token"
)

type TokenOutput struct {
	Kind   string      `json:"kind"`
	Text   string      `json:"text"`
	Line   uint32      `json:"line"`
	Column uint32      `json:"column"`
	Span   source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
//
//	  1: KwLet           "let" at 1:4 [0-3)
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d [%d-%d)\n", tok.Loc.Line, tok.Loc.Column, tok.Span.Start, tok.Span.End)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(TokensToOutput(tokens))
}

// TokensToOutput converts tokens to their serialisable form, stopping at EOF.
func TokensToOutput(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Line:   tok.Loc.Line,
			Column: tok.Loc.Column,
			Span:   tok.Span,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}
