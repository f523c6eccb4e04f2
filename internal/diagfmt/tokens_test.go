package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"dalton/internal/lexer"
)

func TestFormatTokensPretty(t *testing.T) {
	tokens := lexer.FromString("t.dt", "let x", nil).Tokens()

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	want := "  1: KwLet           \"let\" at 1:4 [0-3)\n" +
		"  2: Ident           \"x\" at 1:6 [4-5)\n" +
		"  3: EOF             at 1:6 [5-5)\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\nwant:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens := lexer.FromString("t.dt", "a+=b", nil).Tokens()

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	kinds := []string{"Ident", "PlusEqual", "Ident", "EOF"}
	if len(out) != len(kinds) {
		t.Fatalf("got %d tokens", len(out))
	}
	for i, k := range kinds {
		if out[i].Kind != k {
			t.Errorf("token %d kind %s, want %s", i, out[i].Kind, k)
		}
	}
	if out[1].Text != "+=" || out[3].Text != "" {
		t.Errorf("unexpected texts %q %q", out[1].Text, out[3].Text)
	}
}
