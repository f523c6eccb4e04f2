package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"fn":          KwFn,
		"let":         KwLet,
		"mut":         KwMut,
		"return":      KwReturn,
		"compiletime": KwCompiletime,
		"i128":        KwI128,
		"usize":       KwUsize,
		"map":         KwMap,
		"nil":         KwNil,
		"true":        KwTrue,
		"false":       KwFalse,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"Fn", "LET", "Mut", // регистр важен
		"int", "uint32", "float64", "string",
		"lets", "fn_", "_fn", "i7", "u512",
		"identifier", "",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKeywordTableConsistent(t *testing.T) {
	spellings := Keywords()
	if len(spellings) != len(keywords) {
		t.Fatalf("keyword order has %d entries, table has %d", len(spellings), len(keywords))
	}
	if len(spellings) != int(keywordEnd-keywordBegin-1) {
		t.Fatalf("table has %d entries, enum declares %d", len(spellings), keywordEnd-keywordBegin-1)
	}
	seen := make(map[Kind]string, len(spellings))
	for _, s := range spellings {
		k, ok := LookupKeyword(s)
		if !ok {
			t.Fatalf("%q listed but not in table", s)
		}
		if !k.IsKeyword() {
			t.Fatalf("%q maps to non-keyword kind %v", s, k)
		}
		if prev, dup := seen[k]; dup {
			t.Fatalf("%q and %q share kind %v", prev, s, k)
		}
		seen[k] = s
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	a := Keywords()
	a[0] = "mutated"
	if Keywords()[0] != "let" {
		t.Fatalf("Keywords must not expose internal storage")
	}
}
