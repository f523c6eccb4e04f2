package fuzztests

import (
	"testing"

	"dalton/internal/diag"
	"dalton/internal/lexer"
	"dalton/internal/source"
	"dalton/internal/testkit"
	"dalton/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.dt", input))

		bag := diag.NewBag()
		lx := lexer.New(file, lexer.Options{Reporter: bag})

		// каждый Next потребляет хотя бы байт, значит токенов не больше len+1
		var toks []token.Token
		for {
			tok := lx.Next()
			toks = append(toks, tok)
			if tok.IsEOF() {
				break
			}
			if len(toks) > len(input)+1 {
				t.Fatalf("stream longer than input: %d tokens for %d bytes", len(toks), len(input))
			}
		}
		if err := testkit.CheckTokenStream(toks, file); err != nil {
			t.Fatal(err)
		}
		if again := lx.Next(); !again.IsEOF() {
			t.Fatalf("Next after EOF returned %s", again.Kind)
		}

		// лексер пишет только ошибки, и все с валидной позицией
		for _, d := range bag.Items() {
			if d.Severity != diag.SevError {
				t.Fatalf("lexer emitted %s", d.Severity)
			}
			if !d.Location.IsValid() {
				t.Fatalf("diagnostic with invalid location: %v", d)
			}
		}
		if bag.HasError() != (bag.ErrorCount() > 0) || bag.ErrorCount() != bag.Len() {
			t.Fatalf("bag counters out of sync: len=%d errors=%d", bag.Len(), bag.ErrorCount())
		}
	})
}

// FuzzLexerNilReporter checks that a nil reporter changes nothing but the bag.
func FuzzLexerNilReporter(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		withBag := lexer.FromString("a.dt", string(input), diag.NewBag()).Tokens()
		silent := lexer.FromString("a.dt", string(input), nil).Tokens()
		if len(withBag) != len(silent) {
			t.Fatalf("token count differs: %d vs %d", len(withBag), len(silent))
		}
		for i := range withBag {
			if withBag[i] != silent[i] {
				t.Fatalf("token %d differs: %v vs %v", i, withBag[i], silent[i])
			}
		}
	})
}
