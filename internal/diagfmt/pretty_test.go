package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"dalton/internal/diag"
	"dalton/internal/lexer"
	"dalton/internal/source"
)

// lexInto lexes content registered in fs and returns the filled bag.
func lexInto(fs *source.FileSet, path, content string) *diag.Bag {
	bag := diag.NewBag()
	f := fs.Get(fs.AddVirtual(path, []byte(content)))
	lexer.New(f, lexer.Options{Reporter: bag}).Tokens()
	return bag
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	bag := lexInto(fs, "/home/user/project/src/test.dt", "let x = #\n")

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.dt:1:10"},
		{"Relative path", PathModeRelative, "src/test.dt:1:10"},
		{"Basename only", PathModeBasename, "test.dt:1:10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR") {
				t.Error("Expected ERROR in output")
			}
			if !strings.Contains(output, "unknown token: '#'") {
				t.Error("Expected error message in output")
			}
		})
	}
}

func TestPrettySnippetAndHelp(t *testing.T) {
	fs := source.NewFileSet()
	bag := lexInto(fs, "main.dt", "fn f() {}\nlet  # x\n")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowHelp: true, ShowPreview: true})

	want := "main.dt:2:7: ERROR: unknown token: '#'\n" +
		"  |\n" +
		"2 | let  # x\n" +
		"  |      ^\n" +
		"  = help: check for typos or unsupported characters\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected pretty output:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrettyWideRunesAndTabs(t *testing.T) {
	fs := source.NewFileSet()
	bag := lexInto(fs, "wide.dt", "\tx 日本 y")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowPreview: true, Max: 1})
	lines := strings.Split(buf.String(), "\n")
	// заголовок, пустой гаттер, строка, каретка, "... and 1 more"
	if len(lines) < 5 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	if lines[3] != "  | \t  ^^" {
		t.Fatalf("caret line = %q", lines[3])
	}
	if lines[4] != "... and 1 more diagnostic(s)" {
		t.Fatalf("truncation line = %q", lines[4])
	}
}

func TestPrettyUnknownFileSkipsSnippet(t *testing.T) {
	bag := diag.NewBag()
	bag.Warn(source.NewLocation("ghost.dt", 4, 2), "missing file", "nothing to show")

	var buf bytes.Buffer
	Pretty(&buf, bag, source.NewFileSet(), PrettyOpts{ShowPreview: true, ShowHelp: true})
	want := "ghost.dt:4:2: WARNING: missing file\n  = help: nothing to show\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s", buf.String())
	}
}

func TestCaretIndent(t *testing.T) {
	cases := []struct {
		line string
		col  int
		want string
	}{
		{"abc", 1, ""},
		{"abc", 3, "  "},
		{"\tab", 3, "\t "},
		{"ab", 5, "    "},
		{"é!", 3, " "},
	}
	for _, c := range cases {
		if got := caretIndent(c.line, c.col); got != c.want {
			t.Errorf("caretIndent(%q, %d) = %q, want %q", c.line, c.col, got, c.want)
		}
	}
}
