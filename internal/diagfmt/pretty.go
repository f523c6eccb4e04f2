package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"dalton/internal/diag"
	"dalton/internal/source"
)

type palette struct {
	err, warn, loc, help, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		loc:    color.New(color.Bold),
		help:   color.New(color.FgCyan),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.loc, p.help, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид в порядке bag.Items()
// (сортировка: забота вызывающего, см. diag.Bag.Sort).
// Для каждой диагностики печатает:
//
//	<path>:<line>:<col>: <SEV>: <Message>
//	   |
//	 3 | let # x
//	   |     ^
//	   = help: <Help>
//
// Сниппет печатается, только если файл есть в fs и ShowPreview включён.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	items := bag.Items()
	shown := len(items)
	if opts.Max > 0 && opts.Max < shown {
		shown = opts.Max
	}

	for _, d := range items[:shown] {
		sev := pal.warn
		if d.Severity == diag.SevError {
			sev = pal.err
		}
		fmt.Fprintf(w, "%s: %s: %s\n",
			pal.loc.Sprint(displayLocation(d.Location, fs, opts.PathMode)),
			sev.Sprint(d.Severity.String()),
			d.Message)

		if opts.ShowPreview {
			writeSnippet(w, d, fs, pal)
		}
		if opts.ShowHelp && d.HasHelp() {
			for _, line := range strings.Split(d.Help, "\n") {
				fmt.Fprintf(w, "  %s %s\n", pal.gutter.Sprint("="), pal.help.Sprint("help: "+line))
			}
		}
	}

	if hidden := len(items) - shown; hidden > 0 {
		fmt.Fprintf(w, "... and %d more diagnostic(s)\n", hidden)
	}
}

func writeSnippet(w io.Writer, d diag.Diagnostic, fs *source.FileSet, pal palette) {
	f := fileFor(d.Location, fs)
	if f == nil {
		return
	}

	var line uint32
	var startCol, width int
	if !d.Span.Empty() && d.Span.File == f.ID {
		start := f.LocationAt(d.Span.Start)
		line = start.Line
		startCol = int(start.Column)
		width = runewidth.StringWidth(string(f.Content[d.Span.Start:d.Span.End]))
	} else {
		line = d.Location.Line
		startCol = int(d.Location.Column)
	}
	if width < 1 {
		width = 1
	}

	text := f.GetLine(line)
	num := fmt.Sprintf("%d", line)
	pad := strings.Repeat(" ", len(num))
	bar := pal.gutter.Sprint("|")

	fmt.Fprintf(w, "%s %s\n", pad, bar)
	fmt.Fprintf(w, "%s %s %s\n", pal.gutter.Sprint(num), bar, text)
	fmt.Fprintf(w, "%s %s %s%s\n", pad, bar, caretIndent(text, startCol), pal.caret.Sprint(strings.Repeat("^", width)))
}

// caretIndent returns the whitespace that puts a caret under byte column col
// (1-based) of line, keeping tabs and accounting for wide runes.
func caretIndent(line string, col int) string {
	end := col - 1
	if end > len(line) {
		end = len(line)
	}
	if end < 0 {
		end = 0
	}
	var sb strings.Builder
	for _, r := range line[:end] {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	if col-1 > len(line) {
		sb.WriteString(strings.Repeat(" ", col-1-len(line)))
	}
	return sb.String()
}
