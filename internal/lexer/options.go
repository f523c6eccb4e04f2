package lexer

import (
	"dalton/internal/diag"
	"dalton/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil: тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) report(sp source.Span, msg, help string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(diag.SevError, lx.cursor.Location(), sp, msg, help)
	}
}
