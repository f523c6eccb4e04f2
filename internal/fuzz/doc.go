// Package fuzztests houses Go fuzz harnesses for the lexical front end
// (source -> lexer -> diagnostics). Its goal is to smoke test robustness and
// guard against panics, endless streams and broken token invariants on
// arbitrary inputs.
//
// Назначение: загружать байты в FileSet и прогонять их через лексер,
// проверяя инварианты потока токенов через internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag, internal/testkit.
package fuzztests
