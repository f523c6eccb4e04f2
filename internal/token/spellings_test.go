package token_test

import "dalton/internal/token"

// operatorSpellings lists every operator with its exact lexeme.
var operatorSpellings = []struct {
	text string
	kind token.Kind
}{
	{"+", token.Plus},
	{"+=", token.PlusEqual},
	{"-", token.Minus},
	{"-=", token.MinusEqual},
	{"->", token.Arrow},
	{"*", token.Star},
	{"*=", token.StarEqual},
	{"/", token.Slash},
	{"/=", token.SlashEqual},
	{"%", token.Percent},
	{"%=", token.PercentEqual},
	{"^", token.Caret},
	{"^=", token.CaretEqual},
	{"!", token.Bang},
	{"!=", token.BangEqual},
	{",", token.Comma},
	{":", token.Colon},
	{";", token.Semicolon},
	{"=", token.Equal},
	{"==", token.EqualEqual},
	{".", token.Dot},
	{"..", token.DotDot},
	{"...", token.DotDotDot},
	{"?", token.Question},
	{"|", token.Pipe},
	{"||", token.OrOr},
	{"&", token.Amp},
	{"&&", token.AndAnd},
	{"~", token.Tilde},
	{">", token.Greater},
	{">=", token.GreaterEqual},
	{">>", token.ShiftRight},
	{"<", token.Less},
	{"<=", token.LessEqual},
	{"<<", token.ShiftLeft},
	{"(", token.LeftParen},
	{")", token.RightParen},
	{"[", token.LeftBracket},
	{"]", token.RightBracket},
	{"{", token.LeftBrace},
	{"}", token.RightBrace},
}
