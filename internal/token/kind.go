package token

import "strconv"

// Kind represents the category of a source token.
type Kind uint8

const (
	// EOF marks the end of the source input. It is also the zero Kind.
	EOF Kind = iota
	// Ident represents an identifier token.
	Ident

	keywordBegin
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwType represents the 'type' keyword.
	KwType // type
	// KwScope represents the 'scope' keyword.
	KwScope // scope
	// KwExternal represents the 'external' keyword.
	KwExternal // external
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwWhere represents the 'where' keyword.
	KwWhere // where
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwDefer represents the 'defer' keyword.
	KwDefer // defer
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwNil represents the 'nil' keyword.
	KwNil // nil
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwCompiletime represents the 'compiletime' keyword.
	KwCompiletime // compiletime
	// KwI8 represents the 'i8' keyword.
	KwI8 // i8
	// KwI16 represents the 'i16' keyword.
	KwI16 // i16
	// KwI32 represents the 'i32' keyword.
	KwI32 // i32
	// KwI64 represents the 'i64' keyword.
	KwI64 // i64
	// KwI128 represents the 'i128' keyword.
	KwI128 // i128
	// KwI256 represents the 'i256' keyword.
	KwI256 // i256
	// KwIsize represents the 'isize' keyword.
	KwIsize // isize
	// KwU8 represents the 'u8' keyword.
	KwU8 // u8
	// KwU16 represents the 'u16' keyword.
	KwU16 // u16
	// KwU32 represents the 'u32' keyword.
	KwU32 // u32
	// KwU64 represents the 'u64' keyword.
	KwU64 // u64
	// KwU128 represents the 'u128' keyword.
	KwU128 // u128
	// KwU256 represents the 'u256' keyword.
	KwU256 // u256
	// KwUsize represents the 'usize' keyword.
	KwUsize // usize
	// KwF32 represents the 'f32' keyword.
	KwF32 // f32
	// KwF64 represents the 'f64' keyword.
	KwF64 // f64
	// KwChar represents the 'char' keyword.
	KwChar // char
	// KwStr represents the 'str' keyword.
	KwStr // str
	// KwBool represents the 'bool' keyword.
	KwBool // bool
	// KwMap represents the 'map' keyword.
	KwMap // map
	keywordEnd

	operatorBegin
	// Plus represents the plus operator token.
	Plus // +
	// PlusEqual represents the add-assign operator token.
	PlusEqual // +=
	// Minus represents the minus operator token.
	Minus // -
	// MinusEqual represents the subtract-assign operator token.
	MinusEqual // -=
	// Arrow represents the arrow token.
	Arrow // ->
	// Star represents the star operator token.
	Star // *
	// StarEqual represents the multiply-assign operator token.
	StarEqual // *=
	// Slash represents the slash operator token.
	Slash // /
	// SlashEqual represents the divide-assign operator token.
	SlashEqual // /=
	// Percent represents the percent operator token.
	Percent // %
	// PercentEqual represents the remainder-assign operator token.
	PercentEqual // %=
	// Caret represents the caret operator token.
	Caret // ^
	// CaretEqual represents the xor-assign operator token.
	CaretEqual // ^=
	// Bang represents the bang operator token.
	Bang // !
	// BangEqual represents the not-equal operator token.
	BangEqual // !=
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Equal represents the assignment operator token.
	Equal // =
	// EqualEqual represents the equality operator token.
	EqualEqual // ==
	// Dot represents the dot token.
	Dot // .
	// DotDot represents the range operator token.
	DotDot // ..
	// DotDotDot represents the variadic ellipsis token.
	DotDotDot // ...
	// Question represents the question mark token.
	Question // ?
	// Pipe represents the pipe operator token.
	Pipe // |
	// OrOr represents the logical or operator token.
	OrOr // ||
	// Amp represents the ampersand operator token.
	Amp // &
	// AndAnd represents the logical and operator token.
	AndAnd // &&
	// Tilde represents the tilde operator token.
	Tilde // ~
	// Greater represents the greater-than operator token.
	Greater // >
	// GreaterEqual represents the greater-or-equal operator token.
	GreaterEqual // >=
	// ShiftRight represents the right shift operator token.
	ShiftRight // >>
	// Less represents the less-than operator token.
	Less // <
	// LessEqual represents the less-or-equal operator token.
	LessEqual // <=
	// ShiftLeft represents the left shift operator token.
	ShiftLeft // <<
	// LeftParen represents the left parenthesis token.
	LeftParen // (
	// RightParen represents the right parenthesis token.
	RightParen // )
	// LeftBracket represents the left bracket token.
	LeftBracket // [
	// RightBracket represents the right bracket token.
	RightBracket // ]
	// LeftBrace represents the left brace token.
	LeftBrace // {
	// RightBrace represents the right brace token.
	RightBrace // }
	operatorEnd
)

var kindNames = [...]string{
	EOF:           "EOF",
	Ident:         "Ident",
	KwLet:         "KwLet",
	KwMut:         "KwMut",
	KwConst:       "KwConst",
	KwFn:          "KwFn",
	KwStruct:      "KwStruct",
	KwTrait:       "KwTrait",
	KwEnum:        "KwEnum",
	KwType:        "KwType",
	KwScope:       "KwScope",
	KwExternal:    "KwExternal",
	KwPub:         "KwPub",
	KwImport:      "KwImport",
	KwWhere:       "KwWhere",
	KwIf:          "KwIf",
	KwThen:        "KwThen",
	KwElse:        "KwElse",
	KwSwitch:      "KwSwitch",
	KwCase:        "KwCase",
	KwDefault:     "KwDefault",
	KwFor:         "KwFor",
	KwWhile:       "KwWhile",
	KwLoop:        "KwLoop",
	KwBreak:       "KwBreak",
	KwContinue:    "KwContinue",
	KwReturn:      "KwReturn",
	KwDefer:       "KwDefer",
	KwIn:          "KwIn",
	KwAs:          "KwAs",
	KwNil:         "KwNil",
	KwTrue:        "KwTrue",
	KwFalse:       "KwFalse",
	KwTry:         "KwTry",
	KwCatch:       "KwCatch",
	KwCompiletime: "KwCompiletime",
	KwI8:          "KwI8",
	KwI16:         "KwI16",
	KwI32:         "KwI32",
	KwI64:         "KwI64",
	KwI128:        "KwI128",
	KwI256:        "KwI256",
	KwIsize:       "KwIsize",
	KwU8:          "KwU8",
	KwU16:         "KwU16",
	KwU32:         "KwU32",
	KwU64:         "KwU64",
	KwU128:        "KwU128",
	KwU256:        "KwU256",
	KwUsize:       "KwUsize",
	KwF32:         "KwF32",
	KwF64:         "KwF64",
	KwChar:        "KwChar",
	KwStr:         "KwStr",
	KwBool:        "KwBool",
	KwMap:         "KwMap",
	Plus:          "Plus",
	PlusEqual:     "PlusEqual",
	Minus:         "Minus",
	MinusEqual:    "MinusEqual",
	Arrow:         "Arrow",
	Star:          "Star",
	StarEqual:     "StarEqual",
	Slash:         "Slash",
	SlashEqual:    "SlashEqual",
	Percent:       "Percent",
	PercentEqual:  "PercentEqual",
	Caret:         "Caret",
	CaretEqual:    "CaretEqual",
	Bang:          "Bang",
	BangEqual:     "BangEqual",
	Comma:         "Comma",
	Colon:         "Colon",
	Semicolon:     "Semicolon",
	Equal:         "Equal",
	EqualEqual:    "EqualEqual",
	Dot:           "Dot",
	DotDot:        "DotDot",
	DotDotDot:     "DotDotDot",
	Question:      "Question",
	Pipe:          "Pipe",
	OrOr:          "OrOr",
	Amp:           "Amp",
	AndAnd:        "AndAnd",
	Tilde:         "Tilde",
	Greater:       "Greater",
	GreaterEqual:  "GreaterEqual",
	ShiftRight:    "ShiftRight",
	Less:          "Less",
	LessEqual:     "LessEqual",
	ShiftLeft:     "ShiftLeft",
	LeftParen:     "LeftParen",
	RightParen:    "RightParen",
	LeftBracket:   "LeftBracket",
	RightBracket:  "RightBracket",
	LeftBrace:     "LeftBrace",
	RightBrace:    "RightBrace",
}

// String returns the stable name of the kind, e.g. "KwLet" or "PlusEqual".
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k > keywordBegin && k < keywordEnd }

// IsPunctOrOp reports whether k is an operator or punctuation mark.
func (k Kind) IsPunctOrOp() bool { return k > operatorBegin && k < operatorEnd }
