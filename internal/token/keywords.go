package token

// keywords is the reserved-word table. It is built once and never written afterwards.
var keywords = map[string]Kind{
	"let":         KwLet,
	"mut":         KwMut,
	"const":       KwConst,
	"fn":          KwFn,
	"struct":      KwStruct,
	"trait":       KwTrait,
	"enum":        KwEnum,
	"type":        KwType,
	"scope":       KwScope,
	"external":    KwExternal,
	"pub":         KwPub,
	"import":      KwImport,
	"where":       KwWhere,
	"if":          KwIf,
	"then":        KwThen,
	"else":        KwElse,
	"switch":      KwSwitch,
	"case":        KwCase,
	"default":     KwDefault,
	"for":         KwFor,
	"while":       KwWhile,
	"loop":        KwLoop,
	"break":       KwBreak,
	"continue":    KwContinue,
	"return":      KwReturn,
	"defer":       KwDefer,
	"in":          KwIn,
	"as":          KwAs,
	"nil":         KwNil,
	"true":        KwTrue,
	"false":       KwFalse,
	"try":         KwTry,
	"catch":       KwCatch,
	"compiletime": KwCompiletime,
	"i8":          KwI8,
	"i16":         KwI16,
	"i32":         KwI32,
	"i64":         KwI64,
	"i128":        KwI128,
	"i256":        KwI256,
	"isize":       KwIsize,
	"u8":          KwU8,
	"u16":         KwU16,
	"u32":         KwU32,
	"u64":         KwU64,
	"u128":        KwU128,
	"u256":        KwU256,
	"usize":       KwUsize,
	"f32":         KwF32,
	"f64":         KwF64,
	"char":        KwChar,
	"str":         KwStr,
	"bool":        KwBool,
	"map":         KwMap,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Сравнение точное и регистрозависимое: "Let" и "LET" остаются идентификаторами.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Keywords returns every reserved spelling in declaration order.
func Keywords() []string {
	out := make([]string, 0, len(keywordOrder))
	return append(out, keywordOrder...)
}

var keywordOrder = []string{
	"let", "mut", "const", "fn", "struct", "trait", "enum", "type", "scope", "external",
	"pub", "import", "where", "if", "then", "else", "switch", "case", "default", "for",
	"while", "loop", "break", "continue", "return", "defer", "in", "as", "nil", "true",
	"false", "try", "catch", "compiletime", "i8", "i16", "i32", "i64", "i128", "i256",
	"isize", "u8", "u16", "u32", "u64", "u128", "u256", "usize", "f32", "f64", "char",
	"str", "bool", "map",
}
