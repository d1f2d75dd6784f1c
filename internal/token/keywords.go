package token

var keywords = map[string]Kind{
	"def":      KwDef,
	"char":     KwChar,
	"int":      KwInt,
	"float":    KwFloat,
	"str":      KwStr,
	"list":     KwList,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"do":       KwDo,
	"for":      KwFor,
	"in":       KwIn,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"pass":     KwPass,
	"print":    KwPrint,
	"input":    KwInput,
	"import":   KwImport,
	"and":      KwAnd,
	"or":       KwOr,
}

// LookupKeyword returns the keyword kind for ident, if any. Keywords are
// case-sensitive; only the exact lowercase spellings above are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
