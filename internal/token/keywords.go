package token

var keywords = map[string]Kind{
	"var":      KwVar,
	"const":    KwConst,
	"type":     KwType,
	"enum":     KwEnum,
	"array":    KwArray,
	"flexible": KwFlexible,
	"of":       KwOf,
	"boolean":  KwBoolean,
	"int":      KwInt,
	"nat":      KwNat,
	"real":     KwReal,
	"char":     KwChar,
	"string":   KwString,
	"div":      KwDiv,
	"mod":      KwMod,
	"rem":      KwRem,
	"and":      KwAnd,
	"or":       KwOr,
	"xor":      KwXor,
	"shl":      KwShl,
	"shr":      KwShr,
	"not":      KwNot,
	"true":     BoolLit,
	"false":    BoolLit,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
