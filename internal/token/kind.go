package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// Declaration keywords.
	KwVar      // var
	KwConst    // const
	KwType     // type
	KwEnum     // enum
	KwArray    // array
	KwFlexible // flexible
	KwOf       // of

	// Primitive type keywords.
	KwBoolean // boolean
	KwInt     // int
	KwNat     // nat
	KwReal    // real
	KwChar    // char
	KwString  // string

	// Operator keywords.
	KwDiv // div
	KwMod // mod
	KwRem // rem
	KwAnd // and
	KwOr  // or
	KwXor // xor
	KwShl // shl
	KwShr // shr
	KwNot // not

	// Literals.
	IntLit     // 42, 16#7f
	RealLit    // 1.5, 1e9
	CharSeqLit // 'D'
	BoolLit    // true, false

	// Operators and punctuation.
	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Exp     // **
	Assign  // :=
	Eq      // =
	NotEq   // ~=
	Lt      // <
	LtEq    // <=
	Gt      // >
	GtEq    // >=
	Imply   // =>
	Colon   // :
	Comma   // ,
	Dot     // .
	DotDot  // ..
	LParen  // (
	RParen  // )
)

var kindNames = map[Kind]string{
	Invalid:    "invalid",
	EOF:        "eof",
	Ident:      "identifier",
	KwVar:      "var",
	KwConst:    "const",
	KwType:     "type",
	KwEnum:     "enum",
	KwArray:    "array",
	KwFlexible: "flexible",
	KwOf:       "of",
	KwBoolean:  "boolean",
	KwInt:      "int",
	KwNat:      "nat",
	KwReal:     "real",
	KwChar:     "char",
	KwString:   "string",
	KwDiv:      "div",
	KwMod:      "mod",
	KwRem:      "rem",
	KwAnd:      "and",
	KwOr:       "or",
	KwXor:      "xor",
	KwShl:      "shl",
	KwShr:      "shr",
	KwNot:      "not",
	IntLit:     "integer literal",
	RealLit:    "real literal",
	CharSeqLit: "character literal",
	BoolLit:    "boolean literal",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Exp:        "**",
	Assign:     ":=",
	Eq:         "=",
	NotEq:      "~=",
	Lt:         "<",
	LtEq:       "<=",
	Gt:         ">",
	GtEq:       ">=",
	Imply:      "=>",
	Colon:      ":",
	Comma:      ",",
	Dot:        ".",
	DotDot:     "..",
	LParen:     "(",
	RParen:     ")",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
