package diag

import (
	"fmt"
)

// Code is a stable numeric diagnostic identifier. Ranges are reserved per
// phase: 1xxx lexical, 2xxx syntactic, 3xxx semantic.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexUnknownChar              Code = 1001
	LexUnterminatedCharSeq      Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntactic.
	SynUnexpectedToken      Code = 2001
	SynExpectIdentifier     Code = 2002
	SynExpectType           Code = 2003
	SynExpectExpression     Code = 2004
	SynExpectColon          Code = 2005
	SynExpectAssign         Code = 2006
	SynExpectOf             Code = 2007
	SynExpectRParen         Code = 2008
	SynExpectRange          Code = 2009
	SynEnumExpectVariant    Code = 2010
	SynDuplicateEnumVariant Code = 2011

	// Semantic.
	SemaAliasCycle             Code = 3001
	SemaRecursiveConstant      Code = 3002
	SemaDivisionByZero         Code = 3003
	SemaInvalidShiftAmount     Code = 3004
	SemaUnsupportedConstantOp  Code = 3005
	SemaTypeMismatch           Code = 3006
	SemaUnresolvedIdentifier   Code = 3007
	SemaIntOverflow            Code = 3008
	SemaRealOverflow           Code = 3009
	SemaNotConstant            Code = 3010
	SemaDuplicateSymbol        Code = 3011
	SemaNegativeExponent       Code = 3012
	SemaStringSizeOutOfBounds  Code = 3013
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown diagnostic",
	LexUnknownChar:              "unknown character",
	LexUnterminatedCharSeq:      "unterminated character literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	SynUnexpectedToken:          "unexpected token",
	SynExpectIdentifier:         "expected identifier",
	SynExpectType:               "expected type specification",
	SynExpectExpression:         "expected expression",
	SynExpectColon:              "expected ':'",
	SynExpectAssign:             "expected ':='",
	SynExpectOf:                 "expected 'of'",
	SynExpectRParen:             "expected ')'",
	SynExpectRange:              "expected range",
	SynEnumExpectVariant:        "expected enum variant name",
	SynDuplicateEnumVariant:     "duplicate enum variant",
	SemaAliasCycle:              "type alias cycle",
	SemaRecursiveConstant:       "recursive constant definition",
	SemaDivisionByZero:          "division by zero",
	SemaInvalidShiftAmount:      "invalid shift amount",
	SemaUnsupportedConstantOp:   "unsupported constant operation",
	SemaTypeMismatch:            "type mismatch",
	SemaUnresolvedIdentifier:    "unresolved identifier",
	SemaIntOverflow:             "integer overflow in constant expression",
	SemaRealOverflow:            "real overflow in constant expression",
	SemaNotConstant:             "reference is not a compile-time constant",
	SemaDuplicateSymbol:         "duplicate declaration",
	SemaNegativeExponent:        "negative exponent on integer base",
	SemaStringSizeOutOfBounds:   "string size out of bounds",
}

// ID renders the phase-prefixed stable identifier, e.g. SEM3003.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	}
	return "E0000"
}

// Title is the short human description for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
