package token

import (
	"tern/internal/source"
)

// Token represents a single source token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, or character literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RealLit, CharSeqLit, BoolLit:
		return true
	default:
		return false
	}
}

// IsTypeKeyword reports whether the token names a primitive type.
func (t Token) IsTypeKeyword() bool {
	switch t.Kind {
	case KwBoolean, KwInt, KwNat, KwReal, KwChar, KwString:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwVar, KwConst, KwType, KwEnum, KwArray, KwFlexible, KwOf,
		KwBoolean, KwInt, KwNat, KwReal, KwChar, KwString,
		KwDiv, KwMod, KwRem, KwAnd, KwOr, KwXor, KwShl, KwShr, KwNot:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
