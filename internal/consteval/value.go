// Package consteval folds constant expressions into tagged values with
// memoization, deferred on-demand evaluation, and cycle detection.
package consteval

import (
	"fmt"

	"tern/internal/types"
)

// ValueKind discriminates constant values.
type ValueKind uint8

const (
	// KindError poisons everything downstream of a reported failure.
	KindError ValueKind = iota
	KindInt
	KindReal
	KindBool
	KindChar
	KindEnumVariant
)

// Value is one evaluated constant. Immutable once computed.
type Value struct {
	Kind ValueKind

	Int     int64
	Real    float64
	Bool    bool
	Char    rune
	Enum    types.TypeID // EnumVariant parent
	Ordinal uint32       // EnumVariant position
}

// ErrorValue is the poison value.
var ErrorValue = Value{Kind: KindError}

func IntValue(v int64) Value    { return Value{Kind: KindInt, Int: v} }
func RealValue(v float64) Value { return Value{Kind: KindReal, Real: v} }
func BoolValue(v bool) Value    { return Value{Kind: KindBool, Bool: v} }
func CharValue(v rune) Value    { return Value{Kind: KindChar, Char: v} }

func EnumValue(parent types.TypeID, ordinal uint32) Value {
	return Value{Kind: KindEnumVariant, Enum: parent, Ordinal: ordinal}
}

// IsError reports whether the value is poison.
func (v Value) IsError() bool { return v.Kind == KindError }

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindReal:
		return fmt.Sprintf("%g", v.Real)
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindChar:
		return "'" + string(v.Char) + "'"
	case KindEnumVariant:
		return fmt.Sprintf("enum(%d)", v.Ordinal)
	default:
		return "<error>"
	}
}
