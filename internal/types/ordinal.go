package types

import (
	"fmt"
	"unicode/utf8"
)

// OrdinalDomain tags which source domain a normalized range bound came
// from. It only affects display; arithmetic always runs on the ordinal.
type OrdinalDomain uint8

const (
	DomainInt OrdinalDomain = iota
	DomainBool
	DomainChar
	DomainEnum
)

// ConstantOrdinal is a normalized range endpoint.
type ConstantOrdinal struct {
	Value  int64
	Domain OrdinalDomain
}

func (o ConstantOrdinal) String() string {
	switch o.Domain {
	case DomainBool:
		if o.Value != 0 {
			return "true"
		}
		return "false"
	case DomainChar:
		// Surrogates and out-of-range ordinals render numerically
		// instead of as U+FFFD.
		if r := rune(o.Value); o.Value >= 0 && o.Value <= utf8.MaxRune && utf8.ValidRune(r) {
			return "'" + string(r) + "'"
		}
		return fmt.Sprintf("%d", o.Value)
	default:
		return fmt.Sprintf("%d", o.Value)
	}
}

// RangeInfo is the payload of a KindRange record. Base keeps the declared
// domain (the enum itself for enum ranges, not its raw ordinals).
type RangeInfo struct {
	Low  ConstantOrdinal
	High ConstantOrdinal
	Base TypeID
}

// Degenerate reports whether the range denotes zero elements.
func (r RangeInfo) Degenerate() bool {
	return r.Low.Value > r.High.Value
}

// Count returns the number of elements. The full 64-bit span has 2^64
// elements, which does not fit a uint64; ok is false for that one case.
func (r RangeInfo) Count() (uint64, bool) {
	if r.Degenerate() {
		return 0, true
	}
	span := uint64(r.High.Value) - uint64(r.Low.Value)
	if span == ^uint64(0) {
		return 0, false
	}
	return span + 1, true
}

// SizeString renders Count, spelling out the one uncountable case.
func (r RangeInfo) SizeString() string {
	n, ok := r.Count()
	if !ok {
		return "18446744073709551616"
	}
	return fmt.Sprintf("%d", n)
}

// EnumVariant pairs a variant name with its field record.
type EnumVariant struct {
	Name  string
	Field TypeID
}

// EnumInfo is the payload of a KindEnum record.
type EnumInfo struct {
	Variants []EnumVariant
}
