package types

import "fmt"

// TypeID is an opaque handle into the type table. Dense handles index the
// table directly; primitive handles carry the primitive in the id itself
// (primitives are shared, so they never occupy dense slots and never show
// up in the debug dump). Equality is identity, not structure.
type TypeID uint32

// Error is the reserved poison handle substituted wherever construction or
// resolution fails. It is never a valid table index.
const Error TypeID = ^TypeID(0)

const (
	primTag       TypeID = 1 << 31
	primKindShift        = 16
	primSizeMask         = (1 << primKindShift) - 1
)

// IsError reports whether id is the poison handle.
func (id TypeID) IsError() bool { return id == Error }

// IsPrim reports whether id encodes a shared primitive.
func (id TypeID) IsPrim() bool { return id != Error && id&primTag != 0 }

// IsDense reports whether id indexes a table slot.
func (id TypeID) IsDense() bool { return id != Error && id&primTag == 0 }

// Index returns the dense slot for a table-backed id.
func (id TypeID) Index() uint32 { return uint32(id) }

// PrimOf decodes the primitive kind and size out of a primitive handle.
func (id TypeID) PrimOf() (PrimKind, uint32) {
	return PrimKind(uint32(id) >> primKindShift & 0x7fff), uint32(id) & primSizeMask
}

// PrimKind enumerates the leaf primitive types.
type PrimKind uint8

const (
	PrimBoolean PrimKind = iota
	PrimInt
	PrimLongInt
	PrimNat
	PrimLongNat
	PrimReal
	PrimChar
	// PrimString is the dynamically-sized character sequence.
	PrimString
	// PrimStringN is a fixed-size character sequence; the size travels in
	// the handle (or in the dense record for oversized fallbacks).
	PrimStringN
)

func (k PrimKind) String() string {
	switch k {
	case PrimBoolean:
		return "boolean"
	case PrimInt:
		return "int"
	case PrimLongInt:
		return "long int"
	case PrimNat:
		return "nat"
	case PrimLongNat:
		return "long nat"
	case PrimReal:
		return "real"
	case PrimChar:
		return "char"
	case PrimString:
		return "string"
	case PrimStringN:
		return "string(n)"
	default:
		return fmt.Sprintf("PrimKind(%d)", k)
	}
}

// Prim returns the shared handle for a sizeless primitive.
func Prim(k PrimKind) TypeID {
	return primTag | TypeID(k)<<primKindShift
}

// Kind enumerates dense type-table records.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindAlias
	KindEnum
	KindEnumField
	KindRange
	KindArray
	// KindPrim is the dense fallback for primitives whose parameters do
	// not fit the encoded handle (oversized string sizes).
	KindPrim
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindAlias:
		return "alias"
	case KindEnum:
		return "enum"
	case KindEnumField:
		return "enum_field"
	case KindRange:
		return "range"
	case KindArray:
		return "array"
	case KindPrim:
		return "prim"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is one dense table record. Only the fields of its kind are set.
type Type struct {
	Kind Kind

	Elem     TypeID // KindAlias target, KindArray element, KindEnumField parent
	Index    TypeID // KindArray index (must resolve to a range)
	Flexible bool   // KindArray
	Ordinal  uint32 // KindEnumField position within the parent enum
	Prim     PrimKind
	Size     uint32 // KindPrim fallback string size
	Payload  uint32 // side-table slot for KindRange and KindEnum
}
