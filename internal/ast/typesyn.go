package ast

import "tern/internal/source"

// TypeSynKind discriminates type syntax nodes.
type TypeSynKind uint8

const (
	TypeSynInvalid TypeSynKind = iota
	// TypeSynPrim is a primitive keyword, optionally sized: string(8).
	TypeSynPrim
	// TypeSynNamed is a reference to a declared type name.
	TypeSynNamed
	// TypeSynRange is `low .. high`.
	TypeSynRange
	// TypeSynArray is `[flexible] array range {, range} of element`.
	TypeSynArray
	// TypeSynEnum is `enum (a, b, c)`.
	TypeSynEnum
)

// PrimName identifies the primitive keyword of a TypeSynPrim node.
type PrimName uint8

const (
	PrimBoolean PrimName = iota
	PrimInt
	PrimNat
	PrimReal
	PrimChar
	PrimString
)

// TypeSyn is one type syntax node. Only the fields of its kind are set.
type TypeSyn struct {
	Kind TypeSynKind
	Span source.Span

	Prim     PrimName // TypeSynPrim
	SizeExpr ExprID   // TypeSynPrim: string(n), 0 when absent

	Name string // TypeSynNamed

	Low  ExprID // TypeSynRange
	High ExprID

	Flexible bool        // TypeSynArray
	Ranges   []TypeSynID // TypeSynArray: one per rank, outermost first
	Elem     TypeSynID

	Variants     []string // TypeSynEnum, declaration order
	VariantSpans []source.Span
}
