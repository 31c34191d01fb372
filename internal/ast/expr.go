package ast

import "tern/internal/source"

// ExprKind discriminates expression nodes.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprIntLit
	ExprRealLit
	ExprBoolLit
	ExprCharSeqLit
	ExprName
	// ExprField is `base.field`, used for enum variant access.
	ExprField
	ExprUnary
	ExprBinary
	ExprParen
)

// UnaryOp enumerates prefix operators.
type UnaryOp uint8

const (
	UnaryIdentity UnaryOp = iota // +x
	UnaryNegate                  // -x
	UnaryNot                     // not x
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryIdentity:
		return "+"
	case UnaryNegate:
		return "-"
	case UnaryNot:
		return "not"
	}
	return "?"
}

// BinaryOp enumerates infix operators.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinRealDiv // /
	BinDiv     // div
	BinMod
	BinRem
	BinExp // **
	BinAnd
	BinOr
	BinXor
	BinShl
	BinShr
	BinImply // =>
	BinLess
	BinLessEq
	BinGreater
	BinGreaterEq
	BinEqual
	BinNotEqual
)

func (op BinaryOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinRealDiv:
		return "/"
	case BinDiv:
		return "div"
	case BinMod:
		return "mod"
	case BinRem:
		return "rem"
	case BinExp:
		return "**"
	case BinAnd:
		return "and"
	case BinOr:
		return "or"
	case BinXor:
		return "xor"
	case BinShl:
		return "shl"
	case BinShr:
		return "shr"
	case BinImply:
		return "=>"
	case BinLess:
		return "<"
	case BinLessEq:
		return "<="
	case BinGreater:
		return ">"
	case BinGreaterEq:
		return ">="
	case BinEqual:
		return "="
	case BinNotEqual:
		return "~="
	}
	return "?"
}

// Expr is one expression node. Only the fields of its kind are set.
type Expr struct {
	Kind ExprKind
	Span source.Span

	IntVal  uint64  // ExprIntLit: unsigned magnitude as scanned
	RealVal float64 // ExprRealLit
	BoolVal bool    // ExprBoolLit
	StrVal  string  // ExprCharSeqLit, unescaped

	Name      string // ExprName, ExprField
	FieldSpan source.Span

	Op    uint8  // UnaryOp or BinaryOp depending on kind
	Left  ExprID // ExprUnary operand, ExprBinary lhs, ExprParen inner, ExprField base
	Right ExprID // ExprBinary rhs
}

// UnaryOp returns the operator of an ExprUnary node.
func (e *Expr) UnaryOp() UnaryOp { return UnaryOp(e.Op) }

// BinaryOp returns the operator of an ExprBinary node.
func (e *Expr) BinaryOp() BinaryOp { return BinaryOp(e.Op) }
