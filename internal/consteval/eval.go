package consteval

import (
	"fmt"

	"tern/internal/ast"
	"tern/internal/diag"
	"tern/internal/source"
)

// Handle names one deferred constant (a const declaration's initializer)
// inside a Ctx. The zero handle is invalid.
type Handle uint32

// NoHandle marks the absence of a deferred constant.
const NoHandle Handle = 0

// IsValid reports whether the handle names a deferred slot.
func (h Handle) IsValid() bool { return h != NoHandle }

type state uint8

const (
	stateUnevaluated state = iota
	stateEvaluating
	stateDone
	stateFailed
)

// Resolver is the external binder consulted for names inside constant
// expressions. Implementations report their own diagnostics and answer
// false on failure; the evaluator then poisons the node without a second
// report.
type Resolver interface {
	// ResolveName answers a plain identifier (a deferred constant, which
	// the implementation evaluates on demand through the same Ctx).
	ResolveName(name string, sp source.Span) (Value, bool)
	// ResolveField answers base.field, i.e. enum variant access.
	ResolveField(base, field string, sp source.Span) (Value, bool)
}

// Ctx owns the deferred-constant state table and the per-node value cache
// for one lowering pass.
type Ctx struct {
	b        *ast.Builder
	reporter diag.Reporter
	resolver Resolver

	// Deferred slots, parallel arrays indexed by Handle-1.
	exprs  []ast.ExprID
	states []state
	values []Value

	cache map[ast.ExprID]Value

	// evals counts actual (uncached) node evaluations; tests use it to
	// observe memoization.
	evals int
}

// NewCtx builds an evaluation context over one file's expression arena.
func NewCtx(b *ast.Builder, reporter diag.Reporter, resolver Resolver) *Ctx {
	return &Ctx{
		b:        b,
		reporter: reporter,
		resolver: resolver,
		cache:    make(map[ast.ExprID]Value, 32),
	}
}

// Evals returns the number of uncached node evaluations so far.
func (c *Ctx) Evals() int { return c.evals }

// Defer registers a constant initializer without evaluating it. The value
// is computed on first demand through Eval.
func (c *Ctx) Defer(expr ast.ExprID) Handle {
	c.exprs = append(c.exprs, expr)
	c.states = append(c.states, stateUnevaluated)
	c.values = append(c.values, ErrorValue)
	return Handle(len(c.exprs))
}

// Eval forces a deferred constant. Results (and failures) are permanent:
// a handle is evaluated at most once. Requesting a handle that is already
// mid-evaluation is a definition cycle; only that handle is poisoned.
func (c *Ctx) Eval(h Handle) Value {
	if !h.IsValid() || int(h) > len(c.exprs) {
		return ErrorValue
	}
	idx := h - 1
	switch c.states[idx] {
	case stateDone, stateFailed:
		return c.values[idx]
	case stateEvaluating:
		sp := c.exprSpan(c.exprs[idx])
		c.report(diag.SemaRecursiveConstant, sp, "constant definition depends on itself")
		c.states[idx] = stateFailed
		return ErrorValue
	}

	c.states[idx] = stateEvaluating
	v := c.EvalExpr(c.exprs[idx])
	c.values[idx] = v
	if v.IsError() {
		c.states[idx] = stateFailed
	} else {
		c.states[idx] = stateDone
	}
	return v
}

// EvalExpr folds one expression node, memoized per node.
func (c *Ctx) EvalExpr(id ast.ExprID) Value {
	if v, ok := c.cache[id]; ok {
		return v
	}
	v := c.compute(id)
	c.cache[id] = v
	return v
}

func (c *Ctx) compute(id ast.ExprID) Value {
	e := c.b.Expr(id)
	if e == nil {
		return ErrorValue
	}
	c.evals++

	switch e.Kind {
	case ast.ExprIntLit:
		// Scanned as a u64 magnitude; values above i64 max wrap to their
		// two's-complement reading, which is how 16#8000000000000000
		// spells the smallest integer.
		return IntValue(int64(e.IntVal))
	case ast.ExprRealLit:
		return RealValue(e.RealVal)
	case ast.ExprBoolLit:
		return BoolValue(e.BoolVal)
	case ast.ExprCharSeqLit:
		runes := []rune(e.StrVal)
		if len(runes) != 1 {
			c.report(diag.SemaUnsupportedConstantOp, e.Span,
				fmt.Sprintf("character sequence of length %d is not a constant ordinal", len(runes)))
			return ErrorValue
		}
		return CharValue(runes[0])
	case ast.ExprName:
		if c.resolver == nil {
			return ErrorValue
		}
		v, ok := c.resolver.ResolveName(e.Name, e.Span)
		if !ok {
			return ErrorValue
		}
		return v
	case ast.ExprField:
		base := c.b.Expr(e.Left)
		if base == nil || base.Kind != ast.ExprName {
			c.report(diag.SemaUnsupportedConstantOp, e.Span,
				"field access in a constant expression must name an enum variant")
			return ErrorValue
		}
		if c.resolver == nil {
			return ErrorValue
		}
		v, ok := c.resolver.ResolveField(base.Name, e.Name, e.FieldSpan)
		if !ok {
			return ErrorValue
		}
		return v
	case ast.ExprParen:
		return c.EvalExpr(e.Left)
	case ast.ExprUnary:
		operand := c.EvalExpr(e.Left)
		if operand.IsError() {
			return ErrorValue
		}
		v, opErr := applyUnary(e.UnaryOp(), operand)
		if opErr != nil {
			c.report(opErr.code, e.Span, opErr.msg)
			return ErrorValue
		}
		return v
	case ast.ExprBinary:
		lhs := c.EvalExpr(e.Left)
		rhs := c.EvalExpr(e.Right)
		if lhs.IsError() || rhs.IsError() {
			return ErrorValue
		}
		v, opErr := applyBinary(e.BinaryOp(), lhs, rhs)
		if opErr != nil {
			c.report(opErr.code, e.Span, opErr.msg)
			return ErrorValue
		}
		return v
	default:
		// ExprInvalid: the parser already reported.
		return ErrorValue
	}
}

func (c *Ctx) exprSpan(id ast.ExprID) source.Span {
	if e := c.b.Expr(id); e != nil {
		return e.Span
	}
	return source.Span{}
}

func (c *Ctx) report(code diag.Code, sp source.Span, msg string) {
	if c.reporter == nil {
		return
	}
	diag.ReportError(c.reporter, code, sp, msg).Emit()
}
