package consteval

import (
	"math"

	"tern/internal/ast"
	"tern/internal/diag"
)

// opError carries the failure out of a pure operator application; the
// evaluator attaches the offending expression's span when reporting.
type opError struct {
	code diag.Code
	msg  string
}

func opFail(code diag.Code, msg string) (Value, *opError) {
	return ErrorValue, &opError{code: code, msg: msg}
}

func applyUnary(op ast.UnaryOp, v Value) (Value, *opError) {
	switch op {
	case ast.UnaryIdentity:
		if v.Kind != KindInt && v.Kind != KindReal {
			return opFail(diag.SemaTypeMismatch, "unary '+' needs a numeric operand")
		}
		return v, nil
	case ast.UnaryNegate:
		switch v.Kind {
		case KindInt:
			if v.Int == math.MinInt64 {
				return opFail(diag.SemaIntOverflow, "negation overflows")
			}
			return IntValue(-v.Int), nil
		case KindReal:
			return RealValue(-v.Real), nil
		}
		return opFail(diag.SemaTypeMismatch, "unary '-' needs a numeric operand")
	case ast.UnaryNot:
		switch v.Kind {
		case KindBool:
			return BoolValue(!v.Bool), nil
		case KindInt:
			return IntValue(^v.Int), nil
		}
		return opFail(diag.SemaTypeMismatch, "'not' needs a boolean or integer operand")
	}
	return opFail(diag.SemaUnsupportedConstantOp, "unsupported unary operator")
}

func applyBinary(op ast.BinaryOp, lhs, rhs Value) (Value, *opError) {
	switch op {
	case ast.BinAdd, ast.BinSub, ast.BinMul:
		return arith(op, lhs, rhs)
	case ast.BinRealDiv:
		return realDiv(lhs, rhs)
	case ast.BinDiv:
		return intDiv(lhs, rhs)
	case ast.BinMod, ast.BinRem:
		return remainder(op, lhs, rhs)
	case ast.BinExp:
		return power(lhs, rhs)
	case ast.BinAnd, ast.BinOr, ast.BinXor:
		return bitsOrLogic(op, lhs, rhs)
	case ast.BinShl, ast.BinShr:
		return shift(op, lhs, rhs)
	case ast.BinImply:
		if lhs.Kind != KindBool || rhs.Kind != KindBool {
			return opFail(diag.SemaTypeMismatch, "'=>' needs boolean operands")
		}
		return BoolValue(!lhs.Bool || rhs.Bool), nil
	case ast.BinLess, ast.BinLessEq, ast.BinGreater, ast.BinGreaterEq,
		ast.BinEqual, ast.BinNotEqual:
		return opFail(diag.SemaUnsupportedConstantOp,
			"comparison operators are not supported in constant expressions")
	}
	return opFail(diag.SemaUnsupportedConstantOp, "unsupported constant operator")
}

// numeric promotes an int/real pair for mixed arithmetic.
func numeric(lhs, rhs Value) (Value, Value, bool) {
	if lhs.Kind == KindInt && rhs.Kind == KindInt {
		return lhs, rhs, true
	}
	l, lok := asReal(lhs)
	r, rok := asReal(rhs)
	if !lok || !rok {
		return lhs, rhs, false
	}
	return RealValue(l), RealValue(r), true
}

func asReal(v Value) (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindReal:
		return v.Real, true
	}
	return 0, false
}

func arith(op ast.BinaryOp, lhs, rhs Value) (Value, *opError) {
	l, r, ok := numeric(lhs, rhs)
	if !ok {
		return opFail(diag.SemaTypeMismatch, "'"+op.String()+"' needs numeric operands")
	}
	if l.Kind == KindReal {
		var res float64
		switch op {
		case ast.BinAdd:
			res = l.Real + r.Real
		case ast.BinSub:
			res = l.Real - r.Real
		case ast.BinMul:
			res = l.Real * r.Real
		}
		return checkReal(res)
	}
	var res int64
	var overflow bool
	switch op {
	case ast.BinAdd:
		res, overflow = addChecked(l.Int, r.Int)
	case ast.BinSub:
		res, overflow = subChecked(l.Int, r.Int)
	case ast.BinMul:
		res, overflow = mulChecked(l.Int, r.Int)
	}
	if overflow {
		return opFail(diag.SemaIntOverflow, "integer arithmetic overflows")
	}
	return IntValue(res), nil
}

// realDiv is '/': always produces a real, even on integer operands.
func realDiv(lhs, rhs Value) (Value, *opError) {
	l, lok := asReal(lhs)
	r, rok := asReal(rhs)
	if !lok || !rok {
		return opFail(diag.SemaTypeMismatch, "'/' needs numeric operands")
	}
	if r == 0 {
		return opFail(diag.SemaDivisionByZero, "division by zero")
	}
	return checkReal(l / r)
}

// intDiv is 'div': truncated quotient with an integer result.
func intDiv(lhs, rhs Value) (Value, *opError) {
	if lhs.Kind == KindInt && rhs.Kind == KindInt {
		if rhs.Int == 0 {
			return opFail(diag.SemaDivisionByZero, "division by zero")
		}
		if lhs.Int == math.MinInt64 && rhs.Int == -1 {
			return opFail(diag.SemaIntOverflow, "integer arithmetic overflows")
		}
		return IntValue(lhs.Int / rhs.Int), nil
	}
	l, lok := asReal(lhs)
	r, rok := asReal(rhs)
	if !lok || !rok {
		return opFail(diag.SemaTypeMismatch, "'div' needs numeric operands")
	}
	if r == 0 {
		return opFail(diag.SemaDivisionByZero, "division by zero")
	}
	q := math.Floor(l / r)
	if q < math.MinInt64 || q > math.MaxInt64 {
		return opFail(diag.SemaIntOverflow, "'div' result does not fit an integer")
	}
	return IntValue(int64(q)), nil
}

// remainder handles both 'mod' (sign of the divisor) and 'rem' (sign of
// the dividend).
func remainder(op ast.BinaryOp, lhs, rhs Value) (Value, *opError) {
	if lhs.Kind != KindInt || rhs.Kind != KindInt {
		return opFail(diag.SemaTypeMismatch, "'"+op.String()+"' needs integer operands")
	}
	if rhs.Int == 0 {
		return opFail(diag.SemaDivisionByZero, "division by zero")
	}
	if lhs.Int == math.MinInt64 && rhs.Int == -1 {
		return IntValue(0), nil
	}
	rem := lhs.Int % rhs.Int
	if op == ast.BinMod && rem != 0 && (rem < 0) != (rhs.Int < 0) {
		rem += rhs.Int
	}
	return IntValue(rem), nil
}

func power(lhs, rhs Value) (Value, *opError) {
	if lhs.Kind == KindInt && rhs.Kind == KindInt {
		if rhs.Int < 0 {
			return opFail(diag.SemaNegativeExponent,
				"negative exponent on an integer base")
		}
		res := int64(1)
		base := lhs.Int
		for i := int64(0); i < rhs.Int; i++ {
			var overflow bool
			res, overflow = mulChecked(res, base)
			if overflow {
				return opFail(diag.SemaIntOverflow, "integer exponentiation overflows")
			}
		}
		return IntValue(res), nil
	}
	l, lok := asReal(lhs)
	r, rok := asReal(rhs)
	if !lok || !rok {
		return opFail(diag.SemaTypeMismatch, "'**' needs numeric operands")
	}
	return checkReal(math.Pow(l, r))
}

func bitsOrLogic(op ast.BinaryOp, lhs, rhs Value) (Value, *opError) {
	if lhs.Kind == KindBool && rhs.Kind == KindBool {
		switch op {
		case ast.BinAnd:
			return BoolValue(lhs.Bool && rhs.Bool), nil
		case ast.BinOr:
			return BoolValue(lhs.Bool || rhs.Bool), nil
		case ast.BinXor:
			return BoolValue(lhs.Bool != rhs.Bool), nil
		}
	}
	if lhs.Kind == KindInt && rhs.Kind == KindInt {
		switch op {
		case ast.BinAnd:
			return IntValue(lhs.Int & rhs.Int), nil
		case ast.BinOr:
			return IntValue(lhs.Int | rhs.Int), nil
		case ast.BinXor:
			return IntValue(lhs.Int ^ rhs.Int), nil
		}
	}
	return opFail(diag.SemaTypeMismatch,
		"'"+op.String()+"' needs two booleans or two integers")
}

// shift bounds the amount to [0, 64); results wrap as bit patterns.
func shift(op ast.BinaryOp, lhs, rhs Value) (Value, *opError) {
	if lhs.Kind != KindInt || rhs.Kind != KindInt {
		return opFail(diag.SemaTypeMismatch, "'"+op.String()+"' needs integer operands")
	}
	if rhs.Int < 0 || rhs.Int >= 64 {
		return opFail(diag.SemaInvalidShiftAmount, "shift amount must be in 0..63")
	}
	if op == ast.BinShl {
		return IntValue(int64(uint64(lhs.Int) << uint(rhs.Int))), nil
	}
	return IntValue(int64(uint64(lhs.Int) >> uint(rhs.Int))), nil
}

func checkReal(v float64) (Value, *opError) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return opFail(diag.SemaRealOverflow, "real arithmetic overflows")
	}
	return RealValue(v), nil
}

func addChecked(a, b int64) (int64, bool) {
	res := a + b
	if (a > 0 && b > 0 && res < 0) || (a < 0 && b < 0 && res >= 0) {
		return 0, true
	}
	return res, false
}

func subChecked(a, b int64) (int64, bool) {
	res := a - b
	if (a >= 0 && b < 0 && res < 0) || (a < 0 && b > 0 && res >= 0) {
		return 0, true
	}
	return res, false
}

func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, true
	}
	res := a * b
	if res/b != a {
		return 0, true
	}
	return res, false
}
