package hir

import (
	"math"

	"tern/internal/ast"
	"tern/internal/consteval"
	"tern/internal/diag"
	"tern/internal/source"
	"tern/internal/types"
)

// buildRange evaluates both bounds and interns a fresh range. Degenerate
// (inverted) bounds are accepted here with size 0; whether emptiness is
// legal is the array builder's call, not the range's.
func (lw *Lowerer) buildRange(syn *ast.TypeSyn) types.TypeID {
	low := lw.ctx.EvalExpr(syn.Low)
	high := lw.ctx.EvalExpr(syn.High)
	if low.IsError() || high.IsError() {
		return types.Error
	}
	return lw.internRange(low, high, syn.Span)
}

// internRange normalizes the bounds into ordinals per their domain and
// picks the base record the declared domain dictates.
func (lw *Lowerer) internRange(low, high consteval.Value, sp source.Span) types.TypeID {
	var info types.RangeInfo
	switch {
	case low.Kind == consteval.KindInt && high.Kind == consteval.KindInt:
		info.Low = types.ConstantOrdinal{Value: low.Int, Domain: types.DomainInt}
		info.High = types.ConstantOrdinal{Value: high.Int, Domain: types.DomainInt}
		info.Base = types.Prim(intKind(low.Int, high.Int))
	case low.Kind == consteval.KindBool && high.Kind == consteval.KindBool:
		info.Low = types.ConstantOrdinal{Value: boolOrd(low.Bool), Domain: types.DomainBool}
		info.High = types.ConstantOrdinal{Value: boolOrd(high.Bool), Domain: types.DomainBool}
		info.Base = types.Prim(types.PrimBoolean)
	case low.Kind == consteval.KindChar && high.Kind == consteval.KindChar:
		info.Low = types.ConstantOrdinal{Value: int64(low.Char), Domain: types.DomainChar}
		info.High = types.ConstantOrdinal{Value: int64(high.Char), Domain: types.DomainChar}
		info.Base = lw.table.StringN(1)
	case low.Kind == consteval.KindEnumVariant && high.Kind == consteval.KindEnumVariant:
		if low.Enum != high.Enum {
			lw.report(diag.SemaTypeMismatch, sp, "range bounds come from different enums")
			return types.Error
		}
		info.Low = types.ConstantOrdinal{Value: int64(low.Ordinal), Domain: types.DomainEnum}
		info.High = types.ConstantOrdinal{Value: int64(high.Ordinal), Domain: types.DomainEnum}
		info.Base = low.Enum
	default:
		lw.report(diag.SemaTypeMismatch, sp, "range bounds must share an ordinal domain")
		return types.Error
	}
	return lw.table.InternRange(info)
}

// intKind widens an integer range's base to long int when a bound leaves
// the normal int domain.
func intKind(low, high int64) types.PrimKind {
	if low >= math.MinInt32 && low <= math.MaxInt32 &&
		high >= math.MinInt32 && high <= math.MaxInt32 {
		return types.PrimInt
	}
	return types.PrimLongInt
}

func boolOrd(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// buildArray lowers every index in source order, then nests arrays from
// the innermost dimension out. The flexible flag applies to each level.
func (lw *Lowerer) buildArray(syn *ast.TypeSyn) types.TypeID {
	indexes := make([]types.TypeID, len(syn.Ranges))
	for i, r := range syn.Ranges {
		indexes[i] = lw.lowerTypeSyn(r)
	}
	result := lw.lowerTypeSyn(syn.Elem)
	for i := len(indexes) - 1; i >= 0; i-- {
		result = lw.internArray(indexes[i], result, syn.Flexible, lw.synSpan(syn.Ranges[i]))
	}
	return result
}

func (lw *Lowerer) internArray(index, elem types.TypeID, flexible bool, sp source.Span) types.TypeID {
	if index.IsError() || elem.IsError() {
		return types.Error
	}
	resolved, ok := lw.table.ResolveAlias(index)
	if !ok {
		lw.report(diag.SemaAliasCycle, sp, "array index type aliases itself")
		return types.Error
	}
	rec, ok := lw.table.Resolve(resolved)
	if !ok || rec.Kind != types.KindRange {
		lw.report(diag.SemaTypeMismatch, sp, "array index is not a range")
		return types.Error
	}
	info, _ := lw.table.Range(resolved)
	if info.Degenerate() && !flexible {
		lw.report(diag.SemaTypeMismatch, sp,
			"empty range can only index a flexible array")
		return types.Error
	}
	// Keep the declared id (possibly an alias) for provenance.
	return lw.table.InternArray(index, elem, flexible)
}

func (lw *Lowerer) synSpan(id ast.TypeSynID) source.Span {
	if syn := lw.b.TypeSyn(id); syn != nil {
		return syn.Span
	}
	return source.Span{}
}
