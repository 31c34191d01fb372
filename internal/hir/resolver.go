package hir

import (
	"tern/internal/consteval"
	"tern/internal/diag"
	"tern/internal/source"
	"tern/internal/symbols"
)

// The lowerer is the evaluator's external binder: plain names resolve to
// deferred constants, dotted names to enum variants.

func (lw *Lowerer) ResolveName(name string, sp source.Span) (consteval.Value, bool) {
	b, ok := lw.scope.Lookup(name)
	if !ok {
		lw.report(diag.SemaUnresolvedIdentifier, sp, "unknown name '"+name+"'")
		return consteval.ErrorValue, false
	}
	switch b.Kind {
	case symbols.BindConst:
		v := lw.ctx.Eval(b.Const)
		return v, !v.IsError()
	case symbols.BindEnumVariant:
		return b.Value, true
	}
	lw.report(diag.SemaNotConstant, sp, "'"+name+"' is not a compile-time constant")
	return consteval.ErrorValue, false
}

func (lw *Lowerer) ResolveField(base, field string, sp source.Span) (consteval.Value, bool) {
	b, ok := lw.scope.Lookup(base)
	if !ok {
		lw.report(diag.SemaUnresolvedIdentifier, sp, "unknown name '"+base+"'")
		return consteval.ErrorValue, false
	}
	if b.Kind != symbols.BindType {
		lw.report(diag.SemaNotConstant,
			sp, "'"+base+"."+field+"' is not a compile-time constant")
		return consteval.ErrorValue, false
	}
	resolved, ok := lw.table.ResolveAlias(b.Type)
	if !ok {
		lw.report(diag.SemaAliasCycle, sp, "type '"+base+"' aliases itself")
		return consteval.ErrorValue, false
	}
	info, isEnum := lw.table.Enum(resolved)
	if !isEnum {
		lw.report(diag.SemaTypeMismatch, sp, "'"+base+"' is not an enum type")
		return consteval.ErrorValue, false
	}
	for i, v := range info.Variants {
		if v.Name == field {
			return consteval.EnumValue(resolved, uint32(i)), true
		}
	}
	lw.report(diag.SemaUnresolvedIdentifier, sp,
		"enum '"+base+"' has no variant '"+field+"'")
	return consteval.ErrorValue, false
}
