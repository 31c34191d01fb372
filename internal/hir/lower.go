package hir

import (
	"tern/internal/ast"
	"tern/internal/consteval"
	"tern/internal/diag"
	"tern/internal/source"
	"tern/internal/symbols"
	"tern/internal/types"
)

// Lowerer walks one file's declarations in source order. Every failure is
// local: the offending declaration gets the error sentinel and the walk
// continues, so one pass collects as many diagnostics as possible.
type Lowerer struct {
	b        *ast.Builder
	reporter diag.Reporter
	table    *types.Table
	scope    *symbols.Scope
	ctx      *consteval.Ctx
	mod      *Module
}

// Lower lowers one parsed file into a Module.
func Lower(b *ast.Builder, file ast.FileID, reporter diag.Reporter) *Module {
	table := types.NewTable()
	scope := symbols.NewScope(reporter)
	mod := &Module{
		Table:     table,
		Scope:     scope,
		DeclTypes: make(map[ast.DeclID]types.TypeID, 16),
		Consts:    make(map[ast.DeclID]consteval.Handle, 8),
	}
	lw := &Lowerer{
		b:        b,
		reporter: reporter,
		table:    table,
		scope:    scope,
		mod:      mod,
	}
	lw.ctx = consteval.NewCtx(b, reporter, lw)

	f := b.File(file)
	if f == nil {
		return mod
	}
	for _, declID := range f.Decls {
		lw.lowerDecl(declID)
	}
	return mod
}

func (lw *Lowerer) lowerDecl(id ast.DeclID) {
	d := lw.b.Decl(id)
	if d == nil {
		return
	}
	switch d.Kind {
	case ast.DeclConst:
		// Never evaluated here: the value is demanded lazily by whatever
		// expression first references the constant.
		h := lw.ctx.Defer(d.Init)
		lw.mod.Consts[id] = h
		lw.scope.Declare(d.Name, symbols.Binding{
			Kind:  symbols.BindConst,
			Span:  d.NameSpan,
			Const: h,
		})
	case ast.DeclVar:
		ty := lw.lowerTypeSyn(d.Type)
		lw.mod.DeclTypes[id] = ty
		lw.scope.Declare(d.Name, symbols.Binding{
			Kind: symbols.BindVar,
			Span: d.NameSpan,
			Type: ty,
		})
	case ast.DeclType:
		underlying := lw.lowerTypeSyn(d.Type)
		alias := lw.table.InternAlias(underlying)
		lw.mod.DeclTypes[id] = alias
		lw.scope.Declare(d.Name, symbols.Binding{
			Kind: symbols.BindType,
			Span: d.NameSpan,
			Type: alias,
		})
	}
}

// lowerTypeSyn turns a syntactic type into a table handle, substituting
// the error sentinel on any failure.
func (lw *Lowerer) lowerTypeSyn(id ast.TypeSynID) types.TypeID {
	syn := lw.b.TypeSyn(id)
	if syn == nil {
		return types.Error
	}
	switch syn.Kind {
	case ast.TypeSynPrim:
		return lw.lowerPrim(syn)
	case ast.TypeSynNamed:
		return lw.lowerNamed(syn)
	case ast.TypeSynRange:
		return lw.buildRange(syn)
	case ast.TypeSynArray:
		return lw.buildArray(syn)
	case ast.TypeSynEnum:
		return lw.lowerEnum(syn)
	}
	return types.Error
}

// lowerEnum interns the enum and binds every variant name into the scope's
// constant namespace, so a variant is usable both as Enum.variant and as a
// bare name.
func (lw *Lowerer) lowerEnum(syn *ast.TypeSyn) types.TypeID {
	id := lw.table.InternEnum(syn.Variants)
	for i, name := range syn.Variants {
		sp := syn.Span
		if i < len(syn.VariantSpans) {
			sp = syn.VariantSpans[i]
		}
		lw.scope.Declare(name, symbols.Binding{
			Kind:  symbols.BindEnumVariant,
			Span:  sp,
			Value: consteval.EnumValue(id, uint32(i)),
		})
	}
	return id
}

func (lw *Lowerer) lowerPrim(syn *ast.TypeSyn) types.TypeID {
	switch syn.Prim {
	case ast.PrimBoolean:
		return types.Prim(types.PrimBoolean)
	case ast.PrimInt:
		return types.Prim(types.PrimInt)
	case ast.PrimNat:
		return types.Prim(types.PrimNat)
	case ast.PrimReal:
		return types.Prim(types.PrimReal)
	case ast.PrimChar:
		return types.Prim(types.PrimChar)
	case ast.PrimString:
		if !syn.SizeExpr.IsValid() {
			return types.Prim(types.PrimString)
		}
		size := lw.ctx.EvalExpr(syn.SizeExpr)
		if size.IsError() {
			return types.Error
		}
		if size.Kind != consteval.KindInt || size.Int < 1 || size.Int > 255 {
			lw.report(diag.SemaStringSizeOutOfBounds, lw.exprSpan(syn.SizeExpr),
				"string size must be an integer in 1..255")
			return types.Error
		}
		return lw.table.StringN(uint32(size.Int))
	}
	return types.Error
}

func (lw *Lowerer) lowerNamed(syn *ast.TypeSyn) types.TypeID {
	b, ok := lw.scope.Lookup(syn.Name)
	if !ok {
		lw.report(diag.SemaUnresolvedIdentifier, syn.Span,
			"unknown type '"+syn.Name+"'")
		return types.Error
	}
	if b.Kind != symbols.BindType {
		lw.report(diag.SemaTypeMismatch, syn.Span,
			"'"+syn.Name+"' does not name a type")
		return types.Error
	}
	return b.Type
}

func (lw *Lowerer) report(code diag.Code, sp source.Span, msg string) {
	if lw.reporter == nil {
		return
	}
	diag.ReportError(lw.reporter, code, sp, msg).Emit()
}

func (lw *Lowerer) exprSpan(id ast.ExprID) source.Span {
	if e := lw.b.Expr(id); e != nil {
		return e.Span
	}
	return source.Span{}
}
