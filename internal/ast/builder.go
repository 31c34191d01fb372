package ast

import "tern/internal/source"

// Builder owns the arenas for one parse and hands out node IDs.
type Builder struct {
	Files    *Arena[File]
	Decls    *Arena[Decl]
	Exprs    *Arena[Expr]
	TypeSyns *Arena[TypeSyn]
}

// NewBuilder allocates arenas with small capacity hints.
func NewBuilder() *Builder {
	return &Builder{
		Files:    NewArena[File](1),
		Decls:    NewArena[Decl](16),
		Exprs:    NewArena[Expr](64),
		TypeSyns: NewArena[TypeSyn](32),
	}
}

// NewFile allocates the root node for one source file.
func (b *Builder) NewFile(sp source.Span) FileID {
	return FileID(b.Files.Allocate(File{Span: sp}))
}

// PushDecl appends a declaration to a file in source order.
func (b *Builder) PushDecl(file FileID, decl DeclID) {
	f := b.Files.Get(uint32(file))
	if f == nil {
		return
	}
	f.Decls = append(f.Decls, decl)
}

func (b *Builder) NewDecl(d Decl) DeclID {
	return DeclID(b.Decls.Allocate(d))
}

func (b *Builder) NewExpr(e Expr) ExprID {
	return ExprID(b.Exprs.Allocate(e))
}

func (b *Builder) NewTypeSyn(t TypeSyn) TypeSynID {
	return TypeSynID(b.TypeSyns.Allocate(t))
}

// File returns the root node, nil for the zero id.
func (b *Builder) File(id FileID) *File {
	return b.Files.Get(uint32(id))
}

// Decl returns a declaration node, nil for the zero id.
func (b *Builder) Decl(id DeclID) *Decl {
	return b.Decls.Get(uint32(id))
}

// Expr returns an expression node, nil for the zero id.
func (b *Builder) Expr(id ExprID) *Expr {
	return b.Exprs.Get(uint32(id))
}

// TypeSyn returns a type syntax node, nil for the zero id.
func (b *Builder) TypeSyn(id TypeSynID) *TypeSyn {
	return b.TypeSyns.Get(uint32(id))
}
