package ast

import "tern/internal/source"

// DeclKind discriminates top-level declarations.
type DeclKind uint8

const (
	DeclInvalid DeclKind = iota
	// DeclVar is `var name : typespec`.
	DeclVar
	// DeclConst is `const name := expr`.
	DeclConst
	// DeclType is `type name : typespec`.
	DeclType
)

// Decl is one top-level declaration.
type Decl struct {
	Kind     DeclKind
	Span     source.Span
	Name     string
	NameSpan source.Span
	Type     TypeSynID // var/type declarations
	Init     ExprID    // const declarations
}
