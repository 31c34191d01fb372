// Package symbols binds declaration names for one compilation unit.
package symbols

import (
	"tern/internal/consteval"
	"tern/internal/diag"
	"tern/internal/source"
	"tern/internal/types"
)

// BindingKind discriminates what a name resolves to.
type BindingKind uint8

const (
	BindInvalid BindingKind = iota
	// BindType names a type declaration (the alias handle).
	BindType
	// BindVar names a variable declaration.
	BindVar
	// BindConst names a deferred constant initializer.
	BindConst
	// BindEnumVariant names an enum variant bound directly into the
	// scope's constant namespace.
	BindEnumVariant
)

// Binding is one resolved name.
type Binding struct {
	Kind BindingKind
	Span source.Span // declaration site

	Type  types.TypeID     // BindType, BindVar
	Const consteval.Handle // BindConst
	Value consteval.Value  // BindEnumVariant
}

// Scope is the flat per-file namespace. The language has one declaration
// namespace: a constant, a variable, and a type may not share a name.
type Scope struct {
	reporter diag.Reporter
	names    map[string]Binding
	order    []string
}

// NewScope builds an empty scope reporting duplicates to reporter.
func NewScope(reporter diag.Reporter) *Scope {
	return &Scope{
		reporter: reporter,
		names:    make(map[string]Binding, 16),
	}
}

// Declare installs a binding; redeclaring a name reports and keeps the
// first binding.
func (s *Scope) Declare(name string, b Binding) bool {
	if prev, ok := s.names[name]; ok {
		if s.reporter != nil {
			diag.ReportError(s.reporter, diag.SemaDuplicateSymbol, b.Span,
				"'"+name+"' is already declared").
				WithNote(prev.Span, "previous declaration is here").
				Emit()
		}
		return false
	}
	s.names[name] = b
	s.order = append(s.order, name)
	return true
}

// Lookup resolves a name.
func (s *Scope) Lookup(name string) (Binding, bool) {
	b, ok := s.names[name]
	return b, ok
}

// Names lists declared names in declaration order.
func (s *Scope) Names() []string {
	return s.order
}
