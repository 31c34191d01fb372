// Package hir lowers a parsed file into a typed module: every declaration
// gets a resolved type id, constant initializers are registered for
// deferred evaluation, and the type table is populated.
package hir

import (
	"tern/internal/ast"
	"tern/internal/consteval"
	"tern/internal/symbols"
	"tern/internal/types"
)

// Module is the lowered form of one compilation unit.
type Module struct {
	Table *types.Table
	Scope *symbols.Scope

	// DeclTypes attaches a type id to every var and type declaration.
	// Failed declarations carry the error sentinel.
	DeclTypes map[ast.DeclID]types.TypeID
	// Consts maps const declarations to their deferred initializers.
	Consts map[ast.DeclID]consteval.Handle
}

// TypeOf answers the type attached to a declaration.
func (m *Module) TypeOf(decl ast.DeclID) types.TypeID {
	if id, ok := m.DeclTypes[decl]; ok {
		return id
	}
	return types.Error
}
