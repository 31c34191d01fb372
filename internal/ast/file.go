package ast

import "tern/internal/source"

// File is the root node of one parsed source file: its declarations in
// source order.
type File struct {
	Span  source.Span
	Decls []DeclID
}
