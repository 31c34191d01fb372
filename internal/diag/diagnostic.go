package diag

import (
	"tern/internal/source"
)

// Note is a secondary span/message pair attached to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding produced by a compiler phase.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote returns a copy of the diagnostic with the note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
