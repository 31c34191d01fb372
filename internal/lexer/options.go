package lexer

import (
	"tern/internal/diag"
	"tern/internal/source"
)

// Options configure a single Lexer instance.
type Options struct {
	// Reporter may be nil; errors are then dropped but lexing continues.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
