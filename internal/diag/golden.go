package diag

import (
	"fmt"
	"strings"

	"tern/internal/source"
)

// FormatGolden renders diagnostics one per line in a stable format suitable
// for golden-file tests and short CLI output:
//
//	SEVERITY CODE path:line:col message
//
// Notes are indented under their diagnostic when includeNotes is set. The
// caller is expected to Sort the bag first.
func FormatGolden(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, d := range diags {
		pos := fs.SpanStart(d.Primary)
		path := fs.Get(d.Primary.File).Path
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code.ID(), path, pos.Line, pos.Col, d.Message)
		if includeNotes {
			for _, n := range d.Notes {
				npos := fs.SpanStart(n.Span)
				fmt.Fprintf(&b, "\n  note %d:%d %s", npos.Line, npos.Col, n.Msg)
			}
		}
		if i < len(diags)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
