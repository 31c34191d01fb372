package lexer

import (
	"tern/internal/diag"
	"tern/internal/token"
)

// scanCharSeq reads a single-quoted character sequence literal ('D', 'ab').
// Escapes: \\ \' \n \t \0. The token text keeps the quotes; the parser
// unescapes. An unterminated literal is reported and clipped at the line end.
func (lx *Lexer) scanCharSeq() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		lx.cursor.Bump()
		if b == '\'' {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.CharSeqLit, Span: sp, Text: lx.text(sp)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedCharSeq, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
