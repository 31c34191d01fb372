package lexer

import (
	"golang.org/x/text/unicode/norm"

	"tern/internal/token"
)

// scanIdentOrKeyword reads an identifier or keyword. Non-ASCII identifiers
// are normalized to NFC so that visually identical names compare equal.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	ascii := true

	r, _ := lx.peekRune()
	if !isIdentStartRune(r) {
		// Stray byte; consume one rune and emit Invalid.
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		ascii = false
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if !ascii {
		text = norm.NFC.String(text)
	}

	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
