package lexer

import (
	"strconv"

	"tern/internal/diag"
	"tern/internal/token"
)

// scanNumber reads integer and real literals:
//   - decimal integers: [0-9]+
//   - based integers:   base#digits, base in 2..36 (e.g. 16#7fffffffffffffff)
//   - reals:            1.5, 1e9, 1.5e-3 ('..' never starts a fraction)
//
// Malformed forms are reported and an Invalid token is emitted where the
// literal cannot be salvaged.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// base#digits
	if lx.cursor.Peek() == '#' {
		baseSpan := lx.cursor.SpanFrom(start)
		base, err := strconv.ParseUint(lx.text(baseSpan), 10, 32)
		lx.cursor.Bump() // '#'
		if err != nil || base < 2 || base > 36 {
			lx.skipBaseDigits(36)
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexBadNumber, sp, "literal base must be between 2 and 36")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		digits := lx.skipBaseDigits(uint32(base))
		sp := lx.cursor.SpanFrom(start)
		if digits == 0 {
			lx.report(diag.LexBadNumber, sp, "based literal is missing digits")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		return token.Token{Kind: token.IntLit, Span: sp, Text: lx.text(sp)}
	}

	// fraction; '..' belongs to a range, not the number
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && b1 != '.' {
		if isDec(b1) {
			lx.cursor.Bump() // '.'
			kind = token.RealLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// Not an exponent after all (e.g. "1e" followed by an ident);
			// rewind and emit what we have.
			lx.cursor.Off = uint32(mark)
		} else {
			kind = token.RealLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) skipBaseDigits(base uint32) int {
	n := 0
	for isBaseDigit(lx.cursor.Peek(), base) {
		lx.cursor.Bump()
		n++
	}
	return n
}
