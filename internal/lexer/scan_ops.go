package lexer

import (
	"tern/internal/diag"
	"tern/internal/token"
)

// scanOperatorOrPunct matches operators greedily: two-byte sequences first,
// then single bytes.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2(':', '='):
		return emit(token.Assign)
	case lx.try2('*', '*'):
		return emit(token.Exp)
	case lx.try2('=', '>'):
		return emit(token.Imply)
	case lx.try2('~', '='):
		return emit(token.NotEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '=':
		return emit(token.Eq)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case ':':
		return emit(token.Colon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnknownChar, sp, "unexpected character "+lx.text(sp))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
