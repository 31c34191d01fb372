package parser

import (
	"strconv"
	"strings"

	"tern/internal/ast"
	"tern/internal/diag"
	"tern/internal/token"
)

// intLiteral converts an IntLit token into an expression node. The value is
// kept as the unsigned 64-bit magnitude; based literals such as
// 16#8000000000000000 deliberately cover the full u64 range, so negative
// integers can be spelled via their two's-complement bit pattern.
func (p *Parser) intLiteral(tok token.Token) ast.ExprID {
	text := tok.Text
	base := 10
	if hash := strings.IndexByte(text, '#'); hash >= 0 {
		// The lexer already bounds the base to 2..36.
		b, _ := strconv.ParseUint(text[:hash], 10, 32)
		base = int(b)
		text = text[hash+1:]
	}
	val, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		p.errAt(diag.LexBadNumber, tok.Span, "integer literal out of range")
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprInvalid, Span: tok.Span})
	}
	return p.b.NewExpr(ast.Expr{Kind: ast.ExprIntLit, Span: tok.Span, IntVal: val})
}

func (p *Parser) realLiteral(tok token.Token) ast.ExprID {
	val, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		p.errAt(diag.LexBadNumber, tok.Span, "real literal out of range")
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprInvalid, Span: tok.Span})
	}
	return p.b.NewExpr(ast.Expr{Kind: ast.ExprRealLit, Span: tok.Span, RealVal: val})
}

// charSeqLiteral strips quotes and unescapes a character sequence literal.
func (p *Parser) charSeqLiteral(tok token.Token) ast.ExprID {
	raw := tok.Text
	raw = strings.TrimPrefix(raw, "'")
	raw = strings.TrimSuffix(raw, "'")

	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b != '\\' || i+1 == len(raw) {
			sb.WriteByte(b)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case '0':
			sb.WriteByte(0)
		case '\\', '\'':
			sb.WriteByte(raw[i])
		default:
			sb.WriteByte('\\')
			sb.WriteByte(raw[i])
		}
	}
	return p.b.NewExpr(ast.Expr{Kind: ast.ExprCharSeqLit, Span: tok.Span, StrVal: sb.String()})
}
