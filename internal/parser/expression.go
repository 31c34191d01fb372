package parser

import (
	"tern/internal/ast"
	"tern/internal/diag"
	"tern/internal/source"
	"tern/internal/token"
)

// Expression grammar, loosest binding first:
//
//	imply:    or  ('=>' imply)?           right-assoc
//	or:       and ('or' and)*
//	and:      not ('and' not)*
//	not:      'not' not | comparison
//	cmp:      add (cmpop add)*
//	add:      mul (('+'|'-'|'xor') mul)*
//	mul:      prefix (('*'|'/'|'div'|'mod'|'rem'|'shl'|'shr') prefix)*
//	prefix:   ('+'|'-') prefix | exp
//	exp:      primary ('**' prefix)?      right-assoc, binds over unary minus
//	primary:  literal | name ('.' name)* | '(' imply ')'
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseImply()
}

func (p *Parser) parseImply() (ast.ExprID, bool) {
	lhs, ok := p.parseOr()
	if !ok {
		return ast.NoExprID, false
	}
	if p.at(token.Imply) {
		p.advance()
		rhs, ok := p.parseImply()
		if !ok {
			return ast.NoExprID, false
		}
		return p.newBinary(ast.BinImply, lhs, rhs), true
	}
	return lhs, true
}

func (p *Parser) parseOr() (ast.ExprID, bool) {
	lhs, ok := p.parseAnd()
	if !ok {
		return ast.NoExprID, false
	}
	for p.at(token.KwOr) {
		p.advance()
		rhs, ok := p.parseAnd()
		if !ok {
			return ast.NoExprID, false
		}
		lhs = p.newBinary(ast.BinOr, lhs, rhs)
	}
	return lhs, true
}

func (p *Parser) parseAnd() (ast.ExprID, bool) {
	lhs, ok := p.parseNot()
	if !ok {
		return ast.NoExprID, false
	}
	for p.at(token.KwAnd) {
		p.advance()
		rhs, ok := p.parseNot()
		if !ok {
			return ast.NoExprID, false
		}
		lhs = p.newBinary(ast.BinAnd, lhs, rhs)
	}
	return lhs, true
}

func (p *Parser) parseNot() (ast.ExprID, bool) {
	if p.at(token.KwNot) {
		kw := p.advance()
		operand, ok := p.parseNot()
		if !ok {
			return ast.NoExprID, false
		}
		span := kw.Span.Cover(p.exprSpan(operand))
		return p.b.NewExpr(ast.Expr{
			Kind: ast.ExprUnary,
			Span: span,
			Op:   uint8(ast.UnaryNot),
			Left: operand,
		}), true
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (ast.ExprID, bool) {
	lhs, ok := p.parseAdditive()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		var op ast.BinaryOp
		switch p.lx.Peek().Kind {
		case token.Lt:
			op = ast.BinLess
		case token.LtEq:
			op = ast.BinLessEq
		case token.Gt:
			op = ast.BinGreater
		case token.GtEq:
			op = ast.BinGreaterEq
		case token.Eq:
			op = ast.BinEqual
		case token.NotEq:
			op = ast.BinNotEqual
		default:
			return lhs, true
		}
		p.advance()
		rhs, ok := p.parseAdditive()
		if !ok {
			return ast.NoExprID, false
		}
		lhs = p.newBinary(op, lhs, rhs)
	}
}

func (p *Parser) parseAdditive() (ast.ExprID, bool) {
	lhs, ok := p.parseMultiplicative()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		var op ast.BinaryOp
		switch p.lx.Peek().Kind {
		case token.Plus:
			op = ast.BinAdd
		case token.Minus:
			op = ast.BinSub
		case token.KwXor:
			op = ast.BinXor
		default:
			return lhs, true
		}
		p.advance()
		rhs, ok := p.parseMultiplicative()
		if !ok {
			return ast.NoExprID, false
		}
		lhs = p.newBinary(op, lhs, rhs)
	}
}

func (p *Parser) parseMultiplicative() (ast.ExprID, bool) {
	lhs, ok := p.parsePrefix()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		var op ast.BinaryOp
		switch p.lx.Peek().Kind {
		case token.Star:
			op = ast.BinMul
		case token.Slash:
			op = ast.BinRealDiv
		case token.KwDiv:
			op = ast.BinDiv
		case token.KwMod:
			op = ast.BinMod
		case token.KwRem:
			op = ast.BinRem
		case token.KwShl:
			op = ast.BinShl
		case token.KwShr:
			op = ast.BinShr
		default:
			return lhs, true
		}
		p.advance()
		rhs, ok := p.parsePrefix()
		if !ok {
			return ast.NoExprID, false
		}
		lhs = p.newBinary(op, lhs, rhs)
	}
}

func (p *Parser) parsePrefix() (ast.ExprID, bool) {
	var op ast.UnaryOp
	switch p.lx.Peek().Kind {
	case token.Plus:
		op = ast.UnaryIdentity
	case token.Minus:
		op = ast.UnaryNegate
	default:
		return p.parseExponent()
	}
	tok := p.advance()
	operand, ok := p.parsePrefix()
	if !ok {
		return ast.NoExprID, false
	}
	span := tok.Span.Cover(p.exprSpan(operand))
	return p.b.NewExpr(ast.Expr{
		Kind: ast.ExprUnary,
		Span: span,
		Op:   uint8(op),
		Left: operand,
	}), true
}

// parseExponent parses `primary ** prefix`; '**' binds tighter than unary
// minus, so -2 ** 2 is -(2 ** 2).
func (p *Parser) parseExponent() (ast.ExprID, bool) {
	lhs, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	if p.at(token.Exp) {
		p.advance()
		rhs, ok := p.parsePrefix()
		if !ok {
			return ast.NoExprID, false
		}
		return p.newBinary(ast.BinExp, lhs, rhs), true
	}
	return lhs, true
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		return p.intLiteral(tok), true
	case token.RealLit:
		p.advance()
		return p.realLiteral(tok), true
	case token.BoolLit:
		p.advance()
		return p.b.NewExpr(ast.Expr{
			Kind:    ast.ExprBoolLit,
			Span:    tok.Span,
			BoolVal: tok.Text == "true",
		}), true
	case token.CharSeqLit:
		p.advance()
		return p.charSeqLiteral(tok), true
	case token.Ident:
		p.advance()
		expr := p.b.NewExpr(ast.Expr{Kind: ast.ExprName, Span: tok.Span, Name: tok.Text})
		return p.parseFieldSuffix(expr)
	case token.LParen:
		p.advance()
		inner, ok := p.parseImply()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')'"); !ok {
			return ast.NoExprID, false
		}
		span := tok.Span.Cover(p.lastSpan)
		return p.b.NewExpr(ast.Expr{Kind: ast.ExprParen, Span: span, Left: inner}), true
	default:
		p.err(diag.SynExpectExpression, "expected expression")
		return ast.NoExprID, false
	}
}

// parseFieldSuffix handles `name.field` chains (enum variant access).
func (p *Parser) parseFieldSuffix(base ast.ExprID) (ast.ExprID, bool) {
	for p.at(token.Dot) {
		p.advance()
		field, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name after '.'")
		if !ok {
			return ast.NoExprID, false
		}
		span := p.exprSpan(base).Cover(field.Span)
		base = p.b.NewExpr(ast.Expr{
			Kind:      ast.ExprField,
			Span:      span,
			Name:      field.Text,
			FieldSpan: field.Span,
			Left:      base,
		})
	}
	return base, true
}

func (p *Parser) newBinary(op ast.BinaryOp, lhs, rhs ast.ExprID) ast.ExprID {
	span := p.exprSpan(lhs).Cover(p.exprSpan(rhs))
	return p.b.NewExpr(ast.Expr{
		Kind:  ast.ExprBinary,
		Span:  span,
		Op:    uint8(op),
		Left:  lhs,
		Right: rhs,
	})
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if e := p.b.Expr(id); e != nil {
		return e.Span
	}
	return p.lastSpan
}
