package parser

import (
	"tern/internal/ast"
	"tern/internal/diag"
	"tern/internal/token"
)

// parseTypeSpec parses one type specification:
//
//	prim | range | array | enum | named
//
// A leading expression is ambiguous between a range low bound and a named
// type reference; it is disambiguated by the '..' that follows.
func (p *Parser) parseTypeSpec() (ast.TypeSynID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwFlexible, token.KwArray:
		return p.parseArrayType()
	case token.KwEnum:
		return p.parseEnumType()
	case token.KwBoolean, token.KwInt, token.KwNat, token.KwReal, token.KwChar, token.KwString:
		return p.parsePrimType()
	}

	return p.parseRangeOrNamed()
}

func (p *Parser) parsePrimType() (ast.TypeSynID, bool) {
	tok := p.advance()
	syn := ast.TypeSyn{Kind: ast.TypeSynPrim, Span: tok.Span}

	switch tok.Kind {
	case token.KwBoolean:
		syn.Prim = ast.PrimBoolean
	case token.KwInt:
		syn.Prim = ast.PrimInt
	case token.KwNat:
		syn.Prim = ast.PrimNat
	case token.KwReal:
		syn.Prim = ast.PrimReal
	case token.KwChar:
		syn.Prim = ast.PrimChar
	case token.KwString:
		syn.Prim = ast.PrimString
		// Optional fixed size: string(n).
		if p.at(token.LParen) {
			p.advance()
			size, ok := p.parseExpr()
			if !ok {
				return ast.NoTypeSynID, false
			}
			if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after string size"); !ok {
				return ast.NoTypeSynID, false
			}
			syn.SizeExpr = size
		}
	}

	syn.Span = syn.Span.Cover(p.lastSpan)
	return p.b.NewTypeSyn(syn), true
}

// parseRangeOrNamed handles the `expr .. expr` and `name` forms.
func (p *Parser) parseRangeOrNamed() (ast.TypeSynID, bool) {
	start := p.lx.Peek().Span
	low, ok := p.parseExpr()
	if !ok {
		p.err(diag.SynExpectType, "expected type specification")
		return ast.NoTypeSynID, false
	}

	if p.at(token.DotDot) {
		p.advance()
		high, ok := p.parseExpr()
		if !ok {
			return ast.NoTypeSynID, false
		}
		return p.b.NewTypeSyn(ast.TypeSyn{
			Kind: ast.TypeSynRange,
			Span: start.Cover(p.lastSpan),
			Low:  low,
			High: high,
		}), true
	}

	// Not a range: only a plain name can stand as a type reference.
	expr := p.b.Expr(low)
	if expr == nil || expr.Kind != ast.ExprName {
		p.errAt(diag.SynExpectType, start.Cover(p.lastSpan), "expected type specification")
		return ast.NoTypeSynID, false
	}
	return p.b.NewTypeSyn(ast.TypeSyn{
		Kind: ast.TypeSynNamed,
		Span: expr.Span,
		Name: expr.Name,
	}), true
}

// parseArrayType parses `[flexible] array range {, range} of typespec`.
func (p *Parser) parseArrayType() (ast.TypeSynID, bool) {
	start := p.lx.Peek().Span
	flexible := false
	if p.at(token.KwFlexible) {
		p.advance()
		flexible = true
	}
	if _, ok := p.expect(token.KwArray, diag.SynExpectType, "expected 'array' after 'flexible'"); !ok {
		return ast.NoTypeSynID, false
	}

	var ranges []ast.TypeSynID
	for {
		r, ok := p.parseIndexSpec()
		if !ok {
			return ast.NoTypeSynID, false
		}
		ranges = append(ranges, r)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	if _, ok := p.expect(token.KwOf, diag.SynExpectOf, "expected 'of' after array index"); !ok {
		return ast.NoTypeSynID, false
	}
	elem, ok := p.parseTypeSpec()
	if !ok {
		return ast.NoTypeSynID, false
	}

	return p.b.NewTypeSyn(ast.TypeSyn{
		Kind:     ast.TypeSynArray,
		Span:     start.Cover(p.lastSpan),
		Flexible: flexible,
		Ranges:   ranges,
		Elem:     elem,
	}), true
}

// parseIndexSpec parses one array index: a range, or a named type reference
// that should resolve to a range.
func (p *Parser) parseIndexSpec() (ast.TypeSynID, bool) {
	id, ok := p.parseRangeOrNamed()
	if !ok {
		p.err(diag.SynExpectRange, "expected array index range")
		return ast.NoTypeSynID, false
	}
	return id, true
}

// parseEnumType parses `enum (a, b, c)`.
func (p *Parser) parseEnumType() (ast.TypeSynID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynEnumExpectVariant, "expected '(' after 'enum'"); !ok {
		return ast.NoTypeSynID, false
	}

	syn := ast.TypeSyn{Kind: ast.TypeSynEnum, Span: kw.Span}
	seen := make(map[string]bool)
	for {
		name, ok := p.expect(token.Ident, diag.SynEnumExpectVariant, "expected enum variant name")
		if !ok {
			return ast.NoTypeSynID, false
		}
		if seen[name.Text] {
			p.errAt(diag.SynDuplicateEnumVariant, name.Span, "duplicate enum variant '"+name.Text+"'")
		} else {
			seen[name.Text] = true
			syn.Variants = append(syn.Variants, name.Text)
			syn.VariantSpans = append(syn.VariantSpans, name.Span)
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}

	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after enum variants"); !ok {
		return ast.NoTypeSynID, false
	}
	syn.Span = syn.Span.Cover(p.lastSpan)
	return p.b.NewTypeSyn(syn), true
}
