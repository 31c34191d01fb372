package parser

import (
	"tern/internal/ast"
	"tern/internal/diag"
	"tern/internal/token"
)

func (p *Parser) parseDecl() (ast.DeclID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwVar:
		return p.parseVarDecl()
	case token.KwConst:
		return p.parseConstDecl()
	case token.KwType:
		return p.parseTypeDecl()
	default:
		p.err(diag.SynUnexpectedToken, "expected 'var', 'const', or 'type' declaration")
		p.advance()
		return ast.NoDeclID, false
	}
}

// parseVarDecl parses `var name : typespec`.
func (p *Parser) parseVarDecl() (ast.DeclID, bool) {
	kw := p.advance()

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variable name after 'var'")
	if !ok {
		return ast.NoDeclID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after variable name"); !ok {
		return ast.NoDeclID, false
	}
	ty, ok := p.parseTypeSpec()
	if !ok {
		return ast.NoDeclID, false
	}

	span := kw.Span.Cover(p.lastSpan)
	return p.b.NewDecl(ast.Decl{
		Kind:     ast.DeclVar,
		Span:     span,
		Name:     name.Text,
		NameSpan: name.Span,
		Type:     ty,
	}), true
}

// parseConstDecl parses `const name := expr`. The initializer is kept as an
// expression node; it is evaluated on demand during lowering, never here.
func (p *Parser) parseConstDecl() (ast.DeclID, bool) {
	kw := p.advance()

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected constant name after 'const'")
	if !ok {
		return ast.NoDeclID, false
	}
	if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected ':=' after constant name"); !ok {
		return ast.NoDeclID, false
	}
	init, ok := p.parseExpr()
	if !ok {
		return ast.NoDeclID, false
	}

	span := kw.Span.Cover(p.lastSpan)
	return p.b.NewDecl(ast.Decl{
		Kind:     ast.DeclConst,
		Span:     span,
		Name:     name.Text,
		NameSpan: name.Span,
		Init:     init,
	}), true
}

// parseTypeDecl parses `type name : typespec`.
func (p *Parser) parseTypeDecl() (ast.DeclID, bool) {
	kw := p.advance()

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type name after 'type'")
	if !ok {
		return ast.NoDeclID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after type name"); !ok {
		return ast.NoDeclID, false
	}
	ty, ok := p.parseTypeSpec()
	if !ok {
		return ast.NoDeclID, false
	}

	span := kw.Span.Cover(p.lastSpan)
	return p.b.NewDecl(ast.Decl{
		Kind:     ast.DeclType,
		Span:     span,
		Name:     name.Text,
		NameSpan: name.Span,
		Type:     ty,
	}), true
}
