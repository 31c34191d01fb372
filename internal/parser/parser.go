package parser

import (
	"tern/internal/ast"
	"tern/internal/diag"
	"tern/internal/lexer"
	"tern/internal/source"
	"tern/internal/token"
)

// Options configure one parse.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result of parsing one file.
type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds per-file parsing state.
type Parser struct {
	lx       *lexer.Lexer
	b        *ast.Builder
	file     ast.FileID
	opts     Options
	lastSpan source.Span // span of the last consumed token
}

// ParseFile is the entry point for parsing one file. It requires a Lexer
// already bound to the source file.
func ParseFile(lx *lexer.Lexer, builder *ast.Builder, opts Options) Result {
	p := Parser{
		lx:       lx,
		b:        builder,
		file:     builder.NewFile(lx.EmptySpan()),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseDecls()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{File: p.file, Bag: bag}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan picks the best span for a diagnostic at the current position:
// after the last consumed token when peeking at EOF.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

func (p *Parser) err(code diag.Code, msg string) {
	p.errAt(code, p.diagSpan(), msg)
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) {
	p.opts.CurrentErrors++
	if p.opts.Reporter != nil && !p.tooMany() {
		diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	}
}

func (p *Parser) tooMany() bool {
	return p.opts.MaxErrors != 0 && p.opts.CurrentErrors > p.opts.MaxErrors
}

// expect consumes a token of the given kind or reports and returns false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.errAt(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

// parseDecls is the top-level loop: declarations until EOF, resyncing at
// declaration keywords after an error.
func (p *Parser) parseDecls() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		if p.opts.Enough() {
			break
		}
		declID, ok := p.parseDecl()
		if !ok {
			p.resyncDecl()
			continue
		}
		p.b.PushDecl(p.file, declID)
	}
	if f := p.b.File(p.file); f != nil {
		f.Span = startSpan.Cover(p.lastSpan)
	}
}

// resyncDecl skips tokens until the next plausible declaration start.
func (p *Parser) resyncDecl() {
	for {
		switch p.lx.Peek().Kind {
		case token.EOF, token.KwVar, token.KwConst, token.KwType:
			return
		default:
			p.advance()
		}
	}
}
