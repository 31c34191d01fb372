package lexer

import (
	"testing"

	"tern/internal/diag"
	"tern/internal/source"
	"tern/internal/token"
)

func lexAll(t *testing.T, input string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.tn", []byte(input))
	bag := diag.NewBag(16)
	lx := New(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestDeclarationTokens(t *testing.T) {
	toks, bag := lexAll(t, "var xs : flexible array 1 .. 0 of int")
	want := []token.Kind{
		token.KwVar, token.Ident, token.Colon, token.KwFlexible, token.KwArray,
		token.IntLit, token.DotDot, token.IntLit, token.KwOf, token.KwInt,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestBasedLiterals(t *testing.T) {
	toks, bag := lexAll(t, "16#8000000000000000 2#1010 36#z")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	for i, text := range []string{"16#8000000000000000", "2#1010", "36#z"} {
		if toks[i].Kind != token.IntLit || toks[i].Text != text {
			t.Errorf("token %d = %v %q", i, toks[i].Kind, toks[i].Text)
		}
	}
}

func TestBadBase(t *testing.T) {
	toks, bag := lexAll(t, "1#0")
	if len(toks) != 1 || toks[0].Kind != token.Invalid {
		t.Fatalf("tokens = %v", toks)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexBadNumber {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestRealVersusRange(t *testing.T) {
	toks, _ := lexAll(t, "1.5 1..2 1e9 1.5e-3")
	want := []token.Kind{
		token.RealLit,
		token.IntLit, token.DotDot, token.IntLit,
		token.RealLit, token.RealLit,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v (text %q)", i, got[i], want[i], toks[i].Text)
		}
	}
}

func TestCharSeqLiteral(t *testing.T) {
	toks, bag := lexAll(t, "'D' 'ab' '\\''")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	for i, text := range []string{"'D'", "'ab'", "'\\''"} {
		if toks[i].Kind != token.CharSeqLit || toks[i].Text != text {
			t.Errorf("token %d = %v %q, want CharSeqLit %q", i, toks[i].Kind, toks[i].Text, text)
		}
	}
}

func TestUnterminatedCharSeq(t *testing.T) {
	_, bag := lexAll(t, "'oops\n")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedCharSeq {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestOperators(t *testing.T) {
	toks, _ := lexAll(t, ":= .. ** => ~= <= >= < > = + - * / : , . ( )")
	want := []token.Kind{
		token.Assign, token.DotDot, token.Exp, token.Imply, token.NotEq,
		token.LtEq, token.GtEq, token.Lt, token.Gt, token.Eq,
		token.Plus, token.Minus, token.Star, token.Slash,
		token.Colon, token.Comma, token.Dot, token.LParen, token.RParen,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	toks, bag := lexAll(t, "% heading\nvar /* note /* nested */ still */ x : int")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	got := kinds(toks)
	want := []token.Kind{token.KwVar, token.Ident, token.Colon, token.KwInt}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v", got)
	}
	if len(toks[0].Leading) == 0 {
		t.Fatal("leading trivia missing on first token")
	}
	if toks[0].Leading[0].Kind != token.TriviaLineComment {
		t.Fatalf("first trivia = %v", toks[0].Leading[0].Kind)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, bag := lexAll(t, "/* never closed")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.tn", []byte("const n"))
	lx := New(fs.Get(id), Options{})

	if lx.Peek().Kind != token.KwConst {
		t.Fatal("peek")
	}
	if lx.Next().Kind != token.KwConst {
		t.Fatal("next after peek")
	}
	if lx.Next().Kind != token.Ident {
		t.Fatal("second token")
	}
	if lx.Next().Kind != token.EOF || lx.Next().Kind != token.EOF {
		t.Fatal("EOF must be sticky")
	}
}
