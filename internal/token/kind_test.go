package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		kind  Kind
		ok    bool
	}{
		{"var", KwVar, true},
		{"flexible", KwFlexible, true},
		{"div", KwDiv, true},
		{"true", BoolLit, true},
		{"False", 0, false},
		{"integer", 0, false},
	}
	for _, tc := range cases {
		k, ok := LookupKeyword(tc.ident)
		if ok != tc.ok || (ok && k != tc.kind) {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, %v", tc.ident, k, ok, tc.kind, tc.ok)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := DotDot.String(); got != ".." {
		t.Errorf("DotDot.String() = %q", got)
	}
	if got := Kind(200).String(); got != "unknown" {
		t.Errorf("unknown kind String() = %q", got)
	}
}

func TestTokenClasses(t *testing.T) {
	if !(Token{Kind: IntLit}).IsLiteral() {
		t.Error("IntLit should be a literal")
	}
	if !(Token{Kind: KwBoolean}).IsTypeKeyword() {
		t.Error("boolean should be a type keyword")
	}
	if (Token{Kind: Ident}).IsKeyword() {
		t.Error("identifier must not be a keyword")
	}
}
