package source

import (
	"testing"
)

func TestAddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.tn", []byte("\xEF\xBB\xBFvar x : int\r\n"))

	f := fs.Get(id)
	if got := string(f.Content); got != "var x : int\n" {
		t.Fatalf("content not normalized: %q", got)
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatalf("expected FileVirtual flag")
	}
}

func TestPosition(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.tn", []byte("var x : int\nvar y : real\n"))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{4, 1, 5},
		{12, 2, 1},
		{16, 2, 5},
	}
	for _, tc := range cases {
		got := fs.Position(id, tc.off)
		if got.Line != tc.line || got.Col != tc.col {
			t.Errorf("Position(%d) = %d:%d, want %d:%d", tc.off, got.Line, got.Col, tc.line, tc.col)
		}
	}
}

func TestGetByPathLatestWins(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a.tn", []byte("old"))
	id := fs.AddVirtual("a.tn", []byte("new"))

	f, ok := fs.GetByPath("a.tn")
	if !ok || f.ID != id {
		t.Fatalf("GetByPath returned %v, %v; want id %d", f, ok, id)
	}
}

func TestSnippet(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.tn", []byte("const n := 5"))

	sp := Span{File: id, Start: 8, End: 10}
	if got := fs.Snippet(sp); got != ":=" {
		t.Fatalf("Snippet = %q, want %q", got, ":=")
	}
	bad := Span{File: id, Start: 10, End: 99}
	if got := fs.Snippet(bad); got != "" {
		t.Fatalf("Snippet out of range = %q, want empty", got)
	}
}
