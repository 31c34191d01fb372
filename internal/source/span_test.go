package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 4, End: 8}
	b := Span{File: 0, Start: 6, End: 12}
	got := a.Cover(b)
	if got.Start != 4 || got.End != 12 {
		t.Fatalf("Cover = %v", got)
	}

	other := Span{File: 1, Start: 0, End: 2}
	if got := a.Cover(other); got != a {
		t.Fatalf("Cover across files must not widen, got %v", got)
	}
}

func TestSpanEmptyLen(t *testing.T) {
	s := Span{Start: 3, End: 3}
	if !s.Empty() || s.Len() != 0 {
		t.Fatalf("empty span misreported: %v", s)
	}
	s.End = 7
	if s.Empty() || s.Len() != 4 {
		t.Fatalf("span misreported: %v", s)
	}
}
