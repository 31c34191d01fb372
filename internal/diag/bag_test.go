package diag

import (
	"testing"

	"tern/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Code: LexUnknownChar}) || !b.Add(Diagnostic{Code: LexBadNumber}) {
		t.Fatal("adds below cap must succeed")
	}
	if b.Add(Diagnostic{Code: SynUnexpectedToken}) {
		t.Fatal("add above cap must fail")
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(4)
	b.Add(Diagnostic{Severity: SevWarning})
	if b.HasErrors() {
		t.Fatal("warning alone must not count as error")
	}
	b.Add(Diagnostic{Severity: SevError})
	if !b.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(8)
	b.Add(Diagnostic{Severity: SevWarning, Code: SemaTypeMismatch, Primary: span(0, 10, 12)})
	b.Add(Diagnostic{Severity: SevError, Code: SemaDivisionByZero, Primary: span(0, 10, 12)})
	b.Add(Diagnostic{Severity: SevError, Code: LexBadNumber, Primary: span(0, 2, 4)})
	b.Sort()

	items := b.Items()
	if items[0].Code != LexBadNumber {
		t.Fatalf("first after sort = %v", items[0].Code)
	}
	// Same span: error sorts before warning.
	if items[1].Severity != SevError || items[2].Severity != SevWarning {
		t.Fatalf("severity order wrong: %v %v", items[1].Severity, items[2].Severity)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(8)
	d := Diagnostic{Severity: SevError, Code: SemaAliasCycle, Primary: span(0, 0, 3)}
	b.Add(d)
	b.Add(d)
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("Len after dedup = %d", b.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		id   string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{SemaRecursiveConstant, "SEM3002"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.id {
			t.Errorf("%d.ID() = %q, want %q", tc.code, got, tc.id)
		}
	}
}

func TestFormatGolden(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.tn", []byte("var x : foo\n"))

	b := NewBag(4)
	BagReporter{Bag: b}.Report(SemaUnresolvedIdentifier, SevError,
		source.Span{File: id, Start: 8, End: 11}, "'foo' is not declared", nil)
	b.Sort()

	got := FormatGolden(b.Items(), fs, false)
	want := "ERROR SEM3007 a.tn:1:9 'foo' is not declared"
	if got != want {
		t.Fatalf("golden mismatch:\n got %q\nwant %q", got, want)
	}
}
