package types

import (
	"strings"
	"testing"
)

func TestPrimHandlesAreShared(t *testing.T) {
	if Prim(PrimInt) != Prim(PrimInt) {
		t.Fatal("int handles differ")
	}
	tbl := NewTable()
	if tbl.StringN(1) != tbl.StringN(1) {
		t.Fatal("string(1) handles differ")
	}
	if tbl.Len() != 0 {
		t.Fatalf("primitives leaked into the dense table, len = %d", tbl.Len())
	}
}

func TestConstructedTypesAreFresh(t *testing.T) {
	tbl := NewTable()
	info := RangeInfo{
		Low:  ConstantOrdinal{Value: 1},
		High: ConstantOrdinal{Value: 10},
		Base: Prim(PrimInt),
	}
	r1 := tbl.InternRange(info)
	r2 := tbl.InternRange(info)
	if r1 == r2 {
		t.Fatal("structurally identical ranges share an id")
	}
	a1 := tbl.InternArray(r1, Prim(PrimInt), false)
	a2 := tbl.InternArray(r1, Prim(PrimInt), false)
	if a1 == a2 {
		t.Fatal("structurally identical arrays share an id")
	}
}

func TestAliasTransparency(t *testing.T) {
	tbl := NewTable()
	c := tbl.InternAlias(Prim(PrimInt))
	b := tbl.InternAlias(c)
	a := tbl.InternAlias(b)

	got, ok := tbl.ResolveAlias(a)
	if !ok || got != Prim(PrimInt) {
		t.Fatalf("ResolveAlias = %v, %v", got, ok)
	}
}

func TestAliasCycle(t *testing.T) {
	tbl := NewTable()
	a := tbl.InternAlias(Error)
	b := tbl.InternAlias(a)
	// Close the loop a -> b -> a.
	tbl.types[a.Index()].Elem = b

	got, ok := tbl.ResolveAlias(a)
	if ok {
		t.Fatalf("cycle not detected, got %v", got)
	}
}

func TestEnumVariantsFilledBeforeReturn(t *testing.T) {
	tbl := NewTable()
	id := tbl.InternEnum([]string{"a", "b", "c"})
	info, ok := tbl.Enum(id)
	if !ok || len(info.Variants) != 3 {
		t.Fatalf("enum info = %+v, %v", info, ok)
	}
	for i, v := range info.Variants {
		rec, ok := tbl.Resolve(v.Field)
		if !ok || rec.Kind != KindEnumField {
			t.Fatalf("variant %d field = %+v", i, rec)
		}
		if rec.Elem != id || int(rec.Ordinal) != i {
			t.Fatalf("variant %d: parent %v ordinal %d", i, rec.Elem, rec.Ordinal)
		}
	}
}

func TestRangeCount(t *testing.T) {
	full := RangeInfo{
		Low:  ConstantOrdinal{Value: -9223372036854775808},
		High: ConstantOrdinal{Value: 9223372036854775807},
	}
	if _, ok := full.Count(); ok {
		t.Fatal("full span should be uncountable in uint64")
	}
	if got := full.SizeString(); got != "18446744073709551616" {
		t.Fatalf("SizeString = %q", got)
	}

	deg := RangeInfo{Low: ConstantOrdinal{Value: 1}, High: ConstantOrdinal{Value: 0}}
	if n, ok := deg.Count(); !ok || n != 0 {
		t.Fatalf("degenerate count = %d, %v", n, ok)
	}
	if !deg.Degenerate() {
		t.Fatal("1..0 is degenerate")
	}

	small := RangeInfo{Low: ConstantOrdinal{Value: -2}, High: ConstantOrdinal{Value: 2}}
	if n, ok := small.Count(); !ok || n != 5 {
		t.Fatalf("-2..2 count = %d, %v", n, ok)
	}
}

func TestDumpRendering(t *testing.T) {
	tbl := NewTable()
	enum := tbl.InternEnum([]string{"a", "b"})
	alias := tbl.InternAlias(enum)
	r := tbl.InternRange(RangeInfo{
		Low:  ConstantOrdinal{Value: 1},
		High: ConstantOrdinal{Value: 0},
		Base: Prim(PrimInt),
	})
	tbl.InternArray(r, Prim(PrimInt), true)

	dump := tbl.Dump()
	for _, want := range []string{
		"types: [",
		"\t0 -> { enum ( a(ty_id[1]) b(ty_id[2]) ) }",
		"\t1 -> { enum_field(0) of ty_id[0] }",
		"\t2 -> { enum_field(1) of ty_id[0] }",
		"\t3 -> { alias to ty_id[0] }",
		"\t4 -> { range 1 .. 0 (0) int }",
		"\t5 -> Array { flexible ty_id[4] of int }",
	} {
		if !strings.Contains(dump, want) {
			t.Fatalf("dump missing %q:\n%s", want, dump)
		}
	}
	_ = alias
}

func TestOrdinalRendering(t *testing.T) {
	cases := []struct {
		ord  ConstantOrdinal
		want string
	}{
		{ConstantOrdinal{Value: 1, Domain: DomainBool}, "true"},
		{ConstantOrdinal{Value: 0, Domain: DomainBool}, "false"},
		{ConstantOrdinal{Value: 68, Domain: DomainChar}, "'D'"},
		{ConstantOrdinal{Value: 0xD800, Domain: DomainChar}, "55296"},
		{ConstantOrdinal{Value: -1, Domain: DomainChar}, "-1"},
		{ConstantOrdinal{Value: 0x110000, Domain: DomainChar}, "1114112"},
		{ConstantOrdinal{Value: -5, Domain: DomainInt}, "-5"},
		{ConstantOrdinal{Value: 1, Domain: DomainEnum}, "1"},
	}
	for _, tc := range cases {
		if got := tc.ord.String(); got != tc.want {
			t.Fatalf("%+v renders %q, want %q", tc.ord, got, tc.want)
		}
	}
}
