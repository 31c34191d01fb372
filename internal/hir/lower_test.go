package hir

import (
	"testing"

	"tern/internal/ast"
	"tern/internal/diag"
	"tern/internal/lexer"
	"tern/internal/parser"
	"tern/internal/source"
	"tern/internal/types"
)

func lowerSource(t *testing.T, src string) (*Module, *ast.Builder, *ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fid := fs.AddVirtual("test.tn", []byte(src))
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fid), lexer.Options{Reporter: rep})
	b := ast.NewBuilder()
	res := parser.ParseFile(lx, b, parser.Options{Reporter: rep})
	mod := Lower(b, res.File, rep)
	return mod, b, b.File(res.File), bag
}

const fixtureSrc = `type e1 : enum (a, b)
var a1 : flexible array 16#8000000000000000 .. 16#7fffffffffffffff of int
var a2 : flexible array true .. false of int
var a3 : flexible array 'D' .. 'C' of int
var a4 : flexible array e1.a .. e1.b of int
var a5 : flexible array e1.b .. e1.a of int
var a6 : flexible array 1 .. 0 of int
`

const fixtureDump = `types: [
	0 -> { enum ( a(ty_id[1]) b(ty_id[2]) ) }
	1 -> { enum_field(0) of ty_id[0] }
	2 -> { enum_field(1) of ty_id[0] }
	3 -> { alias to ty_id[0] }
	4 -> { range -9223372036854775808 .. 9223372036854775807 (18446744073709551616) long int }
	5 -> Array { flexible ty_id[4] of int }
	6 -> { range true .. false (0) boolean }
	7 -> Array { flexible ty_id[6] of int }
	8 -> { range 'D' .. 'C' (0) string(1) }
	9 -> Array { flexible ty_id[8] of int }
	10 -> { range 0 .. 1 (2) ty_id[0] }
	11 -> Array { flexible ty_id[10] of int }
	12 -> { range 1 .. 0 (0) ty_id[0] }
	13 -> Array { flexible ty_id[12] of int }
	14 -> { range 1 .. 0 (0) int }
	15 -> Array { flexible ty_id[14] of int }
]`

func TestLowerFixtureDump(t *testing.T) {
	mod, _, _, bag := lowerSource(t, fixtureSrc)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if mod.Table.Len() != 16 {
		t.Fatalf("table has %d entries, want 16", mod.Table.Len())
	}
	if got := mod.Table.Dump(); got != fixtureDump {
		t.Fatalf("dump mismatch:\ngot:\n%s\nwant:\n%s", got, fixtureDump)
	}
}

func TestLowerAttachesDeclTypes(t *testing.T) {
	mod, b, file, bag := lowerSource(t, "var x : int\ntype t : boolean\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if got := mod.TypeOf(file.Decls[0]); got != types.Prim(types.PrimInt) {
		t.Fatalf("var type = %v", got)
	}
	alias := mod.TypeOf(file.Decls[1])
	rec, ok := mod.Table.Resolve(alias)
	if !ok || rec.Kind != types.KindAlias || rec.Elem != types.Prim(types.PrimBoolean) {
		t.Fatalf("type decl = %+v, %v", rec, ok)
	}
	_ = b
}

func TestLowerDegenerateFixedArray(t *testing.T) {
	mod, _, file, bag := lowerSource(t, "var a : array 1 .. 0 of int\n")
	if !hasCode(bag, diag.SemaTypeMismatch) {
		t.Fatalf("want SemaTypeMismatch, got %v", bag.Items())
	}
	if got := mod.TypeOf(file.Decls[0]); !got.IsError() {
		t.Fatalf("decl type = %v, want error sentinel", got)
	}
}

func TestLowerDegenerateFlexibleArray(t *testing.T) {
	mod, _, file, bag := lowerSource(t, "var a : flexible array 1 .. 0 of int\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if got := mod.TypeOf(file.Decls[0]); got.IsError() {
		t.Fatal("flexible array over an empty range must lower")
	}
}

func TestLowerNamedRangeIndex(t *testing.T) {
	src := "type r : 1 .. 3\nvar a : array r of int\n"
	mod, _, file, bag := lowerSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	arr := mod.TypeOf(file.Decls[1])
	rec, ok := mod.Table.Resolve(arr)
	if !ok || rec.Kind != types.KindArray {
		t.Fatalf("array = %+v, %v", rec, ok)
	}
	// The alias id is kept on the array; it must still resolve to the range.
	resolved, ok := mod.Table.ResolveAlias(rec.Index)
	if !ok {
		t.Fatal("index alias did not resolve")
	}
	if info, ok := mod.Table.Range(resolved); !ok || info.Low.Value != 1 || info.High.Value != 3 {
		t.Fatalf("range = %+v, %v", info, ok)
	}
}

func TestLowerConstBounds(t *testing.T) {
	src := "const lo := 1\nconst hi := lo + 9\nvar a : array lo .. hi of int\n"
	mod, _, file, bag := lowerSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	arr := mod.TypeOf(file.Decls[2])
	rec, _ := mod.Table.Resolve(arr)
	info, ok := mod.Table.Range(rec.Index)
	if !ok || info.Low.Value != 1 || info.High.Value != 10 {
		t.Fatalf("range = %+v, %v", info, ok)
	}
	if n, _ := info.Count(); n != 10 {
		t.Fatalf("count = %d", n)
	}
}

func TestLowerConstReferencedBeforeDefinition(t *testing.T) {
	// Deferred evaluation lets a bound use a constant declared later.
	src := "var a : array 1 .. n of int\nconst n := 5\n"
	mod, _, file, bag := lowerSource(t, src)
	if !hasCode(bag, diag.SemaUnresolvedIdentifier) {
		// Declarations lower in source order: at the point the array is
		// lowered, n is not yet in scope.
		t.Fatalf("want SemaUnresolvedIdentifier, got %v", bag.Items())
	}
	if got := mod.TypeOf(file.Decls[0]); !got.IsError() {
		t.Fatalf("decl type = %v, want error sentinel", got)
	}
}

func TestLowerRecursiveConstBound(t *testing.T) {
	src := "const x := x + 1\nvar a : array x .. 10 of int\n"
	mod, _, file, bag := lowerSource(t, src)
	if !hasCode(bag, diag.SemaRecursiveConstant) {
		t.Fatalf("want SemaRecursiveConstant, got %v", bag.Items())
	}
	if got := mod.TypeOf(file.Decls[1]); !got.IsError() {
		t.Fatalf("decl type = %v, want error sentinel", got)
	}
}

func TestLowerResilience(t *testing.T) {
	// The bad declaration poisons only itself.
	src := "var a : array 1 .. true of int\nvar b : int\n"
	mod, _, file, bag := lowerSource(t, src)
	if !hasCode(bag, diag.SemaTypeMismatch) {
		t.Fatalf("want SemaTypeMismatch, got %v", bag.Items())
	}
	if got := mod.TypeOf(file.Decls[1]); got != types.Prim(types.PrimInt) {
		t.Fatalf("sibling decl type = %v", got)
	}
}

func TestLowerIntWidening(t *testing.T) {
	cases := []struct {
		src  string
		want types.PrimKind
	}{
		{"type t : 1 .. 100\n", types.PrimInt},
		{"type t : -2147483648 .. 2147483647\n", types.PrimInt},
		{"type t : 1 .. 2147483648\n", types.PrimLongInt},
		{"type t : -2147483649 .. 0\n", types.PrimLongInt},
	}
	for _, tc := range cases {
		mod, _, file, bag := lowerSource(t, tc.src)
		if bag.HasErrors() {
			t.Fatalf("%s: errors %v", tc.src, bag.Items())
		}
		alias := mod.TypeOf(file.Decls[0])
		resolved, _ := mod.Table.ResolveAlias(alias)
		info, ok := mod.Table.Range(resolved)
		if !ok {
			t.Fatalf("%s: no range", tc.src)
		}
		kind, _ := info.Base.PrimOf()
		if kind != tc.want {
			t.Fatalf("%s: base %v, want %v", tc.src, kind, tc.want)
		}
	}
}

func TestLowerMixedDomainRange(t *testing.T) {
	_, _, _, bag := lowerSource(t, "type t : 1 .. true\n")
	if !hasCode(bag, diag.SemaTypeMismatch) {
		t.Fatalf("want SemaTypeMismatch, got %v", bag.Items())
	}
}

func TestLowerUnknownTypeName(t *testing.T) {
	mod, _, file, bag := lowerSource(t, "var x : wibble\n")
	if !hasCode(bag, diag.SemaUnresolvedIdentifier) {
		t.Fatalf("want SemaUnresolvedIdentifier, got %v", bag.Items())
	}
	if got := mod.TypeOf(file.Decls[0]); !got.IsError() {
		t.Fatalf("decl type = %v", got)
	}
}

func TestLowerStringSize(t *testing.T) {
	mod, _, file, bag := lowerSource(t, "var s : string(4)\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	kind, size := mod.TypeOf(file.Decls[0]).PrimOf()
	if kind != types.PrimStringN || size != 4 {
		t.Fatalf("string type = %v(%d)", kind, size)
	}

	_, _, _, bag = lowerSource(t, "var s : string(0)\n")
	if !hasCode(bag, diag.SemaStringSizeOutOfBounds) {
		t.Fatalf("want SemaStringSizeOutOfBounds, got %v", bag.Items())
	}
	_, _, _, bag = lowerSource(t, "var s : string(256)\n")
	if !hasCode(bag, diag.SemaStringSizeOutOfBounds) {
		t.Fatalf("want SemaStringSizeOutOfBounds, got %v", bag.Items())
	}
}

func TestLowerBareVariantNames(t *testing.T) {
	// Variant names are bound as constants alongside Enum.variant access.
	src := "type e : enum (red, green, blue)\nvar a : array red .. blue of int\n"
	mod, _, file, bag := lowerSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	arr, _ := mod.Table.Resolve(mod.TypeOf(file.Decls[1]))
	info, ok := mod.Table.Range(arr.Index)
	if !ok || info.Low.Value != 0 || info.High.Value != 2 {
		t.Fatalf("range = %+v, %v", info, ok)
	}
	if info.Low.Domain != types.DomainEnum {
		t.Fatalf("domain = %v", info.Low.Domain)
	}
}

func TestLowerDuplicateDeclaration(t *testing.T) {
	_, _, _, bag := lowerSource(t, "var x : int\nconst x := 1\n")
	if !hasCode(bag, diag.SemaDuplicateSymbol) {
		t.Fatalf("want SemaDuplicateSymbol, got %v", bag.Items())
	}
}

func TestLowerMultiDimArray(t *testing.T) {
	mod, _, file, bag := lowerSource(t, "var m : array 1 .. 2, 1 .. 3 of real\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	outer, _ := mod.Table.Resolve(mod.TypeOf(file.Decls[0]))
	if outer.Kind != types.KindArray {
		t.Fatalf("outer = %+v", outer)
	}
	inner, _ := mod.Table.Resolve(outer.Elem)
	if inner.Kind != types.KindArray || inner.Elem != types.Prim(types.PrimReal) {
		t.Fatalf("inner = %+v", inner)
	}
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}
