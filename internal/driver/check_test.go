package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tern/internal/source"
	"tern/internal/token"
)

func TestCheckFixture(t *testing.T) {
	fset := source.NewFileSet()
	res, err := CheckPath(fset, filepath.Join("testdata", "ranges.tn"), CheckOptions{DumpTypes: true})
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}
	if res.Broken {
		t.Fatalf("fixture reported diagnostics:\n%s", res.Rendered)
	}
	if res.Rendered != "" {
		t.Fatalf("rendered diagnostics not empty: %q", res.Rendered)
	}
	if res.Module.Table.Len() != 16 {
		t.Fatalf("table has %d entries, want 16", res.Module.Table.Len())
	}
	if !strings.HasPrefix(res.Dump, "types: [") || !strings.HasSuffix(res.Dump, "]") {
		t.Fatalf("dump framing wrong:\n%s", res.Dump)
	}
	if !strings.Contains(res.Dump, "15 -> Array { flexible ty_id[14] of int }") {
		t.Fatalf("dump missing final entry:\n%s", res.Dump)
	}
}

func TestCheckBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.tn")
	if err := os.WriteFile(path, []byte("var a : array 1 .. 0 of int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fset := source.NewFileSet()
	res, err := CheckPath(fset, path, CheckOptions{})
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}
	if !res.Broken {
		t.Fatal("degenerate fixed array not reported")
	}
	if !strings.Contains(res.Rendered, "SEM3006") {
		t.Fatalf("rendered = %q", res.Rendered)
	}
}

func TestCheckDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fset := source.NewFileSet()
	opts := CheckOptions{DumpTypes: true, Cache: cache}

	first, err := CheckPath(fset, filepath.Join("testdata", "ranges.tn"), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatal("first run hit the cache")
	}

	second, err := CheckPath(source.NewFileSet(), filepath.Join("testdata", "ranges.tn"), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Fatal("second run missed the cache")
	}
	if second.Dump != first.Dump || second.Broken != first.Broken {
		t.Fatal("cached result differs from the computed one")
	}

	if err := cache.Clear(); err != nil {
		t.Fatal(err)
	}
	third, err := CheckPath(source.NewFileSet(), filepath.Join("testdata", "ranges.tn"), opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached {
		t.Fatal("cache survived Clear")
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	good := "var x : int\n"
	bad := "var a : array 1 .. 0 of int\n"
	if err := os.WriteFile(filepath.Join(dir, "a_good.tn"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b_bad.tn"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not a source file"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, results, err := CheckDir(context.Background(), dir, 2, CheckOptions{})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Broken || !results[1].Broken {
		t.Fatalf("broken flags = %v, %v", results[0].Broken, results[1].Broken)
	}
	if filepath.Base(results[0].Path) != "a_good.tn" {
		t.Fatalf("results out of order: %s first", results[0].Path)
	}
}

func TestTokenize(t *testing.T) {
	fset := source.NewFileSet()
	id := fset.AddVirtual("t.tn", []byte("var x : int\n"))
	toks, bag := Tokenize(fset, id, 0)
	if bag.HasErrors() {
		t.Fatalf("errors: %v", bag.Items())
	}
	kinds := []token.Kind{token.KwVar, token.Ident, token.Colon, token.KwInt, token.EOF}
	if len(toks) != len(kinds) {
		t.Fatalf("tokens = %d, want %d", len(toks), len(kinds))
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Fatalf("token %d = %v, want %v", i, toks[i].Kind, k)
		}
	}
}
