package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n\n[check]\nmax-diagnostics = 40\njobs = 2\ncache = true\n")

	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load: %v, %v", ok, err)
	}
	if m.Config.Package.Name != "demo" {
		t.Fatalf("name = %q", m.Config.Package.Name)
	}
	if m.Config.Check.MaxDiagnostics != 40 || m.Config.Check.Jobs != 2 || !m.Config.Check.Cache {
		t.Fatalf("check = %+v", m.Config.Check)
	}
	if m.Root != dir {
		t.Fatalf("root = %q, want %q", m.Root, dir)
	}
}

func TestLoadFromNestedDir(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(dir, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load: %v, %v", ok, err)
	}
	if m.Root != dir {
		t.Fatalf("root = %q, want %q", m.Root, dir)
	}
}

func TestLoadRejectsMissingName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\n")
	if _, ok, err := Load(dir); !ok || err == nil {
		t.Fatalf("Load = %v, %v; want an error", ok, err)
	}
}

func TestFindWithoutManifest(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("found a manifest in an empty directory")
	}
}

func TestDefaultManifestParses(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, DefaultManifest("demo"))
	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load: %v, %v", ok, err)
	}
	if m.Config.Package.Name != "demo" || !m.Config.Check.Cache {
		t.Fatalf("config = %+v", m.Config)
	}
}
