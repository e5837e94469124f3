package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePackage(t *testing.T) {
	p, err := ParsePackage(testPath("valid-package.json"))
	if err != nil {
		t.Fatalf("ParsePackage() error: %v", err)
	}
	if p.Name != "composedb-example-app" {
		t.Errorf("Name = %q", p.Name)
	}
	if !p.HasScript("dev") {
		t.Error("expected dev script")
	}
	if p.HasScript("start") {
		t.Error("did not expect start script")
	}
	if p.Engines.Node != ">=18" {
		t.Errorf("Engines.Node = %q, want >=18", p.Engines.Node)
	}
}

func TestParsePackage_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParsePackage(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestPathIn(t *testing.T) {
	if got := PathIn("/tmp/demo"); got != filepath.Join("/tmp/demo", "package.json") {
		t.Errorf("PathIn() = %q", got)
	}
}
