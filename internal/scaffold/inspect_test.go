package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
)

func writePackage(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func nodeAt(version string) func(context.Context) *semver.Version {
	return func(context.Context) *semver.Version {
		return semver.MustParse(version)
	}
}

func TestInspect_ValidPackage(t *testing.T) {
	dir := writePackage(t, `{"name":"app","scripts":{"dev":"next dev"},"engines":{"node":">=18"}}`)

	p := &PackageInspector{NodeVersion: nodeAt("20.1.0")}
	if w := p.Inspect(context.Background(), dir); len(w) != 0 {
		t.Errorf("unexpected warnings: %v", w)
	}
}

func TestInspect_MissingDevScript(t *testing.T) {
	dir := writePackage(t, `{"name":"app","scripts":{"build":"next build"}}`)

	p := &PackageInspector{}
	w := p.Inspect(context.Background(), dir)
	if len(w) == 0 {
		t.Fatal("expected a warning for missing dev script")
	}
	if !strings.HasPrefix(w[0], "package.json ") {
		t.Errorf("warning = %q", w[0])
	}
}

func TestInspect_NodeTooOld(t *testing.T) {
	dir := writePackage(t, `{"name":"app","scripts":{"dev":"next dev"},"engines":{"node":">=18"}}`)

	p := &PackageInspector{NodeVersion: nodeAt("16.20.0")}
	w := p.Inspect(context.Background(), dir)
	if len(w) != 1 || !strings.Contains(w[0], `does not satisfy engines.node ">=18"`) {
		t.Errorf("warnings = %v", w)
	}
}

func TestInspect_NodeUnknown(t *testing.T) {
	dir := writePackage(t, `{"name":"app","scripts":{"dev":"next dev"},"engines":{"node":">=18"}}`)

	p := &PackageInspector{NodeVersion: func(context.Context) *semver.Version { return nil }}
	if w := p.Inspect(context.Background(), dir); len(w) != 0 {
		t.Errorf("unexpected warnings: %v", w)
	}
}

func TestInspect_NoPackageJSON(t *testing.T) {
	p := &PackageInspector{}
	w := p.Inspect(context.Background(), t.TempDir())
	if len(w) != 1 || !strings.Contains(w[0], "package.json not found") {
		t.Errorf("warnings = %v", w)
	}
}

func TestInspect_MalformedJSON(t *testing.T) {
	dir := writePackage(t, `{"name":`)

	p := &PackageInspector{}
	w := p.Inspect(context.Background(), dir)
	if len(w) != 1 || !strings.Contains(w[0], "Could not validate") {
		t.Errorf("warnings = %v", w)
	}
}
