package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeBin creates an empty executable so exec.LookPath succeeds.
func fakeBin(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func newFakeChecker(tools []Tool, outputs map[string]string) *Checker {
	c := NewChecker(tools)
	c.probe = func(_ context.Context, path string) (string, error) {
		out, ok := outputs[filepath.Base(path)]
		if !ok {
			return "", errors.New("probe failed")
		}
		return out, nil
	}
	return c
}

func TestCheck_Statuses(t *testing.T) {
	tools := []Tool{
		{Name: "git", Bin: fakeBin(t, "git"), Constraint: ">= 2.0"},
		{Name: "node", Bin: fakeBin(t, "node"), Constraint: ">= 18"},
		{Name: "npm", Bin: filepath.Join(t.TempDir(), "npm-missing"), Constraint: ">= 8"},
		{Name: "weird", Bin: fakeBin(t, "weird")},
	}
	c := newFakeChecker(tools, map[string]string{
		"git":  "git version 2.39.2\n",
		"node": "v16.20.0\n",
	})

	results := c.Check(context.Background())
	want := []Status{StatusOK, StatusOutdated, StatusMissing, StatusUnknown}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, r := range results {
		if r.Status != want[i] {
			t.Errorf("%s: status = %s, want %s (err=%v)", r.Tool.Name, r.Status, want[i], r.Err)
		}
	}
	if results[0].Version == nil || results[0].Version.String() != "2.39.2" {
		t.Errorf("git version = %v", results[0].Version)
	}
}

func TestNodeVersion(t *testing.T) {
	tools := []Tool{{Name: "node", Bin: fakeBin(t, "node")}}
	c := newFakeChecker(tools, map[string]string{"node": "v20.3.1"})

	v := c.NodeVersion(context.Background())
	if v == nil || v.String() != "20.3.1" {
		t.Errorf("NodeVersion() = %v, want 20.3.1", v)
	}
}

func TestNodeVersion_NotConfigured(t *testing.T) {
	c := newFakeChecker(nil, nil)
	if v := c.NodeVersion(context.Background()); v != nil {
		t.Errorf("NodeVersion() = %v, want nil", v)
	}
}

func TestReport(t *testing.T) {
	tools := []Tool{
		{Name: "git", Bin: fakeBin(t, "git"), Constraint: ">= 2.0"},
		{Name: "npm", Bin: filepath.Join(t.TempDir(), "nope")},
	}
	c := newFakeChecker(tools, map[string]string{"git": "git version 2.40.0"})

	var buf bytes.Buffer
	problems := Report(&buf, c.Check(context.Background()))

	if problems != 1 {
		t.Errorf("Report() problems = %d, want 1", problems)
	}
	out := buf.String()
	if !strings.Contains(out, "[ OK ] git 2.40.0") {
		t.Errorf("missing OK line:\n%s", out)
	}
	if !strings.Contains(out, "[MISS] npm") {
		t.Errorf("missing MISS line:\n%s", out)
	}
}

func TestReport_AllOK(t *testing.T) {
	tools := []Tool{{Name: "git", Bin: fakeBin(t, "git")}}
	c := newFakeChecker(tools, map[string]string{"git": "git version 2.40.0"})

	var buf bytes.Buffer
	if problems := Report(&buf, c.Check(context.Background())); problems != 0 {
		t.Errorf("Report() problems = %d, want 0", problems)
	}
	if !strings.Contains(buf.String(), "All git found") {
		t.Errorf("unexpected report:\n%s", buf.String())
	}
}

func TestDefaultTools(t *testing.T) {
	tools := DefaultTools("/usr/bin/git", "")
	if len(tools) != 3 {
		t.Fatalf("got %d tools, want 3", len(tools))
	}
	if tools[0].Bin != "/usr/bin/git" || tools[2].Bin != "" {
		t.Errorf("unexpected bins: %+v", tools)
	}
}
