//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	BinDir  string // fake git and npm live here
	WorkDir string // the directory the user runs the scaffolder from
	Calls   string // every fake tool invocation is appended here
}

// setupTestEnv creates isolated temp directories with fake git and npm
// executables. gitExit and npmInstallExit set the exit status of
// `git clone` and `npm install`.
func setupTestEnv(t *testing.T, gitExit, npmInstallExit int) *testEnv {
	t.Helper()

	env := &testEnv{
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.Calls = filepath.Join(env.BinDir, "calls.log")
	t.Setenv("HOME", t.TempDir())

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	writeExecutable(t, filepath.Join(env.BinDir, "git"), `#!/bin/sh
echo "$(pwd) git $*" >> "`+env.Calls+`"
if [ "`+strconv.Itoa(gitExit)+`" != "0" ]; then
  echo "fatal: unable to access repository" >&2
  exit `+strconv.Itoa(gitExit)+`
fi
for last; do :; done
mkdir -p "$last/.git/refs"
cat > "$last/package.json" <<'JSON'
{"name":"composedb-example-app","private":true,"scripts":{"dev":"next dev","build":"next build"}}
JSON
echo "# ComposeDB example" > "$last/README.md"
`)

	writeExecutable(t, filepath.Join(env.BinDir, "npm"), `#!/bin/sh
echo "$(pwd) npm $*" >> "`+env.Calls+`"
if [ "$1" = "install" ]; then
  if [ "`+strconv.Itoa(npmInstallExit)+`" != "0" ]; then
    echo "npm ERR! network" >&2
    exit `+strconv.Itoa(npmInstallExit)+`
  fi
  mkdir -p node_modules/.bin
fi
if [ "$1" = "run" ]; then
  echo "ready - started server on 0.0.0.0:3000"
fi
`)

	return env
}

func (e *testEnv) gitBin() string { return filepath.Join(e.BinDir, "git") }
func (e *testEnv) npmBin() string { return filepath.Join(e.BinDir, "npm") }

func writeExecutable(t *testing.T, path, body string) {
	t.Helper()
	writeFile(t, path, body)
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readCalls returns the logged fake tool invocations, one per line.
func readCalls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.Calls)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading calls log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
