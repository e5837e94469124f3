package npm

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

var (
	installArgs = []string{"install", "--loglevel=error"}
	devArgs     = []string{"run", "dev"}
)

// quietEnv silences npm's funding and update banners after install.
var quietEnv = map[string]string{
	"npm_config_fund":            "false",
	"npm_config_update_notifier": "false",
}

// Runner invokes npm with the terminal's standard streams unless overridden.
type Runner struct {
	// Bin is the npm executable; defaults to "npm".
	Bin string

	// Input supplies the dev server's stdin when it starts; nil means
	// os.Stdin. Install never reads stdin.
	Input func() io.Reader

	// Stdout and Stderr default to the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs `npm install --loglevel=error` in dir and waits for it.
// Its stdin is the null device so it cannot consume answers meant for the
// prompts.
func (r *Runner) Install(ctx context.Context, dir string) error {
	if err := r.run(ctx, dir, installArgs, nil); err != nil {
		return fmt.Errorf("installing dependencies: %w", err)
	}
	return nil
}

// Dev runs `npm run dev` in dir. It blocks until the dev server exits.
func (r *Runner) Dev(ctx context.Context, dir string) error {
	stdin := io.Reader(os.Stdin)
	if r.Input != nil {
		stdin = r.Input()
	}
	if err := r.run(ctx, dir, devArgs, stdin); err != nil {
		return fmt.Errorf("starting dev server: %w", err)
	}
	return nil
}

// Command returns the shell form of the dev command, for instructions.
func Command() string {
	return "npm " + strings.Join(devArgs, " ")
}

// run executes npm in dir. A nil stdin reads from the null device.
func (r *Runner) run(ctx context.Context, dir string, args []string, stdin io.Reader) error {
	name := r.Bin
	if name == "" {
		name = "npm"
	}
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("npm is required but %q was not found in PATH", name)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("project directory %s not found", dir)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = buildEnv(os.Environ())

	cmd.Stdin = stdin
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("npm %s: %w", strings.Join(args, " "), err)
	}
	return nil
}

// buildEnv returns env with the quiet npm settings applied. Values already
// set by the user win.
func buildEnv(env []string) []string {
	for key, value := range quietEnv {
		if !hasEnv(env, key) {
			env = setEnv(env, key, value)
		}
	}
	return env
}

func hasEnv(env []string, key string) bool {
	prefix := key + "="
	for _, e := range env {
		if strings.HasPrefix(e, prefix) {
			return true
		}
	}
	return false
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
