package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// metadataDir is the version-control directory removed after cloning.
const metadataDir = ".git"

// GitFetcher clones repositories with the git CLI.
type GitFetcher struct {
	// Bin is the git executable; defaults to "git".
	Bin string
	// Progress receives git's output as it runs, for verbose sessions. When
	// nil, output is captured and only included in errors.
	Progress io.Writer
}

// Clone performs a depth-1 clone of repoURL into targetDir and then removes
// targetDir/.git. targetDir must not exist or must be empty. The process
// working directory is never changed.
func (g *GitFetcher) Clone(ctx context.Context, repoURL, targetDir string) error {
	bin, err := g.ensureGit()
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(targetDir)
	if err == nil && len(entries) > 0 {
		return fmt.Errorf("target directory %s exists and is not empty", targetDir)
	}

	parent := filepath.Dir(targetDir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, "clone", "--depth", "1", repoURL, filepath.Base(targetDir))
	cmd.Dir = parent

	if g.Progress != nil {
		cmd.Stdout = g.Progress
		cmd.Stderr = g.Progress
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("shallow clone of %s: %w", repoURL, err)
		}
	} else if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("shallow clone of %s: %w\n%s", repoURL, err, strings.TrimSpace(string(output)))
	}

	return StripMetadata(targetDir)
}

// StripMetadata recursively removes dir/.git. A missing directory is not an
// error.
func StripMetadata(dir string) error {
	if err := os.RemoveAll(filepath.Join(dir, metadataDir)); err != nil {
		return fmt.Errorf("removing %s metadata: %w", metadataDir, err)
	}
	return nil
}

// ensureGit checks that the configured git binary is available.
func (g *GitFetcher) ensureGit() (string, error) {
	name := g.Bin
	if name == "" {
		name = "git"
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("git is required but %q was not found in PATH", name)
	}
	return path, nil
}
