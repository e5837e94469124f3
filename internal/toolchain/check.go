package toolchain

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tool is an executable the scaffold flow depends on.
type Tool struct {
	Name string
	// Bin overrides the executable looked up on PATH; defaults to Name.
	Bin        string
	Constraint string
}

// Status is the outcome of checking one tool.
type Status string

const (
	StatusOK       Status = "OK"
	StatusMissing  Status = "MISS"
	StatusOutdated Status = "OLD"
	StatusUnknown  Status = "??"
)

// Result is the check outcome for a single tool.
type Result struct {
	Tool    Tool
	Path    string
	Version *semver.Version
	Status  Status
	Err     error
}

// DefaultTools returns git, node and npm with their minimum versions.
// gitBin and npmBin come from user config and may be empty.
func DefaultTools(gitBin, npmBin string) []Tool {
	return []Tool{
		{Name: "git", Bin: gitBin, Constraint: ">= 2.0"},
		{Name: "node", Constraint: ">= 18"},
		{Name: "npm", Bin: npmBin, Constraint: ">= 8"},
	}
}

// Checker probes tools by running "<bin> --version".
type Checker struct {
	Tools []Tool

	// probe is replaced in tests.
	probe func(ctx context.Context, path string) (string, error)
}

// NewChecker returns a Checker for tools.
func NewChecker(tools []Tool) *Checker {
	return &Checker{Tools: tools, probe: runVersion}
}

// Check probes every tool in order.
func (c *Checker) Check(ctx context.Context) []Result {
	results := make([]Result, 0, len(c.Tools))
	for _, t := range c.Tools {
		results = append(results, c.checkOne(ctx, t))
	}
	return results
}

// NodeVersion returns the installed node version, or nil if unknown.
func (c *Checker) NodeVersion(ctx context.Context) *semver.Version {
	for _, t := range c.Tools {
		if t.Name == "node" {
			return c.checkOne(ctx, t).Version
		}
	}
	return nil
}

func (c *Checker) checkOne(ctx context.Context, t Tool) Result {
	r := Result{Tool: t}

	bin := t.Bin
	if bin == "" {
		bin = t.Name
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		r.Status = StatusMissing
		r.Err = fmt.Errorf("%s not found in PATH", bin)
		return r
	}
	r.Path = path

	probe := c.probe
	if probe == nil {
		probe = runVersion
	}
	out, err := probe(ctx, path)
	if err != nil {
		r.Status = StatusUnknown
		r.Err = err
		return r
	}

	v, err := DetectVersion(out)
	if err != nil {
		r.Status = StatusUnknown
		r.Err = err
		return r
	}
	r.Version = v

	if t.Constraint == "" {
		r.Status = StatusOK
		return r
	}
	ok, err := Satisfies(t.Constraint, v.String())
	switch {
	case err != nil:
		r.Status = StatusUnknown
		r.Err = err
	case ok:
		r.Status = StatusOK
	default:
		r.Status = StatusOutdated
		r.Err = fmt.Errorf("%s %s does not satisfy %s", t.Name, v, t.Constraint)
	}
	return r
}

func runVersion(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", path, err)
	}
	return string(out), nil
}

// Report writes one line per result and returns how many need attention.
func Report(w io.Writer, results []Result) int {
	fmt.Fprintln(w, "Toolchain check:")
	problems := 0
	for _, r := range results {
		switch r.Status {
		case StatusOK:
			fmt.Fprintf(w, "  [ OK ] %s %s (%s)\n", r.Tool.Name, r.Version, r.Path)
		case StatusMissing:
			fmt.Fprintf(w, "  [MISS] %s\n", r.Tool.Name)
			problems++
		case StatusOutdated:
			fmt.Fprintf(w, "  [OLD ] %s %s, need %s\n", r.Tool.Name, r.Version, r.Tool.Constraint)
			problems++
		default:
			fmt.Fprintf(w, "  [ ?? ] %s: %v\n", r.Tool.Name, r.Err)
			problems++
		}
	}
	if problems > 0 {
		fmt.Fprintf(w, "\n  %d tool(s) need attention.\n", problems)
	} else {
		fmt.Fprintf(w, "  [ OK ] All %s found\n", joinNames(results))
	}
	return problems
}

func joinNames(results []Result) string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Tool.Name
	}
	return strings.Join(names, ", ")
}
