package scaffold

import (
	"context"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/ceramicstudio/create-ceramic-app/internal/manifest"
	"github.com/ceramicstudio/create-ceramic-app/internal/toolchain"
)

// PackageInspector checks the cloned package.json against the manifest
// schema and, when the package pins engines.node, against the local node.
type PackageInspector struct {
	// NodeVersion reports the installed node version; nil skips the
	// engines check.
	NodeVersion func(ctx context.Context) *semver.Version
}

// Inspect returns human-readable warnings for dir. It never fails.
func (p *PackageInspector) Inspect(ctx context.Context, dir string) []string {
	path := manifest.PathIn(dir)
	if _, err := os.Stat(path); err != nil {
		return []string{fmt.Sprintf("%s not found in %s", manifest.FileName, dir)}
	}

	var warnings []string

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", manifest.FileName, err)}
	}
	for _, issue := range result.Issues {
		warnings = append(warnings, fmt.Sprintf("%s %s", manifest.FileName, issue))
	}

	if p.NodeVersion == nil {
		return warnings
	}
	pkg, err := manifest.ParsePackage(path)
	if err != nil || pkg.Engines.Node == "" {
		return warnings
	}
	v := p.NodeVersion(ctx)
	if v == nil {
		return warnings
	}
	ok, err := toolchain.Satisfies(pkg.Engines.Node, v.String())
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("Could not check engines.node %q: %v", pkg.Engines.Node, err))
	} else if !ok {
		warnings = append(warnings, fmt.Sprintf("node %s does not satisfy engines.node %q", v, pkg.Engines.Node))
	}
	return warnings
}
