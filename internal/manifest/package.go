package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest file expected at the project root.
const FileName = "package.json"

// Package is the subset of package.json the scaffolder reads.
type Package struct {
	Name            string            `json:"name"`
	Version         string            `json:"version,omitempty"`
	Private         bool              `json:"private,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
	Engines         Engines           `json:"engines,omitempty"`
}

// Engines lists the runtime version ranges a package declares.
type Engines struct {
	Node string `json:"node,omitempty"`
	Npm  string `json:"npm,omitempty"`
}

// PathIn returns the package.json path inside projectDir.
func PathIn(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}

// ParsePackage reads and decodes a package.json file.
func ParsePackage(path string) (*Package, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var p Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &p, nil
}

// HasScript reports whether the package declares the named npm script.
func (p *Package) HasScript(name string) bool {
	_, ok := p.Scripts[name]
	return ok
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return data, nil
}
