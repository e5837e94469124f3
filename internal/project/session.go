package project

import (
	"fmt"
	"path/filepath"
)

// Launch is the answer to "ready to launch it now?".
type Launch string

const (
	LaunchYes Launch = "Yes"
	LaunchNo  Launch = "No"
)

// Session is the transient state of one scaffold run.
type Session struct {
	Name   string
	Dir    string
	Launch Launch
}

// NewSession binds name to cwd. Dir is always absolute.
func NewSession(cwd, name string) (*Session, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("project name is empty")
	}
	dir, err := filepath.Abs(filepath.Join(cwd, name))
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}
	return &Session{Name: name, Dir: dir}, nil
}
