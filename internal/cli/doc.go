// Package cli wires the create-ceramic-app commands. The root command runs
// the interactive scaffold session; version and doctor are helpers.
package cli
