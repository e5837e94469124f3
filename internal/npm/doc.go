// Package npm runs the package manager inside a scaffolded project: the
// dependency install and the blocking dev server. Each command is scoped to
// the project directory through exec.Cmd.Dir.
package npm
