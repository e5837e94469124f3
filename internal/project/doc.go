// Package project holds the per-run scaffold session: the validated project
// name, the directory it will be created in, and the launch decision.
package project
