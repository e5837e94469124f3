// Package manifest reads the package.json of a fetched project and validates
// it against an embedded JSON Schema, so a broken or unexpected example app
// is reported before the user tries to launch it.
package manifest
