package project

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	namePattern     = regexp.MustCompile(`^[A-Za-z0-9-]*$`)
	trailingPattern = regexp.MustCompile(`[\s-]$`)
	lower           = cases.Lower(language.Und)
)

// ErrInvalidName is returned by ValidateName. Its text is shown to the user
// verbatim when the name prompt re-asks.
var ErrInvalidName = errors.New("only letters, numbers and dashes please; the name will be used to create a directory")

// ValidateName accepts letters, digits and dashes, not ending in a dash or
// whitespace. The empty string is accepted; it resolves to the default name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) || trailingPattern.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// ResolveName returns the lowercased input, or the lowercased default when
// input is empty.
func ResolveName(input, defaultName string) string {
	if input == "" {
		input = defaultName
	}
	return lower.String(strings.TrimSpace(input))
}
