// Package stringx provides small string helpers shared across the
// project.
package stringx

import (
	"strings"
	"unicode/utf8"

	"github.com/huandu/xstrings"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var firstLetter = cases.Title(language.AmericanEnglish)

// Capitalize uppercases the first letter of s and lowercases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return firstLetter.String(s[:size]) + strings.ToLower(s[size:])
}

// LowerCase returns s with all letters lowercased.
func LowerCase(s string) string {
	return strings.ToLower(s)
}

// CamelCase converts a space, hyphen or underscore separated phrase into
// lowerCamelCase, e.g. "data transfer object" -> "dataTransferObject".
func CamelCase(s string) string {
	norm := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.TrimSpace(s))
	return xstrings.FirstRuneToLower(xstrings.ToCamelCase(norm))
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// IsEmpty returns true for a zero-length string.
func IsEmpty(s string) bool {
	return s == ""
}

// IsBlank returns true if s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
