// Package slug derives URL-safe job slugs from titles.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Derive lowercases the title and collapses every non-alphanumeric run into
// a single hyphen, e.g. "Backend Developer" -> "backend-developer".
func Derive(title string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// Valid reports whether s is a non-empty derived slug (lowercase
// alphanumerics and hyphens only).
func Valid(s string) bool {
	if s == "" {
		return false
	}
	return nonAlnum.ReplaceAllString(s, "-") == s
}
