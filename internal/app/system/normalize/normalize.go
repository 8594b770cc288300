// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Email lowercases and trims an email address for comparison and submission.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Slug lowercases, trims, and collapses inner whitespace to hyphens so a
// typed organization slug matches what the platform generates.
func Slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
