// Package util contains any functions used across the application that don't match
// any other package
package util

import (
	"html"
	"strings"
)

// Sanitize trims and HTML-escapes a plain-text field before storage.
// URL fields must not go through here: escaping corrupts them, they are
// stored verbatim instead.
func Sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
