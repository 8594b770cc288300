// Package htmlsanitize strips markup from user-supplied text.
//
// Console forms only ever accept plain text (names, addresses, contacts),
// so everything funnels through Text before being echoed back into a page
// or submitted to the platform API.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text trims s and removes every HTML tag, returning the remaining plain
// text with entities decoded.
func Text(s string) string {
	return html.UnescapeString(strict.Sanitize(strings.TrimSpace(s)))
}
