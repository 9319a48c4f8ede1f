// ABOUTME: HTML escaping for literal document text
// ABOUTME: Used by the raw view and for every text run emitted in preview HTML

package markdown

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape returns text with &, <, > and " replaced by their HTML entities.
// Escaping already escaped text escapes it again, so callers escape each literal once.
func Escape(text string) string {
	return htmlEscaper.Replace(text)
}
