package urltext

import (
	"html"
	"regexp"
)

// tagPattern matches residual markup tags non-greedily. (?s) lets a tag
// span line breaks, which extracted content sometimes contains.
var tagPattern = regexp.MustCompile(`(?s)<.*?>`)

// Sanitize reduces extracted content to plain text: it strips any remaining
// markup tags, then decodes HTML character entities (&amp;, &#39;, ...)
// into literal characters. Tags are stripped before entities are decoded,
// so encoded angle brackets survive as literal text.
func Sanitize(s string) string {
	return html.UnescapeString(tagPattern.ReplaceAllString(s, ""))
}
