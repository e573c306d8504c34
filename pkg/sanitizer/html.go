package sanitizer

import (
	"html"
	"strings"
)

// EscapeHTML escapes <, >, &, ' and " so s can be embedded in HTML text or attributes.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML decodes HTML entities such as &amp; and &#39;.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// StripHTML converts an HTML fragment to plain text. Script and style elements are
// dropped with their content, comments are removed, block-level tags become line breaks
// and entities are decoded. Runs of spaces collapse and blank lines are trimmed.
//
//	StripHTML("<p>Fish &amp; <b>chips</b></p><p>Peas</p>") // "Fish & chips\nPeas"
func StripHTML(s string) string {
	s = scriptOrStyleRegex.ReplaceAllString(s, "")
	s = htmlCommentRegex.ReplaceAllString(s, "")
	s = htmlBlockTagRegex.ReplaceAllString(s, "\n")
	s = htmlTagRegex.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(horizontalSpaceRegex.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// StripScriptTags removes <script> and <style> elements together with their content.
func StripScriptTags(s string) string {
	return scriptOrStyleRegex.ReplaceAllString(s, "")
}
