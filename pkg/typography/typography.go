// Package typography turns plain text into display-ready HTML: paragraphs and line breaks,
// curly quotes, ellipses and dashes. Input is always treated as text, never as markup.
package typography

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var blankLineRegex = regexp.MustCompile(`\n[^\S\n]*\n\s*`)

// Paragraphs wraps blank-line separated blocks of text in <p> elements and turns single
// newlines inside a block into <br>. Text is HTML escaped; empty input yields "".
//
//	Paragraphs("Hello\nworld\n\nBye") // "<p>Hello<br>\nworld</p>\n<p>Bye</p>"
func Paragraphs(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n"))
	if text == "" {
		return ""
	}

	blocks := blankLineRegex.Split(text, -1)
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		for i, line := range lines {
			lines[i] = html.EscapeString(strings.TrimSpace(line))
		}
		out = append(out, "<p>"+strings.Join(lines, "<br>\n")+"</p>")
	}
	return strings.Join(out, "\n")
}

// SmartQuotes replaces straight quotes with curly ones, "..." with an ellipsis, "---"
// with an em dash and "--" with an en dash. Apostrophes inside words become ’.
//
//	SmartQuotes(`"It's here"... -- maybe`) // “It’s here”… – maybe
func SmartQuotes(text string) string {
	if !strings.ContainsAny(text, `"'.-`) {
		return text
	}

	text = strings.NewReplacer("...", "…", "---", "—", "--", "–").Replace(text)

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text) + 8)

	for i, r := range runes {
		switch r {
		case '"':
			if opens(runes, i) {
				b.WriteRune('“')
			} else {
				b.WriteRune('”')
			}
		case '\'':
			if opens(runes, i) && !(i+1 < len(runes) && unicode.IsDigit(runes[i+1])) {
				b.WriteRune('‘')
			} else {
				b.WriteRune('’')
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// opens reports whether the quote at i starts a quotation: it sits at the start of the
// text or follows whitespace, an opening bracket or a dash.
func opens(runes []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev := runes[i-1]
	return unicode.IsSpace(prev) || strings.ContainsRune("([{<“‘–—", prev)
}
