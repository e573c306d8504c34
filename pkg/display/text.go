package display

import (
	"strings"

	"github.com/dmitrymomot/displayfmt/pkg/sanitizer"
)

var cleanText = sanitizer.Compose(
	sanitizer.RemoveControlChars,
	sanitizer.Trim,
)

// Text renders user input as escaped, trimmed HTML text.
func (f *Formatter) Text(s string) string {
	s = cleanText(s)
	if s == "" {
		return f.fallback("text", s, ErrEmptyValue)
	}
	return sanitizer.EscapeHTML(s)
}

// Paragraphs renders multi-line text as HTML paragraphs with line breaks.
func (f *Formatter) Paragraphs(s string) string {
	s = cleanText(s)
	if s == "" {
		return f.fallback("paragraphs", s, ErrEmptyValue)
	}
	return f.paragraphs(s)
}

// Plain strips markup from an HTML fragment and renders the remaining text escaped.
func (f *Formatter) Plain(s string) string {
	plain := strings.TrimSpace(f.strip(sanitizer.RemoveControlChars(s)))
	if plain == "" {
		return f.fallback("plain", s, ErrEmptyValue)
	}
	return sanitizer.EscapeHTML(plain)
}

// Email renders a validated, normalized address. Invalid addresses render the
// placeholder.
func (f *Formatter) Email(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return f.fallback("email", s, ErrEmptyValue)
	}
	if !sanitizer.IsEmail(s) {
		return f.fallback("email", s, ErrInvalidEmail)
	}

	email := sanitizer.NormalizeEmail(s)
	if f.obfuscateEmail {
		return sanitizer.ObfuscateEmail(email)
	}
	return sanitizer.EscapeHTML(email)
}

// Phone lays out a phone number with the first pattern matching its digit count.
// Numbers no pattern fits are rendered trimmed.
func (f *Formatter) Phone(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return f.fallback("phone", s, ErrEmptyValue)
	}
	if len(f.phonePatterns) == 0 {
		return sanitizer.EscapeHTML(s)
	}
	return sanitizer.EscapeHTML(sanitizer.FormatPhone(s, f.phonePatterns...))
}
