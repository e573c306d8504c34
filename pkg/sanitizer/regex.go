package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Email local part cleanup
	dotRegex = regexp.MustCompile(`\.+`)

	// Phone digit extraction
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Whitespace normalization
	whitespaceRegex      = regexp.MustCompile(`\s+`)
	horizontalSpaceRegex = regexp.MustCompile(`[^\S\n]+`)

	// HTML stripping
	htmlTagRegex       = regexp.MustCompile(`<[^>]*>`)
	htmlBlockTagRegex  = regexp.MustCompile(`(?i)</?(p|div|br|li|ul|ol|h[1-6]|tr|table|blockquote|pre)\b[^>]*>`)
	scriptOrStyleRegex = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(script|style)\s*>`)
	htmlCommentRegex   = regexp.MustCompile(`(?s)<!--.*?-->`)

	// Terminal escape sequences
	ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
)
