package typography_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/displayfmt/pkg/typography"
)

func TestParagraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: " \n\n\t", expected: ""},
		{name: "single line", input: "Hello", expected: "<p>Hello</p>"},
		{name: "line break", input: "Hello\nworld", expected: "<p>Hello<br>\nworld</p>"},
		{name: "two paragraphs", input: "Hello\nworld\n\nBye", expected: "<p>Hello<br>\nworld</p>\n<p>Bye</p>"},
		{name: "blank line with spaces", input: "One\n   \nTwo", expected: "<p>One</p>\n<p>Two</p>"},
		{name: "many blank lines", input: "One\n\n\n\nTwo", expected: "<p>One</p>\n<p>Two</p>"},
		{name: "windows line endings", input: "One\r\n\r\nTwo\r\nThree", expected: "<p>One</p>\n<p>Two<br>\nThree</p>"},
		{name: "markup is escaped", input: "<script>x</script> & co", expected: "<p>&lt;script&gt;x&lt;/script&gt; &amp; co</p>"},
		{name: "lines are trimmed", input: "  indented  \n  text ", expected: "<p>indented<br>\ntext</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, typography.Paragraphs(tt.input))
		})
	}
}

func TestSmartQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no quotes", input: "plain text", expected: "plain text"},
		{name: "double quotes", input: `say "hi" now`, expected: "say “hi” now"},
		{name: "quote at start", input: `"Quoted"`, expected: "“Quoted”"},
		{name: "apostrophe", input: "it's", expected: "it’s"},
		{name: "single quotes", input: "a 'word' here", expected: "a ‘word’ here"},
		{name: "abbreviated year", input: "back in '99", expected: "back in ’99"},
		{name: "ellipsis", input: "wait...", expected: "wait…"},
		{name: "en dash", input: "1--2", expected: "1–2"},
		{name: "em dash", input: "yes---no", expected: "yes—no"},
		{name: "mixed", input: `"It's here"... -- maybe`, expected: "“It’s here”… – maybe"},
		{name: "quote after bracket", input: `("x")`, expected: "(“x”)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, typography.SmartQuotes(tt.input))
		})
	}
}

func BenchmarkParagraphs(b *testing.B) {
	text := "First line\nsecond line\n\nAnother paragraph with <markup> & more.\n\nLast."
	for b.Loop() {
		_ = typography.Paragraphs(text)
	}
}
