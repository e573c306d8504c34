package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/displayfmt/pkg/sanitizer"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5551234567", sanitizer.NormalizePhone("(555) 123-4567"))
	assert.Equal(t, "15551234567", sanitizer.NormalizePhone("+1.555.123.4567"))
	assert.Equal(t, "", sanitizer.NormalizePhone("call me"))
}

func TestFormatPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		patterns []sanitizer.PhonePattern
		expected string
	}{
		{name: "ten digits", input: "555.123.4567", expected: "(555) 123-4567"},
		{name: "already formatted", input: "(555) 123-4567", expected: "(555) 123-4567"},
		{name: "with country code", input: "+1 555 123 4567", expected: "+1 (555) 123-4567"},
		{name: "seven digits", input: "1234567", expected: "123-4567"},
		{name: "unknown length returned trimmed", input: "  +49 30 12345678 ", expected: "+49 30 12345678"},
		{name: "no digits", input: " n/a ", expected: "n/a"},
		{name: "empty", input: "", expected: ""},
		{
			name:     "custom pattern",
			input:    "030 1234567",
			patterns: []sanitizer.PhonePattern{"### ### ####"},
			expected: "030 123 4567",
		},
		{
			name:     "first matching pattern wins",
			input:    "0301234567",
			patterns: []sanitizer.PhonePattern{"###-#######", "(###) ###-####"},
			expected: "030-1234567",
		},
		{
			name:     "custom patterns replace the defaults",
			input:    "5551234567",
			patterns: []sanitizer.PhonePattern{"## ## ##"},
			expected: "5551234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.FormatPhone(tt.input, tt.patterns...))
		})
	}
}

func TestPhonePattern(t *testing.T) {
	t.Parallel()

	p := sanitizer.PhonePattern("+## ### ###")
	assert.Equal(t, 8, p.Digits())

	out, ok := p.Apply("49301234")
	assert.True(t, ok)
	assert.Equal(t, "+49 301 234", out)

	_, ok = p.Apply("123")
	assert.False(t, ok)
}

func TestMaskPhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "******4567", sanitizer.MaskPhone("(555) 123-4567"))
	assert.Equal(t, "***", sanitizer.MaskPhone("123"))
}
