package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/displayfmt/pkg/sanitizer"
)

func BenchmarkStripHTML(b *testing.B) {
	input := strings.Repeat("<p>Fish &amp; <b>chips</b><br>with peas</p>", 20)
	for b.Loop() {
		_ = sanitizer.StripHTML(input)
	}
}

func BenchmarkFormatPhone(b *testing.B) {
	phones := []string{
		"(555) 123-4567",
		"555.123.4567",
		"+1-555-123-4567",
	}

	for _, phone := range phones {
		b.Run(phone, func(b *testing.B) {
			for b.Loop() {
				_ = sanitizer.FormatPhone(phone)
			}
		})
	}
}

func BenchmarkObfuscateEmail(b *testing.B) {
	for b.Loop() {
		_ = sanitizer.ObfuscateEmail("john.doe@example.com")
	}
}
