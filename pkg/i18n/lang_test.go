package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/displayfmt/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	supported := []string{"en", "de", "fr-CA"}

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "empty header", header: "", expected: "xx"},
		{name: "exact match", header: "de", expected: "de"},
		{name: "quality ordering", header: "fr;q=0.5, de;q=0.9, en;q=0.8", expected: "de"},
		{name: "exact regional match", header: "fr-CA", expected: "fr-ca"},
		{name: "base language fallback", header: "de-AT, ja", expected: "de"},
		{name: "exact match beats earlier base match", header: "en-US;q=0.9, de;q=0.8", expected: "de"},
		{name: "case insensitive", header: "DE-de", expected: "de"},
		{name: "malformed quality counts as one", header: "ja;q=0.9, de;q=abc", expected: "de"},
		{name: "zero quality is excluded", header: "de;q=0, en;q=0.1", expected: "en"},
		{name: "wildcard is ignored", header: "*, fr-CA;q=0.2", expected: "fr-ca"},
		{name: "no match", header: "ja, zh", expected: "xx"},
		{name: "oversized header is truncated", header: "de," + strings.Repeat("x", 5000), expected: "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.ParseAcceptLanguage(tt.header, supported, "xx"))
		})
	}

	assert.Equal(t, "en", i18n.ParseAcceptLanguage("de", nil, "en"))
}
