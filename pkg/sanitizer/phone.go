package sanitizer

import (
	"strings"
)

// PhonePattern lays out a phone number: every # is replaced by the next digit, every
// other character is copied as is. A pattern applies to numbers with exactly as many
// digits as it has # signs.
type PhonePattern string

// Digits returns the number of # placeholders in p.
func (p PhonePattern) Digits() int {
	return strings.Count(string(p), "#")
}

// Apply lays out digits. It reports false when the digit count does not match.
func (p PhonePattern) Apply(digits string) (string, bool) {
	if len(digits) != p.Digits() {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(p))
	i := 0
	for _, r := range string(p) {
		if r == '#' {
			b.WriteByte(digits[i])
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

// DefaultPhonePatterns covers NANP numbers with and without the country code and local
// seven digit numbers.
var DefaultPhonePatterns = []PhonePattern{
	"(###) ###-####",
	"+# (###) ###-####",
	"###-####",
}

// NormalizePhone keeps only the digits of phone.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// FormatPhone formats phone with the first pattern whose placeholder count matches its
// digit count; DefaultPhonePatterns are used when none are given. Numbers no pattern
// fits are returned trimmed.
//
//	FormatPhone("555.123.4567")                   // "(555) 123-4567"
//	FormatPhone("030 1234567", "### ### ####")   // "030 123 4567"
func FormatPhone(phone string, patterns ...PhonePattern) string {
	phone = strings.TrimSpace(phone)
	if len(patterns) == 0 {
		patterns = DefaultPhonePatterns
	}

	digits := NormalizePhone(phone)
	if digits == "" {
		return phone
	}

	for _, p := range patterns {
		if formatted, ok := p.Apply(digits); ok {
			return formatted
		}
	}
	return phone
}

// MaskPhone shows only the last four digits of phone.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
