package sanitizer

import (
	"net/mail"
	"strconv"
	"strings"
)

// NormalizeEmail trims and lowercases an address and collapses repeated dots in the
// local part. Input without exactly one @ is returned trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := splitEmail(email)
	if !ok {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// IsEmail reports whether email is a bare address (no display name, no angle brackets)
// with a dotted domain.
func IsEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > 254 {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return false
	}

	local, domain, ok := splitEmail(addr.Address)
	if !ok || local == "" || len(local) > 64 {
		return false
	}
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// MaskEmail keeps the first character of the local part and the full domain.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)

	local, domain, ok := splitEmail(email)
	if !ok || local == "" {
		return email
	}

	runes := []rune(local)
	if len(runes) == 1 {
		return "*@" + domain
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}

// ObfuscateEmail encodes every character of email as a decimal HTML entity. Browsers
// render the address normally while naive scrapers see no @ sign.
//
//	ObfuscateEmail("a@b.io") // "&#97;&#64;&#98;&#46;&#105;&#111;"
func ObfuscateEmail(email string) string {
	email = strings.TrimSpace(email)

	var b strings.Builder
	b.Grow(len(email) * 6)
	for _, r := range email {
		b.WriteString("&#")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteByte(';')
	}
	return b.String()
}

// ExtractEmailDomain returns the lowercased domain of email, or "" for malformed input.
func ExtractEmailDomain(email string) string {
	_, domain, ok := splitEmail(strings.TrimSpace(email))
	if !ok {
		return ""
	}
	return strings.ToLower(domain)
}

func splitEmail(email string) (local, domain string, ok bool) {
	local, domain, ok = strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "", "", false
	}
	return local, domain, true
}
