package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Tag parses a BCP 47 language code, accepting "_" as separator. Empty or invalid codes
// yield language.English.
func Tag(lang string) language.Tag {
	lang = strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if lang == "" {
		return language.English
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	return tag
}

// Match returns the supported tag closest to lang, or the first supported tag when
// nothing is close.
func Match(lang string, supported ...language.Tag) language.Tag {
	if len(supported) == 0 {
		return Tag(lang)
	}
	tag, _, _ := language.NewMatcher(supported).Match(Tag(lang))
	base, _ := tag.Base()
	for _, s := range supported {
		if b, _ := s.Base(); b == base {
			return s
		}
	}
	return supported[0]
}
