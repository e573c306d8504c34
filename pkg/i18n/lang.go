package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is used when no language can be determined.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the header size we are willing to parse.
const maxAcceptLanguageLength = 4096

type langWithQ struct {
	lang string
	q    float64
}

// normalizeLang lowercases a tag and uses "-" as the subtag separator.
func normalizeLang(lang string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
}

// parseAcceptLanguageHeader returns the languages of an Accept-Language header ordered
// by descending quality. Malformed quality values count as 1; q=0 entries are dropped.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(part, ";")
		lang := normalizeLang(tag)
		if lang == "" || lang == "*" {
			continue
		}

		q := 1.0
		if qPart, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if v, err := strconv.ParseFloat(qPart, 64); err == nil && v >= 0 && v <= 1 {
				q = v
			}
		}
		if q == 0 {
			continue
		}
		languages = append(languages, langWithQ{lang: lang, q: q})
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return languages
}

// ParseAcceptLanguage picks the best supported language for an Accept-Language header.
// Exact matches win over base-language matches ("en-US" to "en"); defaultLang is
// returned when nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	supported := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		supported[i] = normalizeLang(lang)
	}

	languages := parseAcceptLanguageHeader(header)

	for _, lq := range languages {
		if slices.Contains(supported, lq.lang) {
			return lq.lang
		}
	}
	for _, lq := range languages {
		if base, _, found := strings.Cut(lq.lang, "-"); found && slices.Contains(supported, base) {
			return base
		}
	}
	return defaultLang
}
