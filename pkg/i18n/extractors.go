package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// LangExtractor determines the preferred language of a request.
type LangExtractor func(r *http.Request) string

// maxLangCodeLength is the RFC 5646 recommended maximum tag length.
const maxLangCodeLength = 35

// ExtractorConfig holds configuration for DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts results to the given languages. Translator.Languages
// is the usual source.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order: the "lang" cookie, the "lang" query parameter,
// the Language header and the Accept-Language header. It returns "" when nothing usable
// is found.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	supported := make([]string, len(cfg.SupportedLangs))
	for i, lang := range cfg.SupportedLangs {
		supported[i] = normalizeLang(lang)
	}

	validate := func(lang string) string {
		lang = normalizeLang(lang)
		if lang == "" || len(lang) > maxLangCodeLength {
			return ""
		}
		if len(supported) == 0 || slices.Contains(supported, lang) {
			return lang
		}
		if base, _, found := strings.Cut(lang, "-"); found && slices.Contains(supported, base) {
			return base
		}
		return ""
	}

	return func(r *http.Request) string {
		if cfg.CookieName != "" {
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := validate(cookie.Value); lang != "" {
					return lang
				}
			}
		}

		if cfg.QueryParamName != "" {
			if lang := validate(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
				return lang
			}
		}

		if lang := validate(r.Header.Get("Language")); lang != "" {
			return lang
		}

		accept := r.Header.Get("Accept-Language")
		if accept == "" {
			return ""
		}
		if len(supported) > 0 {
			return ParseAcceptLanguage(accept, supported, "")
		}
		if langs := parseAcceptLanguageHeader(accept); len(langs) > 0 {
			return langs[0].lang
		}
		return ""
	}
}
