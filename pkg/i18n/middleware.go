package i18n

import (
	"net/http"

	"github.com/dmitrymomot/displayfmt/pkg/locale"
)

// Middleware stores the language chosen by extr in the request context as a canonical
// BCP 47 tag ("de-de" becomes "de-DE"), the form display.Registry keys formatters by.
// A nil extractor uses DefaultLangExtractor. Empty or unparsable results store
// DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := DefaultLanguage
			if raw := extr(r); raw != "" {
				lang = locale.Tag(raw).String()
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
