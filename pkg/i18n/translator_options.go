package i18n

import (
	"log/slog"

	"github.com/dmitrymomot/displayfmt/pkg/logger"
)

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when a requested language is unavailable.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = normalizeLang(lang)
		}
	}
}

// WithFallbackToKey controls whether T and N return the key when a translation is
// missing. Default is true; when disabled they return an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger used for load diagnostics and missing translations.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l.With(logger.Component("i18n"))
		}
	}
}

// WithMissingTranslationsLogging controls whether missing keys are logged at warn level.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.logMissing = enabled
	}
}
