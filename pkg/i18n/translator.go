package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/displayfmt/pkg/logger"
)

// Translator looks up translations by language and dot-separated key.
// It is safe for concurrent use; Reload swaps the catalog atomically.
type Translator struct {
	mu            sync.RWMutex
	translations  map[string]map[string]any
	adapter       TranslationAdapter
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		adapter:       adapter,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload reads the adapter again and replaces the catalog. On error the previous
// catalog stays in place.
func (t *Translator) Reload(ctx context.Context) error {
	loaded, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	translations := make(map[string]map[string]any, len(loaded))
	for lang, trans := range loaded {
		if strings.TrimSpace(lang) == "" {
			return ErrEmptyLanguageCode
		}
		if trans == nil {
			return fmt.Errorf("%w: %s", ErrNilLanguageCatalogue, lang)
		}
		translations[normalizeLang(lang)] = normalize(trans).(map[string]any)
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()

	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "no translations loaded")
		return nil
	}
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.Languages()))
	return nil
}

// DefaultLanguage returns the configured fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Languages returns the sorted list of loaded language codes.
func (t *Translator) Languages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Resolve maps lang to a loaded language: an exact match first, then its base language
// ("de-AT" to "de").
func (t *Translator) Resolve(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if resolved, ok := t.resolve(lang); ok {
		return resolved, nil
	}
	return "", &ErrLanguageNotSupported{Lang: lang}
}

func (t *Translator) resolve(lang string) (string, bool) {
	lang = normalizeLang(lang)
	if _, ok := t.translations[lang]; ok {
		return lang, true
	}
	if base, _, found := strings.Cut(lang, "-"); found {
		if _, ok := t.translations[base]; ok {
			return base, true
		}
	}
	return "", false
}

// Has reports whether key exists for lang, without falling back to other languages.
func (t *Translator) Has(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	resolved, ok := t.resolve(lang)
	if !ok {
		return false
	}
	_, ok = lookup(t.translations[resolved], key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from key/value pairs:
//
//	tr.T("en", "greeting", "name", "Ada") // "Hello, Ada!"
//
// Unsupported languages fall back to the default language. Missing keys return the key
// itself, or "" when WithFallbackToKey(false) is set.
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.text(lang, key); ok {
		return sprintf(s, args)
	}
	return t.missing(lang, key, args)
}

// Td works like T but returns defaultValue, with placeholders applied, when the key is
// missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if s, ok := t.text(lang, key); ok {
		return sprintf(s, args)
	}
	t.logMissingKey(lang, key)
	return sprintf(defaultValue, args)
}

// N translates a pluralized key. For n == 0 it tries key.zero then key.other, for n == 1
// key.one then key.other, otherwise key.other, and finally the key itself. %{count} is filled in with n
// unless the arguments already carry a count.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	if !slices.Contains(argKeys(args), "count") {
		args = append(slices.Clip(args), "count", strconv.Itoa(n))
	}

	for _, candidate := range pluralKeys(key, n) {
		if s, ok := t.text(lang, candidate); ok {
			return sprintf(s, args)
		}
	}
	return t.missing(lang, key, args)
}

// HasPlural reports whether key has at least one plural form in lang or the default
// language.
func (t *Translator) HasPlural(lang, key string) bool {
	for _, form := range []string{".one", ".other", ".zero"} {
		if _, ok := t.text(lang, key+form); ok {
			return true
		}
	}
	return false
}

// Tc translates key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Nc translates a pluralized key using the language stored in ctx.
func (t *Translator) Nc(ctx context.Context, key string, n int, args ...string) string {
	return t.N(GetLocale(ctx), key, n, args...)
}

// Export returns a copy of the top-level translations for lang, e.g. for client-side
// rendering.
func (t *Translator) Export(lang string) (map[string]any, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	resolved, ok := t.resolve(lang)
	if !ok {
		return nil, &ErrLanguageNotSupported{Lang: lang}
	}
	out := make(map[string]any, len(t.translations[resolved]))
	for k, v := range t.translations[resolved] {
		out[k] = v
	}
	return out, nil
}

// text finds a string value for key in lang, falling back to the default language.
func (t *Translator) text(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, 2)
	if resolved, ok := t.resolve(lang); ok {
		langs = append(langs, resolved)
	}
	if resolved, ok := t.resolve(t.defaultLang); ok && !slices.Contains(langs, resolved) {
		langs = append(langs, resolved)
	}

	for _, l := range langs {
		val, ok := lookup(t.translations[l], key)
		if !ok {
			continue
		}
		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		case int, int64, float64, bool:
			return fmt.Sprint(v), true
		}
	}
	return "", false
}

func (t *Translator) missing(lang, key string, args []string) string {
	t.logMissingKey(lang, key)
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

func (t *Translator) logMissingKey(lang, key string) {
	if t.logMissing {
		t.logger.Warn("translation not found", logger.Locale(lang), logger.Key(key))
	}
}

// lookup traverses nested maps using a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	if m == nil {
		return nil, false
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		if current, ok = val.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

func pluralKeys(key string, n int) []string {
	switch n {
	case 0:
		return []string{key + ".zero", key + ".other", key}
	case 1:
		return []string{key + ".one", key + ".other", key}
	default:
		return []string{key + ".other", key}
	}
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf replaces %{name} placeholders using key/value pairs; unknown placeholders are
// kept. A trailing unpaired argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func argKeys(args []string) []string {
	keys := make([]string, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		keys = append(keys, args[i])
	}
	return keys
}
