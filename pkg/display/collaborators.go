package display

import "github.com/dmitrymomot/displayfmt/pkg/duration"

// NumberFormatter renders a number with a fixed count of fraction digits using locale
// grouping and decimal symbols.
type NumberFormatter interface {
	FormatNumber(value float64, decimals int) string
}

// DateFormatter renders a unix timestamp with a layout. When translate is set month and
// weekday names are localized.
type DateFormatter interface {
	FormatDate(ts int64, pattern string, translate bool) string
}

// DateParser converts free-form text into a unix timestamp.
type DateParser interface {
	ParseDate(value string) (int64, error)
}

// RelativeTimeFormatter describes ts relative to now, e.g. "3 hours ago".
type RelativeTimeFormatter interface {
	RelativeTime(ts, now int64) string
}

// Pluralizer picks between a singular and a plural template for count and fills in
// the count.
type Pluralizer interface {
	Plural(singular, plural string, count int) string
}

// Translator looks up a catalog key, returning fallback when it is missing.
type Translator interface {
	Translate(key, fallback string) string
}

// TextTransform converts one representation of text into another.
type TextTransform func(string) string

// Localizer bundles the language-bound collaborators, as implemented by
// i18n.Localizer.
type Localizer interface {
	Translator
	Pluralizer
	RelativeTimeFormatter
	DurationUnits(abbreviated bool) duration.Units
}
