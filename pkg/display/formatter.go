package display

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/displayfmt/pkg/duration"
	"github.com/dmitrymomot/displayfmt/pkg/i18n"
	"github.com/dmitrymomot/displayfmt/pkg/list"
	"github.com/dmitrymomot/displayfmt/pkg/locale"
	"github.com/dmitrymomot/displayfmt/pkg/logger"
	"github.com/dmitrymomot/displayfmt/pkg/sanitizer"
	"github.com/dmitrymomot/displayfmt/pkg/typography"
)

// DefaultPlaceholder is rendered for missing or invalid values.
const DefaultPlaceholder = "—"

// Formatter renders values for display. It is immutable after New and safe for
// concurrent use.
type Formatter struct {
	numbers    NumberFormatter
	dates      DateFormatter
	parser     DateParser
	relative   RelativeTimeFormatter
	pluralizer Pluralizer
	translator Translator
	paragraphs TextTransform
	strip      TextTransform

	phonePatterns  []sanitizer.PhonePattern
	obfuscateEmail bool

	longUnits   duration.Units
	shortUnits  duration.Units
	abbreviated bool

	listOptions []list.Option
	dateLayout  string

	placeholder    string
	placeholderSet bool

	now    func() time.Time
	logger *slog.Logger
}

// New creates a Formatter. Without options it renders English using the built-in
// catalog, x/text number formatting and UTC dates.
func New(opts ...Option) *Formatter {
	en := englishLocalizer()
	dates := locale.NewDates(locale.WithTranslator(en))

	f := &Formatter{
		numbers:       locale.NewNumbers(language.English),
		dates:         dates,
		parser:        dates,
		relative:      en,
		pluralizer:    en,
		translator:    en,
		paragraphs:    typography.Paragraphs,
		strip:         sanitizer.StripHTML,
		phonePatterns: sanitizer.DefaultPhonePatterns,
		longUnits:     duration.LongUnits,
		shortUnits:    duration.ShortUnits,
		dateLayout:    locale.DefaultLayout,
		now:           time.Now,
		logger:        logger.Discard(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	if !f.placeholderSet {
		f.placeholder = f.translator.Translate("format.empty", DefaultPlaceholder)
	}

	return f
}

// Placeholder returns the text rendered for missing or invalid values.
func (f *Formatter) Placeholder() string {
	return f.placeholder
}

// fallback logs why a value could not be rendered and returns the placeholder.
func (f *Formatter) fallback(formatter string, v any, err error) string {
	f.logger.Debug("rendering placeholder",
		logger.Formatter(formatter),
		logger.Value(v),
		logger.Error(err),
	)
	return f.placeholder
}

var englishLocalizer = sync.OnceValue(func() *i18n.Localizer {
	tr, err := i18n.NewTranslator(context.Background(), i18n.DefaultCatalog())
	if err != nil {
		panic("display: built-in catalog: " + err.Error())
	}
	return tr.Localizer(i18n.DefaultLanguage)
})
