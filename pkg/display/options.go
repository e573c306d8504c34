package display

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/displayfmt/pkg/duration"
	"github.com/dmitrymomot/displayfmt/pkg/list"
	"github.com/dmitrymomot/displayfmt/pkg/logger"
	"github.com/dmitrymomot/displayfmt/pkg/sanitizer"
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocalizer sets translation, pluralization, relative time and duration unit
// labels from one language-bound localizer.
func WithLocalizer(l Localizer) Option {
	return func(f *Formatter) {
		if l == nil {
			return
		}
		f.translator = l
		f.pluralizer = l
		f.relative = l
		f.longUnits = l.DurationUnits(false)
		f.shortUnits = l.DurationUnits(true)
	}
}

// WithTranslator sets the catalog used for fixed phrases such as "Yes" and "No".
func WithTranslator(t Translator) Option {
	return func(f *Formatter) {
		if t != nil {
			f.translator = t
		}
	}
}

// WithPluralizer sets the collaborator used for counted phrases.
func WithPluralizer(p Pluralizer) Option {
	return func(f *Formatter) {
		if p != nil {
			f.pluralizer = p
		}
	}
}

// WithRelativeTimeFormatter sets the collaborator used by RelativeTime.
func WithRelativeTimeFormatter(r RelativeTimeFormatter) Option {
	return func(f *Formatter) {
		if r != nil {
			f.relative = r
		}
	}
}

// WithNumberFormatter sets the collaborator used by Number and FileSize.
func WithNumberFormatter(n NumberFormatter) Option {
	return func(f *Formatter) {
		if n != nil {
			f.numbers = n
		}
	}
}

// WithDateFormatter sets the collaborator used by Date.
func WithDateFormatter(d DateFormatter) Option {
	return func(f *Formatter) {
		if d != nil {
			f.dates = d
		}
	}
}

// WithDateParser sets the collaborator used to read date strings.
func WithDateParser(p DateParser) Option {
	return func(f *Formatter) {
		if p != nil {
			f.parser = p
		}
	}
}

// WithParagraphTransform replaces the text to HTML paragraph conversion.
func WithParagraphTransform(fn TextTransform) Option {
	return func(f *Formatter) {
		if fn != nil {
			f.paragraphs = fn
		}
	}
}

// WithStripTransform replaces the HTML to plain text conversion.
func WithStripTransform(fn TextTransform) Option {
	return func(f *Formatter) {
		if fn != nil {
			f.strip = fn
		}
	}
}

// WithPhonePatterns sets the layouts Phone tries, in order.
func WithPhonePatterns(patterns ...sanitizer.PhonePattern) Option {
	return func(f *Formatter) {
		f.phonePatterns = patterns
	}
}

// WithEmailObfuscation renders e-mail addresses as HTML entities.
func WithEmailObfuscation(enabled bool) Option {
	return func(f *Formatter) {
		f.obfuscateEmail = enabled
	}
}

// WithDurationUnits overrides the unit labels used by Duration.
func WithDurationUnits(long, short duration.Units) Option {
	return func(f *Formatter) {
		f.longUnits = long
		f.shortUnits = short
	}
}

// WithLogger sets the logger fallbacks are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		f.logger = logger.OrDiscard(l).With(logger.Component("display"))
	}
}

// WithClock sets the time source RelativeTime measures against.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// WithPlaceholder sets the text rendered for missing or invalid values. An empty
// placeholder is allowed.
func WithPlaceholder(placeholder string) Option {
	return func(f *Formatter) {
		f.placeholder = placeholder
		f.placeholderSet = true
	}
}

// WithListOptions appends options applied to every List and ListWithOverflow call.
func WithListOptions(opts ...list.Option) Option {
	return func(f *Formatter) {
		f.listOptions = append(f.listOptions, opts...)
	}
}

// WithAbbreviatedDurations renders durations as "1h 1m" instead of "1 hours 1 minutes".
func WithAbbreviatedDurations(abbreviated bool) Option {
	return func(f *Formatter) {
		f.abbreviated = abbreviated
	}
}

// WithDateLayout sets the Go reference layout Date uses when called with an empty
// pattern.
func WithDateLayout(layout string) Option {
	return func(f *Formatter) {
		if layout != "" {
			f.dateLayout = layout
		}
	}
}
