package i18n

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/displayfmt/pkg/duration"
)

// Localizer is a Translator bound to one language. It implements the translation,
// pluralization and relative-time collaborators used by package display.
type Localizer struct {
	t    *Translator
	lang string
}

// Localizer binds lang, resolving regional variants to their base language and
// unsupported languages to the default language.
func (t *Translator) Localizer(lang string) *Localizer {
	resolved, err := t.Resolve(lang)
	if err != nil {
		resolved = t.defaultLang
	}
	return &Localizer{t: t, lang: resolved}
}

// Lang returns the resolved language code.
func (l *Localizer) Lang() string {
	return l.lang
}

// Translate returns the translation of key, or fallback when it is missing.
func (l *Localizer) Translate(key, fallback string) string {
	return l.t.Td(l.lang, key, fallback)
}

// Plural renders a count-dependent phrase. When singular names a catalog key with plural
// forms, the catalog decides; otherwise singular is used for a count of one and plural
// for everything else, each first looked up as a key. Both %{count} and the first %d are
// replaced with count.
//
//	loc.Plural("format.stars", "format.stars", 2)   // "2 Stars"
//	loc.Plural("%{count} file", "%{count} files", 1) // "1 file"
func (l *Localizer) Plural(singular, plural string, count int) string {
	n := strconv.Itoa(count)
	if l.t.HasPlural(l.lang, singular) {
		return strings.Replace(l.t.N(l.lang, singular, count), "%d", n, 1)
	}

	tmpl := plural
	if count == 1 {
		tmpl = singular
	}
	if s, ok := l.t.text(l.lang, tmpl); ok {
		tmpl = s
	}
	return strings.Replace(sprintf(tmpl, []string{"count", n}), "%d", n, 1)
}

type relativeUnit struct {
	key      string
	seconds  int64
	agoOne   string
	agoOther string
	inOne    string
	inOther  string
}

var relativeUnits = []relativeUnit{
	{"years", 365 * 86400, "%{count} year ago", "%{count} years ago", "in %{count} year", "in %{count} years"},
	{"months", 30 * 86400, "%{count} month ago", "%{count} months ago", "in %{count} month", "in %{count} months"},
	{"days", 86400, "%{count} day ago", "%{count} days ago", "in %{count} day", "in %{count} days"},
	{"hours", 3600, "%{count} hour ago", "%{count} hours ago", "in %{count} hour", "in %{count} hours"},
	{"minutes", 60, "%{count} minute ago", "%{count} minutes ago", "in %{count} minute", "in %{count} minutes"},
}

// RelativeTime describes the unix timestamp ts relative to now, e.g. "3 hours ago" or
// "in 2 days". Differences under a minute read "just now". Each unit is floored.
func (l *Localizer) RelativeTime(ts, now int64) string {
	diff := now - ts
	future := diff < 0
	if future {
		diff = -diff
	}

	for _, u := range relativeUnits {
		if diff < u.seconds {
			continue
		}
		n := int(diff / u.seconds)
		if future {
			return l.plural("datetime."+u.key+".in", n, u.inOne, u.inOther)
		}
		return l.plural("datetime."+u.key+".ago", n, u.agoOne, u.agoOther)
	}

	return l.Translate("datetime.now", "just now")
}

// DurationUnits returns unit labels for duration.FormatUnits from the catalog keys
// duration.long.* or duration.short.*, defaulting to the English labels.
func (l *Localizer) DurationUnits(abbreviated bool) duration.Units {
	prefix, base := "duration.long.", duration.LongUnits
	if abbreviated {
		prefix, base = "duration.short.", duration.ShortUnits
	}
	return duration.Units{
		Seconds: l.Translate(prefix+"seconds", base.Seconds),
		Minutes: l.Translate(prefix+"minutes", base.Minutes),
		Hours:   l.Translate(prefix+"hours", base.Hours),
		Days:    l.Translate(prefix+"days", base.Days),
	}
}

func (l *Localizer) plural(key string, n int, one, other string) string {
	if l.t.HasPlural(l.lang, key) {
		return l.t.N(l.lang, key, n)
	}
	tmpl := other
	if n == 1 {
		tmpl = one
	}
	return sprintf(tmpl, []string{"count", strconv.Itoa(n)})
}
