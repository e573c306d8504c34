package locale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultLayout is used when FormatDate receives an empty pattern.
const DefaultLayout = "2006-01-02"

// DefaultParseLayouts are tried in order by ParseDate.
var DefaultParseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
	time.RFC1123Z,
	time.RFC1123,
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Translator resolves a catalog key, returning fallback when it is missing.
type Translator interface {
	Translate(key, fallback string) string
}

// Dates formats unix timestamps with Go reference layouts and parses free-form date
// strings back into timestamps.
type Dates struct {
	location   *time.Location
	translator Translator
	layouts    []string
}

// DatesOption configures Dates.
type DatesOption func(*Dates)

// WithLocation sets the time zone timestamps are rendered in and strings without an
// offset are parsed in. Defaults to UTC.
func WithLocation(loc *time.Location) DatesOption {
	return func(d *Dates) {
		if loc != nil {
			d.location = loc
		}
	}
}

// WithTranslator sets the catalog used for month and weekday names.
func WithTranslator(t Translator) DatesOption {
	return func(d *Dates) {
		d.translator = t
	}
}

// WithParseLayouts replaces the layouts ParseDate tries.
func WithParseLayouts(layouts ...string) DatesOption {
	return func(d *Dates) {
		if len(layouts) > 0 {
			d.layouts = layouts
		}
	}
}

// NewDates creates a date formatter.
func NewDates(opts ...DatesOption) *Dates {
	d := &Dates{
		location: time.UTC,
		layouts:  DefaultParseLayouts,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Location returns the configured time zone.
func (d *Dates) Location() *time.Location {
	return d.location
}

// name placeholders survive time.Format untouched
const (
	longMonth    = "\x00F\x00"
	shortMonth   = "\x00M\x00"
	longWeekday  = "\x00l\x00"
	shortWeekday = "\x00D\x00"
)

// FormatDate renders the unix timestamp ts with a Go reference layout. When translate is
// set month and weekday names are looked up in the catalog by their English name, e.g.
// date.months.March or date.weekdays_short.Tue.
func (d *Dates) FormatDate(ts int64, pattern string, translate bool) string {
	if pattern == "" {
		pattern = DefaultLayout
	}
	t := time.Unix(ts, 0).In(d.location)

	if !translate || d.translator == nil {
		return t.Format(pattern)
	}

	// Longest tokens first: "January" contains "Jan", "Monday" contains "Mon".
	pattern = strings.NewReplacer(
		"January", longMonth,
		"Monday", longWeekday,
		"Jan", shortMonth,
		"Mon", shortWeekday,
	).Replace(pattern)

	month, weekday := t.Month().String(), t.Weekday().String()
	mon, wd := month[:3], weekday[:3]

	return strings.NewReplacer(
		longMonth, d.translator.Translate("date.months."+month, month),
		shortMonth, d.translator.Translate("date.months_short."+mon, mon),
		longWeekday, d.translator.Translate("date.weekdays."+weekday, weekday),
		shortWeekday, d.translator.Translate("date.weekdays_short."+wd, wd),
	).Replace(t.Format(pattern))
}

// ParseDate converts value into a unix timestamp. Integer strings are taken as
// timestamps; everything else is tried against the configured layouts.
func (d *Dates) ParseDate(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrEmptyDate
	}

	if ts, err := strconv.ParseInt(value, 10, 64); err == nil {
		return ts, nil
	}

	for _, layout := range d.layouts {
		if t, err := time.ParseInLocation(layout, value, d.location); err == nil {
			return t.Unix(), nil
		}
	}

	return 0, errors.Join(ErrInvalidDate, fmt.Errorf("value %q", value))
}
