package locale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/displayfmt/pkg/locale"
)

// 2024-03-05 14:30:00 UTC, a Tuesday.
const tuesday int64 = 1709649000

type catalog map[string]string

func (c catalog) Translate(key, fallback string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return fallback
}

var german = catalog{
	"date.months.March":       "März",
	"date.months_short.Mar":   "Mrz.",
	"date.weekdays.Tuesday":   "Dienstag",
	"date.weekdays_short.Tue": "Di.",
	"date.months.January":     "Januar",
	"date.weekdays.Monday":    "Montag",
	"date.weekdays_short.Mon": "Mo.",
	"date.months_short.Jan":   "Jan.",
}

func TestDatesFormatDate(t *testing.T) {
	t.Parallel()

	dates := locale.NewDates(locale.WithTranslator(german))

	tests := []struct {
		name      string
		pattern   string
		translate bool
		expected  string
	}{
		{name: "default layout", pattern: "", expected: "2024-03-05"},
		{name: "time of day", pattern: "2006-01-02 15:04", expected: "2024-03-05 14:30"},
		{name: "english names", pattern: "Monday, 2 January 2006", expected: "Tuesday, 5 March 2024"},
		{name: "translated long names", pattern: "Monday, 2 January 2006", translate: true, expected: "Dienstag, 5 März 2024"},
		{name: "translated short names", pattern: "Mon 2 Jan", translate: true, expected: "Di. 5 Mrz."},
		{name: "numeric layout ignores translation", pattern: "02.01.2006", translate: true, expected: "05.03.2024"},
		{name: "literal text next to names", pattern: "Mon, Jan 2 at 15:04 MST", translate: true, expected: "Di., Mrz. 5 at 14:30 UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, dates.FormatDate(tuesday, tt.pattern, tt.translate))
		})
	}
}

func TestDatesFormatDateFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	dates := locale.NewDates(locale.WithTranslator(catalog{}))
	assert.Equal(t, "Tue 5 March", dates.FormatDate(tuesday, "Mon 2 January", true))

	untranslated := locale.NewDates()
	assert.Equal(t, "Tue 5 March", untranslated.FormatDate(tuesday, "Mon 2 January", true))
}

func TestDatesLocation(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*3600)
	dates := locale.NewDates(locale.WithLocation(tokyo))

	assert.Equal(t, tokyo, dates.Location())
	assert.Equal(t, "2024-03-05 23:30", dates.FormatDate(tuesday, "2006-01-02 15:04", false))
	assert.Equal(t, time.UTC, locale.NewDates(locale.WithLocation(nil)).Location())
}

func TestDatesParseDate(t *testing.T) {
	t.Parallel()

	dates := locale.NewDates()

	tests := []struct {
		name     string
		value    string
		expected int64
	}{
		{name: "unix timestamp", value: "1709649000", expected: tuesday},
		{name: "rfc3339", value: "2024-03-05T14:30:00Z", expected: tuesday},
		{name: "rfc3339 with offset", value: "2024-03-05T15:30:00+01:00", expected: tuesday},
		{name: "sql datetime", value: "2024-03-05 14:30:00", expected: tuesday},
		{name: "date only", value: "2024-03-05", expected: 1709596800},
		{name: "european date", value: "05.03.2024", expected: 1709596800},
		{name: "written out", value: "5 March 2024", expected: 1709596800},
		{name: "surrounding whitespace", value: "  2024-03-05\n", expected: 1709596800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts, err := dates.ParseDate(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ts)
		})
	}
}

func TestDatesParseDateErrors(t *testing.T) {
	t.Parallel()

	dates := locale.NewDates()

	_, err := dates.ParseDate("   ")
	require.ErrorIs(t, err, locale.ErrEmptyDate)

	_, err = dates.ParseDate("next tuesday")
	require.ErrorIs(t, err, locale.ErrInvalidDate)
	assert.Contains(t, err.Error(), "next tuesday")
}

func TestDatesParseDateCustomLayouts(t *testing.T) {
	t.Parallel()

	dates := locale.NewDates(locale.WithParseLayouts("2006/01/02"))

	ts, err := dates.ParseDate("2024/03/05")
	require.NoError(t, err)
	assert.Equal(t, int64(1709596800), ts)

	_, err = dates.ParseDate("2024-03-05")
	require.ErrorIs(t, err, locale.ErrInvalidDate)
}
