package display

import "github.com/dmitrymomot/displayfmt/pkg/duration"

// Bool renders "Yes" or "No" from the catalog keys format.boolean.true and
// format.boolean.false. It accepts bool, the numbers 0 and 1 and strings such as
// "true", "1", "yes" or "off".
func (f *Formatter) Bool(v any) string {
	b, err := toBool(v)
	if err != nil {
		return f.fallback("bool", v, err)
	}
	if b {
		return f.translator.Translate("format.boolean.true", "Yes")
	}
	return f.translator.Translate("format.boolean.false", "No")
}

// Number renders a number or numeric string with exactly decimals fraction digits.
func (f *Formatter) Number(v any, decimals int) string {
	n, err := toFloat(v)
	if err != nil {
		return f.fallback("number", v, err)
	}
	return f.numbers.FormatNumber(n, max(decimals, 0))
}

var fileSizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FileSize renders a byte count in 1024-based units, e.g. "512 B" or "1.50 KB".
// Bytes have no decimals, larger units two.
func (f *Formatter) FileSize(bytes int64) string {
	if bytes < 0 {
		return f.fallback("filesize", bytes, ErrInvalidNumber)
	}

	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(fileSizeUnits)-1 {
		size /= 1024
		unit++
	}

	decimals := 2
	if unit == 0 {
		decimals = 0
	}
	return f.numbers.FormatNumber(size, decimals) + " " + fileSizeUnits[unit]
}

// Duration renders a number of seconds, or a time.Duration, with the cascading
// duration format: "45 seconds", "1 hours 1 minutes", "2 days 3 hours". Negative
// values render as zero.
func (f *Formatter) Duration(v any) string {
	seconds, err := toSeconds(v)
	if err != nil {
		return f.fallback("duration", v, err)
	}
	units := f.longUnits
	if f.abbreviated {
		units = f.shortUnits
	}
	return duration.FormatUnits(seconds, units)
}

// Stars renders a rating count, e.g. "No stars", "1 Star" or "4 Stars", with the
// templates from format.stars.zero, format.stars.one and format.stars.other.
func (f *Formatter) Stars(n int) string {
	if n < 0 {
		return f.fallback("stars", n, ErrInvalidNumber)
	}
	return f.plural("format.stars", "%{count} Star", "%{count} Stars", n)
}

// plural resolves the one and other templates of key through the catalog and lets the
// pluralizer choose. A count of zero uses key.zero when the catalog has it.
func (f *Formatter) plural(key, one, other string, n int) string {
	if n == 0 {
		if zero := f.translator.Translate(key+".zero", ""); zero != "" {
			return f.pluralizer.Plural(zero, zero, 0)
		}
	}
	return f.pluralizer.Plural(
		f.translator.Translate(key+".one", one),
		f.translator.Translate(key+".other", other),
		n,
	)
}
