package display

// Date renders a time.Time, unix timestamp or date string with a Go reference layout,
// localizing month and weekday names. An empty pattern uses the configured layout.
// Zero and unparsable values render the placeholder.
func (f *Formatter) Date(v any, pattern string) string {
	ts, err := f.toTimestamp(v)
	if err != nil {
		return f.fallback("date", v, err)
	}
	if pattern == "" {
		pattern = f.dateLayout
	}
	return f.dates.FormatDate(ts, pattern, true)
}

// RelativeTime renders the same inputs as Date relative to the formatter clock, e.g.
// "3 hours ago" or "in 2 days".
func (f *Formatter) RelativeTime(v any) string {
	ts, err := f.toTimestamp(v)
	if err != nil {
		return f.fallback("relative_time", v, err)
	}
	return f.relative.RelativeTime(ts, f.now().Unix())
}
