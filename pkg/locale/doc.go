// Package locale implements the host formatting services displayfmt relies on: locale
// aware number formatting backed by golang.org/x/text and unix-timestamp date
// formatting and parsing with optional translated month and weekday names.
//
//	nums := locale.NewNumbers(locale.Tag("de"))
//	nums.FormatNumber(1234.5, 2) // "1.234,50"
//
//	dates := locale.NewDates(locale.WithTranslator(tr.Localizer("de")))
//	dates.FormatDate(ts, "2 January 2006", true) // "5 März 2024"
//
// All types are safe for concurrent use.
package locale
