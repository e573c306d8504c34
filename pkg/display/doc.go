// Package display renders values for user interfaces: booleans, numbers, file sizes,
// dates, relative times, durations, free text, e-mail addresses, phone numbers, ratings
// and lists.
//
// A Formatter is built once from collaborators (number and date formatting, translation,
// pluralization, text transforms) and is then safe for concurrent use. Every method
// accepts loosely typed input and never fails: missing or invalid values render as the
// placeholder ("—" by default) and the reason is logged at debug level.
//
//	f := display.New()
//	f.Bool(1)                        // "Yes"
//	f.FileSize(1536)                 // "1.50 KB"
//	f.Duration(3661)                 // "1 hours 1 minutes"
//	f.ListWithOverflow(names, 3)     // "Ann, Bob and 4 more"
//
// Output is HTML-safe: user supplied text is escaped, catalog strings are trusted.
//
// For a localized formatter wire an i18n Localizer and the locale services, or let
// NewFromConfig do it from DISPLAY_* environment variables:
//
//	cfg, err := display.LoadConfig()
//	f, err := display.NewFromConfig(ctx, cfg, display.WithLogger(log))
package display
