// Package displayfmt is a kit for turning raw values into short, localized, HTML-safe
// strings for templates: numbers, file sizes, durations, booleans, ratings, dates,
// relative times, plain text, paragraphs, e-mail addresses, phone numbers and lists.
//
// The root package holds no code. The packages under pkg/ are layered:
//
//   - pkg/list and pkg/duration hold the pure list-joining and duration cascade rules.
//   - pkg/locale formats numbers and dates through golang.org/x/text.
//   - pkg/i18n loads YAML or JSON catalogs and implements translation, pluralization
//     and relative time for one language at a time.
//   - pkg/sanitizer and pkg/typography clean and shape user text.
//   - pkg/display combines the above into Formatter, the value every template uses,
//     and Registry, which keeps one Formatter per locale.
//   - pkg/view exposes formatter output as templ components.
//
// Basic usage:
//
//	f := display.New()
//	f.FileSize(1536)                                    // "1.50 KB"
//	f.Duration(3661)                                    // "1 hours 1 minutes"
//	f.ListWithOverflow([]string{"a", "b", "c", "d"}, 3) // "a, b and 2 more"
//
// Localized formatters are built from DISPLAY_* environment variables:
//
//	cfg, err := display.LoadConfig()
//	if err != nil {
//		return err
//	}
//	formatters, err := display.NewRegistry(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	http.Handle("/", i18n.Middleware(nil)(handler)) // handler calls formatters.FromContext(r.Context())
package displayfmt
