// Package i18n provides the translation catalog behind displayfmt's localized output:
// yes/no labels, pluralized phrases such as "3 more" or "1 Star", relative time phrases
// and month and weekday names.
//
// # Architecture
//
// A Translator holds translations per language and delegates loading to a
// TranslationAdapter. MapAdapter serves in-memory maps; FSAdapter reads every YAML or
// JSON file from an fs.FS, which covers both os.DirFS directories and embed.FS bundles.
// DefaultCatalog returns an adapter for the English and German catalogs shipped with
// the package.
//
// Translator.Localizer binds a language and exposes the narrow interfaces consumed by
// package display: Translate, Plural and RelativeTime.
//
// Lookups use dot-separated keys into nested maps ("format.stars.other") and named
// placeholders in the form %{name}. Plural forms are selected from ".zero", ".one" and
// ".other" children of a key.
//
// # Usage
//
//	tr, err := i18n.NewTranslator(ctx, i18n.DefaultCatalog(),
//	    i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	loc := tr.Localizer("de-AT") // resolves to "de"
//	loc.Plural("format.stars", "format.stars", 3) // "3 Sterne"
//
// # HTTP
//
// Middleware stores the negotiated language in the request context (cookie, query
// parameter, Language and Accept-Language headers), so templates can call
// tr.Localizer(i18n.GetLocale(ctx)).
//
// # Errors
//
// Loading errors wrap the sentinel values in errors.go with errors.Join; use errors.Is
// to inspect them. Lookups never fail: missing keys fall back to the key itself (or an
// explicit default) and are logged when WithMissingTranslationsLogging is enabled.
package i18n
