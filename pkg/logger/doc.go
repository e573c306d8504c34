// Package logger builds the *slog.Logger instances used across displayfmt.
//
// Formatting itself never logs on the hot path; logging is reserved for diagnostics such
// as missing translations or values that fell back to a placeholder. Every component
// accepts an optional *slog.Logger and defaults to Discard, so nothing is written unless
// the host application wires a logger in.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithLocaleFrom(i18n.GetLocale),
//	)
//
//	f := display.New(display.WithLogger(log))
//
// Attribute helpers in attr.go (Locale, Key, Component, Value, Error) keep key names
// consistent between packages.
//
// # Context extraction
//
// WithContextExtractors and WithLocaleFrom register callbacks executed by
// ContextHandler on every record, injecting request-scoped values such as the
// active locale without building a new logger per request.
package logger
