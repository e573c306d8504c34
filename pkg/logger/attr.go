package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil error yields an empty Attr, which slog skips.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Locale records the active language under "locale".
func Locale(lang string) slog.Attr {
	return slog.String("locale", lang)
}

// Key records a translation key under "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Formatter records the display formatter that produced a fallback under "formatter".
func Formatter(name string) slog.Attr {
	return slog.String("formatter", name)
}

// Value records the offending input and its Go type in an "input" group.
func Value(v any) slog.Attr {
	return Group("input",
		slog.Any("value", v),
		slog.String("type", fmt.Sprintf("%T", v)),
	)
}
