// Package view exposes the display formatters as github.com/a-h/templ components so
// templ pages can render formatted values directly:
//
//	<p>Tagged { view.List(tags) }, took { view.Duration(job.Seconds, true) }</p>
//
// Components escape their text; Formatted embeds output of a display.Formatter, which
// is already HTML-safe.
package view

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/displayfmt/pkg/duration"
	"github.com/dmitrymomot/displayfmt/pkg/list"
)

// Render renders a component to a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Text renders s as escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Formatted embeds HTML produced by a display.Formatter without escaping it again.
func Formatted(html string) templ.Component {
	return templ.Raw(html)
}

// List renders items as a natural-language list.
func List(items []string, opts ...list.Option) templ.Component {
	return Text(list.Join(items, opts...))
}

// ListWithOverflow renders a shortened list. When items are hidden the complete list
// is kept in the title attribute of a wrapping span.
func ListWithOverflow(items []string, opts ...list.Option) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		short := list.JoinWithOverflow(items, opts...)
		full := list.Join(items, opts...)
		if short == full {
			_, err := io.WriteString(w, templ.EscapeString(short))
			return err
		}

		_, err := io.WriteString(w, `<span title="`+templ.EscapeString(full)+`">`+templ.EscapeString(short)+`</span>`)
		return err
	})
}

// Duration renders a <time> element whose datetime attribute carries the ISO 8601
// duration in seconds, e.g. <time datetime="PT3661S">1 hours 1 minutes</time>.
// Negative values render as zero.
func Duration(seconds int64, abbreviated bool) templ.Component {
	return DurationUnits(seconds, unitsFor(abbreviated))
}

// DurationUnits works like Duration with caller supplied unit labels.
func DurationUnits(seconds int64, units duration.Units) templ.Component {
	seconds = max(seconds, 0)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<time datetime="PT`+strconv.FormatInt(seconds, 10)+`S">`+
			templ.EscapeString(duration.FormatUnits(seconds, units))+`</time>`)
		return err
	})
}

func unitsFor(abbreviated bool) duration.Units {
	if abbreviated {
		return duration.ShortUnits
	}
	return duration.LongUnits
}
