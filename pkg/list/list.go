package list

import (
	"fmt"
	"strconv"
	"strings"
)

// Join renders items as a natural-language list: "A", "A and B", "A, B and C".
// An empty slice yields an empty string.
func Join(items []string, opts ...Option) string {
	o := newOptions(opts)
	return join(items, o.separator, o.lastSeparator)
}

// JoinWithOverflow works like Join but renders at most limit entries. When there are more
// items than the limit, the first limit-1 are kept and the rest are summarised by a single
// overflow entry such as "3 more".
func JoinWithOverflow(items []string, opts ...Option) string {
	if len(items) == 0 {
		return ""
	}

	o := newOptions(opts)
	total := len(items)
	if total <= o.limit {
		return join(items, o.separator, o.lastSeparator)
	}

	shown := o.limit - 1
	remaining := total - shown

	// Fresh backing array so the caller's slice is never written to.
	visible := make([]string, shown, shown+1)
	copy(visible, items[:shown])
	visible = append(visible, o.overflow(remaining))

	return join(visible, o.separator, o.lastSeparator)
}

// JoinValues converts arbitrary values to strings the way fmt.Sprint does and joins them
// with Join.
func JoinValues[T any](items []T, opts ...Option) string {
	return Join(Strings(items), opts...)
}

// JoinValuesWithOverflow converts arbitrary values to strings and joins them with
// JoinWithOverflow.
func JoinValuesWithOverflow[T any](items []T, opts ...Option) string {
	return JoinWithOverflow(Strings(items), opts...)
}

// Strings converts values to their display strings with fmt.Sprint, so fmt.Stringer and
// error values render through their own methods.
func Strings[T any](items []T) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = fmt.Sprint(item)
	}
	return out
}

func join(items []string, sep, lastSep string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + lastSep + items[1]
	}

	last := len(items) - 1
	return strings.Join(items[:last], sep) + lastSep + items[last]
}

func (o options) overflow(remaining int) string {
	if !o.templateSet && o.overflowFunc != nil {
		return o.overflowFunc(remaining)
	}
	return Substitute(o.template, remaining)
}

// Substitute replaces the first %d in tmpl with n. Templates without a placeholder are
// returned unchanged.
func Substitute(tmpl string, n int) string {
	return strings.Replace(tmpl, "%d", strconv.Itoa(n), 1)
}
