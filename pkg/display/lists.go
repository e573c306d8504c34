package display

import (
	"github.com/dmitrymomot/displayfmt/pkg/list"
	"github.com/dmitrymomot/displayfmt/pkg/sanitizer"
)

// List joins items into a natural-language list: "A, B and C". It accepts a slice or
// array of any element type; items are escaped.
func (f *Formatter) List(items any) string {
	values, err := f.listItems(items)
	if err != nil {
		return f.fallback("list", items, err)
	}
	return list.Join(values, f.joinOptions()...)
}

// ListWithOverflow renders at most limit entries, summarising the rest: "A, B and 3
// more". A limit below 1 means "not given" and uses the limit from WithListOptions, or
// list.DefaultLimit. This differs from list.WithLimit, which clamps such values to 1 and
// would render the overflow entry alone ("5 more"). The default overflow phrase comes
// from format.more.one and format.more.other; a template set with list options is used
// verbatim.
func (f *Formatter) ListWithOverflow(items any, limit int) string {
	values, err := f.listItems(items)
	if err != nil {
		return f.fallback("list", items, err)
	}

	opts := f.joinOptions()
	if limit > 0 {
		opts = append(opts, list.WithLimit(limit))
	}
	return list.JoinWithOverflow(values, opts...)
}

func (f *Formatter) listItems(items any) ([]string, error) {
	values, err := toStrings(items)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptyValue
	}

	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = sanitizer.EscapeHTML(v)
	}
	return escaped, nil
}

// joinOptions puts catalog defaults first so configured list options override them.
func (f *Formatter) joinOptions() []list.Option {
	opts := make([]list.Option, 0, len(f.listOptions)+4)
	opts = append(opts,
		list.WithSeparator(f.translator.Translate("format.list.separator", list.DefaultSeparator)),
		list.WithLastSeparator(f.translator.Translate("format.list.last_separator", list.DefaultLastSeparator)),
		list.WithOverflowFunc(func(remaining int) string {
			return f.plural("format.more", "%{count} more", "%{count} more", remaining)
		}),
	)
	return append(opts, f.listOptions...)
}
