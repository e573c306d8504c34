package list

const (
	// DefaultSeparator is placed between all but the last pair of items.
	DefaultSeparator = ", "
	// DefaultLastSeparator is placed before the final item.
	DefaultLastSeparator = " and "
	// DefaultLimit is the number of slots JoinWithOverflow renders, overflow entry included.
	DefaultLimit = 3
	// DefaultOverflowTemplate renders the overflow entry; %d is the number of hidden items.
	DefaultOverflowTemplate = "%d more"
)

// Option configures how items are joined.
type Option func(*options)

type options struct {
	separator     string
	lastSeparator string
	limit         int
	template      string
	templateSet   bool
	overflowFunc  func(remaining int) string
}

func newOptions(opts []Option) options {
	o := options{
		separator:     DefaultSeparator,
		lastSeparator: DefaultLastSeparator,
		limit:         DefaultLimit,
		template:      DefaultOverflowTemplate,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithSeparator sets the separator used between items. An empty separator is allowed.
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// WithLastSeparator sets the conjunction placed before the final item, e.g. " or ".
func WithLastSeparator(sep string) Option {
	return func(o *options) {
		o.lastSeparator = sep
	}
}

// WithLimit sets the maximum number of entries JoinWithOverflow renders.
// Values below 1 are clamped to 1.
func WithLimit(limit int) Option {
	return func(o *options) {
		o.limit = max(limit, 1)
	}
}

// WithOverflowTemplate sets a literal overflow template. The first %d is replaced with
// the number of hidden items; no pluralization is applied.
func WithOverflowTemplate(tmpl string) Option {
	return func(o *options) {
		o.template = tmpl
		o.templateSet = true
	}
}

// WithOverflowFunc renders the default overflow phrase through fn, typically a
// pluralizing translator. It is ignored when WithOverflowTemplate is also given.
func WithOverflowFunc(fn func(remaining int) string) Option {
	return func(o *options) {
		o.overflowFunc = fn
	}
}
