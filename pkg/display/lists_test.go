package display_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/displayfmt/pkg/display"
	"github.com/dmitrymomot/displayfmt/pkg/list"
)

func TestList(t *testing.T) {
	t.Parallel()

	f := display.New()

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "strings", input: []string{"A", "B", "C"}, expected: "A, B and C"},
		{name: "two", input: []string{"A", "B"}, expected: "A and B"},
		{name: "single string", input: "solo", expected: "solo"},
		{name: "ints", input: []int{1, 2, 3}, expected: "1, 2 and 3"},
		{name: "array", input: [2]string{"x", "y"}, expected: "x and y"},
		{name: "mixed", input: []any{"a", 1, errors.New("boom")}, expected: "a, 1 and boom"},
		{name: "items are escaped", input: []string{"<b>", "R&D"}, expected: "&lt;b&gt; and R&amp;D"},
		{name: "empty slice", input: []string{}, expected: "—"},
		{name: "blank string", input: "", expected: "—"},
		{name: "nil", input: nil, expected: "—"},
		{name: "scalar", input: 42, expected: "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, f.List(tt.input))
		})
	}
}

func TestListWithOverflow(t *testing.T) {
	t.Parallel()

	five := []string{"A", "B", "C", "D", "E"}
	f := display.New()

	tests := []struct {
		name     string
		input    any
		limit    int
		expected string
	}{
		{name: "within limit", input: []string{"A", "B"}, limit: 3, expected: "A and B"},
		{name: "overflow", input: five, limit: 3, expected: "A, B and 3 more"},
		{name: "limit of four", input: five, limit: 4, expected: "A, B, C and 2 more"},
		{name: "limit of one", input: five, limit: 1, expected: "5 more"},
		{name: "non-positive limit uses the default", input: five, limit: 0, expected: "A, B and 3 more"},
		{name: "negative limit is not clamped to one", input: five, limit: -2, expected: "A, B and 3 more"},
		{name: "empty", input: []string{}, limit: 3, expected: "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, f.ListWithOverflow(tt.input, tt.limit))
		})
	}
}

func TestListOptions(t *testing.T) {
	t.Parallel()

	five := []string{"A", "B", "C", "D", "E"}

	t.Run("separators", func(t *testing.T) {
		t.Parallel()
		f := display.New(display.WithListOptions(list.WithSeparator("; "), list.WithLastSeparator(" or ")))
		assert.Equal(t, "A; B; C; D or E", f.List(five))
	})

	t.Run("custom template is used verbatim", func(t *testing.T) {
		t.Parallel()
		f := display.New(display.WithListOptions(list.WithOverflowTemplate("%d others")))
		assert.Equal(t, "A, B, C and 2 others", f.ListWithOverflow(five, 4))
	})

	t.Run("configured limit", func(t *testing.T) {
		t.Parallel()
		f := display.New(display.WithListOptions(list.WithLimit(2)))
		assert.Equal(t, "A and 4 more", f.ListWithOverflow(five, 0))
		assert.Equal(t, "A, B and 3 more", f.ListWithOverflow(five, 3))
	})

	t.Run("overflow phrase goes through the pluralizer", func(t *testing.T) {
		t.Parallel()
		p := &recordingPluralizer{}
		f := display.New(display.WithPluralizer(p))
		assert.Equal(t, "A, B and plural", f.ListWithOverflow(five, 3))
		assert.Equal(t, "%{count} more", p.singular)
	})
}
