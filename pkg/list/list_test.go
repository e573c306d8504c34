package list_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/displayfmt/pkg/list"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		items    []string
		opts     []list.Option
		expected string
	}{
		{
			name:     "nil slice",
			items:    nil,
			expected: "",
		},
		{
			name:     "empty slice",
			items:    []string{},
			expected: "",
		},
		{
			name:     "single item is returned unchanged",
			items:    []string{"A"},
			expected: "A",
		},
		{
			name:     "two items use only the last separator",
			items:    []string{"A", "B"},
			expected: "A and B",
		},
		{
			name:     "two items with custom conjunction",
			items:    []string{"A", "B"},
			opts:     []list.Option{list.WithLastSeparator(" or ")},
			expected: "A or B",
		},
		{
			name:     "two items ignore the separator",
			items:    []string{"A", "B"},
			opts:     []list.Option{list.WithSeparator(" | ")},
			expected: "A and B",
		},
		{
			name:     "three items",
			items:    []string{"A", "B", "C"},
			expected: "A, B and C",
		},
		{
			name:     "four items",
			items:    []string{"A", "B", "C", "D"},
			expected: "A, B, C and D",
		},
		{
			name:     "custom separators",
			items:    []string{"red", "green", "blue"},
			opts:     []list.Option{list.WithSeparator("; "), list.WithLastSeparator(", or ")},
			expected: "red; green, or blue",
		},
		{
			name:     "empty separators are honoured",
			items:    []string{"a", "b", "c"},
			opts:     []list.Option{list.WithSeparator(""), list.WithLastSeparator("")},
			expected: "abc",
		},
		{
			name:     "duplicates are kept in order",
			items:    []string{"x", "x", "y"},
			expected: "x, x and y",
		},
		{
			name:     "empty strings are regular items",
			items:    []string{"", "B"},
			expected: " and B",
		},
		{
			name:     "nil option is skipped",
			items:    []string{"A", "B"},
			opts:     []list.Option{nil},
			expected: "A and B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, list.Join(tt.items, tt.opts...))
		})
	}
}

func TestJoinWithOverflow(t *testing.T) {
	t.Parallel()

	five := []string{"A", "B", "C", "D", "E"}

	tests := []struct {
		name     string
		items    []string
		opts     []list.Option
		expected string
	}{
		{
			name:     "empty input",
			items:    nil,
			expected: "",
		},
		{
			name:     "under the default limit",
			items:    []string{"A", "B"},
			expected: "A and B",
		},
		{
			name:     "exactly at the default limit",
			items:    []string{"A", "B", "C"},
			expected: "A, B and C",
		},
		{
			name:     "default limit with overflow",
			items:    five,
			expected: "A, B and 3 more",
		},
		{
			name:     "limit of two",
			items:    five,
			opts:     []list.Option{list.WithLimit(2)},
			expected: "A and 4 more",
		},
		{
			name:     "limit of four",
			items:    five,
			opts:     []list.Option{list.WithLimit(4)},
			expected: "A, B, C and 2 more",
		},
		{
			name:     "limit of one shows only the overflow entry",
			items:    five,
			opts:     []list.Option{list.WithLimit(1)},
			expected: "5 more",
		},
		{
			name:     "limit of one with a single item",
			items:    []string{"A"},
			opts:     []list.Option{list.WithLimit(1)},
			expected: "A",
		},
		{
			name:     "zero limit is clamped to one",
			items:    []string{"A", "B"},
			opts:     []list.Option{list.WithLimit(0)},
			expected: "2 more",
		},
		{
			name:     "negative limit is clamped to one",
			items:    []string{"A", "B", "C"},
			opts:     []list.Option{list.WithLimit(-4)},
			expected: "3 more",
		},
		{
			name:     "custom template",
			items:    five,
			opts:     []list.Option{list.WithOverflowTemplate("%d others")},
			expected: "A, B and 3 others",
		},
		{
			name:     "custom template is not pluralized",
			items:    []string{"A", "B", "C", "D"},
			opts:     []list.Option{list.WithOverflowTemplate("%d others")},
			expected: "A, B and 2 others",
		},
		{
			name:     "template without placeholder is used verbatim",
			items:    five,
			opts:     []list.Option{list.WithOverflowTemplate("others")},
			expected: "A, B and others",
		},
		{
			name:     "only the first placeholder is substituted",
			items:    five,
			opts:     []list.Option{list.WithOverflowTemplate("%d of %d")},
			expected: "A, B and 3 of %d",
		},
		{
			name:     "empty template",
			items:    five,
			opts:     []list.Option{list.WithOverflowTemplate("")},
			expected: "A, B and ",
		},
		{
			name:  "custom separators apply to the overflow entry",
			items: five,
			opts: []list.Option{
				list.WithSeparator(" / "),
				list.WithLastSeparator(" + "),
			},
			expected: "A / B + 3 more",
		},
		{
			name:  "overflow func renders the default phrase",
			items: five,
			opts: []list.Option{
				list.WithOverflowFunc(func(n int) string { return fmt.Sprintf("%d weitere", n) }),
			},
			expected: "A, B and 3 weitere",
		},
		{
			name:  "explicit template wins over overflow func",
			items: five,
			opts: []list.Option{
				list.WithOverflowFunc(func(n int) string { return "ignored" }),
				list.WithOverflowTemplate("+%d"),
			},
			expected: "A, B and +3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, list.JoinWithOverflow(tt.items, tt.opts...))
		})
	}
}

func TestJoinWithOverflowMatchesJoinWithinLimit(t *testing.T) {
	t.Parallel()

	items := []string{"one", "two", "three", "four", "five", "six"}
	for n := 0; n <= len(items); n++ {
		for limit := n; limit <= len(items)+1; limit++ {
			if limit == 0 {
				continue
			}
			subset := items[:n]
			assert.Equal(t,
				list.Join(subset),
				list.JoinWithOverflow(subset, list.WithLimit(limit)),
				"n=%d limit=%d", n, limit,
			)
		}
	}
}

func TestJoinWithOverflowDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	backing := []string{"A", "B", "C", "D", "E", "F"}
	items := backing[:5]

	result := list.JoinWithOverflow(items, list.WithLimit(3))
	require.Equal(t, "A, B and 3 more", result)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, items)
	assert.Equal(t, "F", backing[5], "spare capacity must not be overwritten")
}

type status int

func (s status) String() string {
	return [...]string{"draft", "published", "archived"}[s]
}

func TestJoinValues(t *testing.T) {
	t.Parallel()

	t.Run("integers", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1, 2 and 3", list.JoinValues([]int{1, 2, 3}))
	})

	t.Run("stringers", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "draft or archived", list.JoinValues(
			[]status{0, 2},
			list.WithLastSeparator(" or "),
		))
	})

	t.Run("mixed values", func(t *testing.T) {
		t.Parallel()
		values := []any{"text", 42, true, errors.New("boom"), 1.5}
		assert.Equal(t, "text, 42, true, boom and 1.5", list.JoinValues(values))
	})

	t.Run("durations use their String method", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1m0s and 2h0m0s", list.JoinValues([]time.Duration{time.Minute, 2 * time.Hour}))
	})

	t.Run("with overflow", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1 and 4 more", list.JoinValuesWithOverflow(
			[]int{1, 2, 3, 4, 5},
			list.WithLimit(2),
		))
	})
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Nil(t, list.Strings[int](nil))
	assert.Equal(t, []string{"1", "2"}, list.Strings([]int{1, 2}))
	assert.Equal(t, []string{"<nil>"}, list.Strings([]any{nil}))
}

func TestSubstitute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3 more", list.Substitute("%d more", 3))
	assert.Equal(t, "more", list.Substitute("more", 3))
	assert.Equal(t, "100% of 7", list.Substitute("100% of %d", 7))
}
