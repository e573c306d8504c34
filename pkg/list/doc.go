// Package list joins display items into natural-language conjunction lists such as
// "A, B and C", optionally collapsing a long tail into an overflow summary like
// "A, B and 3 more".
//
// All functions are pure: they never mutate the caller's slice, hold no state and are
// safe for concurrent use.
//
// # Usage
//
//	list.Join([]string{"Go", "Rust", "Zig"})
//	// "Go, Rust and Zig"
//
//	list.Join([]string{"tea", "coffee"}, list.WithLastSeparator(" or "))
//	// "tea or coffee"
//
//	list.JoinWithOverflow([]string{"A", "B", "C", "D", "E"}, list.WithLimit(3))
//	// "A, B and 3 more"
//
//	list.JoinWithOverflow(tags, list.WithOverflowTemplate("%d others"))
//	// "alpha, beta and 7 others"
//
// # Overflow
//
// When the number of items exceeds the limit, the first limit-1 items are shown and the
// last slot is taken by the overflow entry, which reports how many items were left out.
// The default phrase is "%d more". Callers that need a pluralized or translated phrase
// supply it with WithOverflowFunc; a template set with WithOverflowTemplate always takes
// precedence and is substituted verbatim.
//
// Limits below 1 are treated as 1, so the output degrades to the overflow entry alone.
package list
