// Package cache provides a small generic LRU cache used to keep per-locale formatters
// around without unbounded growth.
//
//	formatters := cache.New[string, *display.Formatter](16)
//	f, err := formatters.GetOrLoad("de", func() (*display.Formatter, error) {
//		return buildGerman()
//	})
//
// All methods are safe for concurrent use. Get, Put and Remove are O(1).
package cache
