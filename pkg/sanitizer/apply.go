package sanitizer

// Apply passes value through each transform in turn. Nil transforms are skipped.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		if fn != nil {
			value = fn(value)
		}
	}
	return value
}

// Compose freezes transforms into a single function, as used for the display text
// pipeline. Later changes to the caller's slice do not affect the result.
func Compose[T any](transforms ...func(T) T) func(T) T {
	chain := make([]func(T) T, 0, len(transforms))
	for _, fn := range transforms {
		if fn != nil {
			chain = append(chain, fn)
		}
	}
	return func(value T) T {
		for _, fn := range chain {
			value = fn(value)
		}
		return value
	}
}
