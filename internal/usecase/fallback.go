package usecase

// withFallback runs primary and, if it fails, returns fallback(err) instead.
// The bool reports whether the fallback value was used.
func withFallback[T any](primary func() (T, error), fallback func(error) T) (T, bool) {
	v, err := primary()
	if err == nil {
		return v, false
	}
	return fallback(err), true
}
