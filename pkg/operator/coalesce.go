package operator

// Coalesce returns the first value that is not the zero value of T.
// Works like SQL COALESCE.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// When returns `a` if cond is true, otherwise `b`.
func When[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
