package util

// Contains reports whether slice contains val.
func Contains[T comparable](slice []T, val T) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}

// Filter returns the elements of slice for which keep returns true.
func Filter[T any](slice []T, keep func(T) bool) []T {
	out := make([]T, 0, len(slice))
	for _, s := range slice {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// Map applies fn to every element of slice.
func Map[T, R any](slice []T, fn func(T) R) []R {
	out := make([]R, len(slice))
	for i, s := range slice {
		out[i] = fn(s)
	}
	return out
}

// Unique returns slice with duplicates removed, preserving first-seen order.
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]bool, len(slice))
	out := make([]T, 0, len(slice))
	for _, s := range slice {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
