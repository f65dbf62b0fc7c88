// Package equalutil provides small generic helpers for the hand-written
// structural equality functions in package sdl.
package equalutil

// EqualPtr compares two pointers with eq, treating two nils as equal and a
// single nil as unequal.
func EqualPtr[T any](a, b *T, eq func(a, b *T) bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return eq(a, b)
}

// EqualSlice reports whether a and b have the same length and eq holds for
// every pair of elements at the same index. Order is significant.
func EqualSlice[S ~[]T, T any](a, b S, eq func(a, b T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}
