// Package compare defines the equality and ordering capabilities that
// wrapper types delegate to.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface provide their own Equals method, which wrappers
// such as nonempty.Value use in place of ==.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Sortable extends Comparable with a strict ordering. LessThan must be
// irreflexive and transitive, and agree with Equals: if neither a < b
// nor b < a then a.Equals(b).
type Sortable[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Compare orders two Sortable values, returning -1, 0 or +1 in the
// style of cmp.Compare so Sortable types can be handed to slices.SortFunc.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}
