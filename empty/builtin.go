package empty

import (
	"github.com/google/uuid"
)

// Numeric is the set of built-in numeric types, including named types
// whose underlying type is numeric.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// String reports whether s has zero length.
func String[S ~string](s S) bool {
	return len(s) == 0
}

// Bytes reports whether b has zero length. A nil slice is empty.
func Bytes(b []byte) bool {
	return len(b) == 0
}

// Slice reports whether s has zero length. A nil slice is empty.
func Slice[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Map reports whether m has no entries. A nil map is empty.
func Map[M ~map[K]V, K comparable, V any](m M) bool {
	return len(m) == 0
}

// Chan reports whether c has no buffered elements. A nil channel is empty.
func Chan[C ~chan E, E any](c C) bool {
	return len(c) == 0
}

// Number reports whether n is zero. NaN is not empty.
func Number[N Numeric](n N) bool {
	return n == 0
}

// Zero reports whether value equals the zero value of its type.
func Zero[T comparable](value T) bool {
	var zeroVal T

	return value == zeroVal
}

// Nil reports whether p is nil. It says nothing about what p points to.
func Nil[T any](p *T) bool {
	return p == nil
}

// UUID reports whether id is uuid.Nil.
func UUID(id uuid.UUID) bool {
	return id == uuid.Nil
}
