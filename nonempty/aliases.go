package nonempty

import "github.com/google/uuid"

type (
	// String is a string of at least one byte.
	String = Value[string]
	// Bytes is a byte slice of at least one byte.
	Bytes = Value[[]byte]

	// Int is a non-zero int.
	Int = Value[int]
	// Int8 is a non-zero int8.
	Int8 = Value[int8]
	// Int16 is a non-zero int16.
	Int16 = Value[int16]
	// Int32 is a non-zero int32.
	Int32 = Value[int32]
	// Int64 is a non-zero int64.
	Int64 = Value[int64]

	// Uint is a non-zero uint.
	Uint = Value[uint]
	// Uint8 is a non-zero uint8.
	Uint8 = Value[uint8]
	// Uint16 is a non-zero uint16.
	Uint16 = Value[uint16]
	// Uint32 is a non-zero uint32.
	Uint32 = Value[uint32]
	// Uint64 is a non-zero uint64.
	Uint64 = Value[uint64]
	// Uintptr is a non-zero uintptr.
	Uintptr = Value[uintptr]

	// Float32 is a non-zero float32. NaN counts as non-zero.
	Float32 = Value[float32]
	// Float64 is a non-zero float64. NaN counts as non-zero.
	Float64 = Value[float64]

	// UUID is any UUID other than uuid.Nil.
	UUID = Value[uuid.UUID]
)

// Slice is a slice with at least one element.
type Slice[E any] = Value[[]E]

// Map is a map with at least one entry.
type Map[K comparable, V any] = Value[map[K]V]
