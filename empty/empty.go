package empty

import (
	"reflect"

	"github.com/google/uuid"
)

// Checker is implemented by types that know whether they are empty.
// IsEmpty must be pure: no side effects, and the same answer for the
// same state.
//
// Example:
//
//	type Point struct{ X, Y int }
//
//	func (p Point) IsEmpty() bool {
//	    return p.X == 0 && p.Y == 0
//	}
type Checker interface {
	IsEmpty() bool
}

// Func is a free-standing emptiness predicate. Use it for types
// that can't carry an IsEmpty method, or when the default notion
// of emptiness for a type isn't the one you want.
type Func[T any] func(T) bool

// Is reports whether value is empty.
//
// The rules, in order:
//   - a value implementing Checker decides for itself, including a value
//     whose IsEmpty has a pointer receiver
//   - strings and byte slices are empty at zero length
//   - integers, floats and complex numbers are empty at zero (NaN is not)
//   - uuid.UUID is empty when it equals uuid.Nil
//   - slices, maps, channels and strings of any named type are empty at
//     zero length
//   - arrays are empty at zero length or when every element is zero, so
//     [32]byte{} is empty just like uuid.Nil
//   - pointers, interfaces and funcs are empty when nil
//   - anything else is empty when it is its zero value
//
// A nil pointer is empty even when its type implements Checker, so
// IsEmpty is never called on a nil receiver. A nil interface is empty.
func Is[T any](value T) bool {
	switch typed := any(value).(type) {
	case nil:
		return true
	case Checker:
		if isNilPointer(typed) {
			return true
		}

		return typed.IsEmpty()
	case string:
		return len(typed) == 0
	case []byte:
		return len(typed) == 0
	case int:
		return typed == 0
	case int8:
		return typed == 0
	case int16:
		return typed == 0
	case int32:
		return typed == 0
	case int64:
		return typed == 0
	case uint:
		return typed == 0
	case uint8:
		return typed == 0
	case uint16:
		return typed == 0
	case uint32:
		return typed == 0
	case uint64:
		return typed == 0
	case uintptr:
		return typed == 0
	case float32:
		return typed == 0
	case float64:
		return typed == 0
	case complex64:
		return typed == 0
	case complex128:
		return typed == 0
	case uuid.UUID:
		return typed == uuid.Nil
	default:
		val := reflect.ValueOf(typed)

		if isEmpty, ok := checkByPointer(val); ok {
			return isEmpty
		}

		return isEmptyReflect(val)
	}
}

var checkerType = reflect.TypeFor[Checker]()

// checkByPointer calls IsEmpty on an addressable copy of val when only
// *T implements Checker.
func checkByPointer(val reflect.Value) (isEmpty, ok bool) {
	if !val.IsValid() || val.Kind() == reflect.Pointer || !reflect.PointerTo(val.Type()).Implements(checkerType) {
		return false, false
	}

	ptr := reflect.New(val.Type())
	ptr.Elem().Set(val)

	checker, ok := ptr.Interface().(Checker)
	if !ok {
		return false, false
	}

	return checker.IsEmpty(), true
}

func isNilPointer(value any) bool {
	val := reflect.ValueOf(value)

	return val.Kind() == reflect.Pointer && val.IsNil()
}

func isEmptyReflect(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}

	switch val.Kind() { //nolint:exhaustive
	case reflect.String, reflect.Slice, reflect.Map, reflect.Chan:
		return val.Len() == 0
	case reflect.Array:
		return val.Len() == 0 || val.IsZero()
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	default:
		return val.IsZero()
	}
}

// Not inverts a predicate.
func Not[T any](isEmpty Func[T]) Func[T] {
	return func(value T) bool {
		return !isEmpty(value)
	}
}

// Any combines predicates so that a value is empty if any of them
// says it is. With no predicates nothing is empty.
//
// Example:
//
//	negativeOrZero := empty.Any[int](empty.Number[int], func(n int) bool { return n < 0 })
func Any[T any](predicates ...Func[T]) Func[T] {
	return func(value T) bool {
		for _, isEmpty := range predicates {
			if isEmpty(value) {
				return true
			}
		}

		return false
	}
}

// Of returns Is as a Func, for call sites that take a predicate.
func Of[T any]() Func[T] {
	return Is[T]
}
