package nonempty

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"facette.io/natsort"
	"github.com/amp-labs/amp-nonempty/compare"
)

var _ compare.Sortable[Value[string]] = Value[string]{}

// Equals reports whether v and other wrap equal values. Two zero Values are
// equal; a zero Value never equals a constructed one. The payloads are
// compared with their own Equals method if T implements compare.Comparable,
// and with reflect.DeepEqual otherwise.
func (v Value[T]) Equals(other Value[T]) bool {
	if v.isSet != other.isSet {
		return false
	}

	if !v.isSet {
		return true
	}

	if eq, ok := any(v.value).(compare.Comparable[T]); ok {
		return eq.Equals(other.value)
	}

	return reflect.DeepEqual(v.value, other.value)
}

// LessThan orders v before other. The zero Value sorts first. Payloads are
// ordered by their LessThan method if T implements compare.Sortable, and
// structurally by kind otherwise: numbers and strings in their natural
// order, false before true, arrays and slices lexicographically, structs
// field by field, nil pointers and interfaces first and then by what they
// point to, maps by their printed form, funcs and channels by identity.
// The order is total, so two payloads neither of which is less than the
// other are Equals (NaN aside).
func (v Value[T]) LessThan(other Value[T]) bool {
	if !v.isSet || !other.isSet {
		return !v.isSet && other.isSet
	}

	if sortable, ok := any(v.value).(compare.Sortable[T]); ok {
		return sortable.LessThan(other.value)
	}

	return compareByKind(reflect.ValueOf(v.value), reflect.ValueOf(other.value), 0) < 0
}

// maxOrderDepth bounds recursion through cyclic payloads.
const maxOrderDepth = 64

func compareByKind(a, b reflect.Value, depth int) int { //nolint:cyclop,funlen
	switch {
	case !a.IsValid() || !b.IsValid():
		return cmp.Compare(rank(a.IsValid()), rank(b.IsValid()))
	case a.Type() != b.Type():
		return cmp.Compare(a.Type().String(), b.Type().String())
	case depth > maxOrderDepth:
		return 0
	}

	switch a.Kind() { //nolint:exhaustive
	case reflect.Bool:
		return cmp.Compare(rank(a.Bool()), rank(b.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		if c := cmp.Compare(real(a.Complex()), real(b.Complex())); c != 0 {
			return c
		}

		return cmp.Compare(imag(a.Complex()), imag(b.Complex()))
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Slice:
		if a.Len() == 0 && b.Len() == 0 {
			return cmp.Compare(rank(!a.IsNil()), rank(!b.IsNil()))
		}

		return compareElements(a, b, depth)
	case reflect.Array:
		return compareElements(a, b, depth)
	case reflect.Struct:
		for i := range a.NumField() {
			if c := compareByKind(a.Field(i), b.Field(i), depth+1); c != 0 {
				return c
			}
		}

		return 0
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return cmp.Compare(rank(!a.IsNil()), rank(!b.IsNil()))
		}

		if a.Kind() == reflect.Pointer && a.Pointer() == b.Pointer() {
			return 0
		}

		return compareByKind(a.Elem(), b.Elem(), depth+1)
	case reflect.Map:
		if a.IsNil() || b.IsNil() {
			return cmp.Compare(rank(!a.IsNil()), rank(!b.IsNil()))
		}

		if c := cmp.Compare(a.Len(), b.Len()); c != 0 {
			return c
		}

		// fmt prints maps with sorted keys.
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	default:
		return cmp.Compare(a.Pointer(), b.Pointer())
	}
}

func compareElements(a, b reflect.Value, depth int) int {
	for i := range min(a.Len(), b.Len()) {
		if c := compareByKind(a.Index(i), b.Index(i), depth+1); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.Len(), b.Len())
}

func rank(b bool) int {
	if b {
		return 1
	}

	return 0
}

// Equal reports whether a and b wrap the same comparable value. It is the
// same as a == b, spelled out for readability.
func Equal[T comparable](a, b Value[T]) bool {
	return a == b
}

// Compare orders a and b by their payloads using cmp.Compare. The zero
// Value sorts first.
func Compare[T cmp.Ordered](a, b Value[T]) int {
	switch {
	case !a.isSet && !b.isSet:
		return 0
	case !a.isSet:
		return -1
	case !b.isSet:
		return 1
	default:
		return cmp.Compare(a.value, b.value)
	}
}

// Sort sorts values in ascending payload order.
func Sort[T cmp.Ordered](values []Value[T]) {
	slices.SortFunc(values, Compare[T])
}

// SortNatural sorts strings in natural order, so that "file2" comes
// before "file10".
func SortNatural(values []String) {
	slices.SortStableFunc(values, func(a, b String) int {
		switch {
		case !a.isSet || !b.isSet:
			return Compare(a, b)
		case natsort.Compare(a.value, b.value):
			return -1
		case natsort.Compare(b.value, a.value):
			return 1
		default:
			return 0
		}
	})
}
