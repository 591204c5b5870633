package nonempty

import (
	"fmt"
	"log/slog"

	"github.com/amp-labs/amp-nonempty/empty"
)

// Value holds a value of type T that was not empty when the Value was made.
// Use From, FromFunc, FromChecker or FromPtr to create one.
type Value[T any] struct {
	value T
	isSet bool
}

var (
	_ empty.Checker  = Value[string]{}
	_ fmt.Stringer   = Value[string]{}
	_ slog.LogValuer = Value[string]{}
)

// From wraps value if empty.Is reports it as non-empty. The second result
// is false, and the Value is the zero Value, when value is empty.
func From[T any](value T) (Value[T], bool) {
	return FromFunc(value, empty.Is[T])
}

// FromFunc wraps value unless isEmpty reports it as empty. A nil isEmpty
// falls back to empty.Is.
//
// Example:
//
//	name, ok := nonempty.FromFunc(input, empty.Blank[string])
func FromFunc[T any](value T, isEmpty empty.Func[T]) (Value[T], bool) {
	if isEmpty == nil {
		isEmpty = empty.Is[T]
	}

	if isEmpty(value) {
		return Value[T]{}, false
	}

	return Value[T]{value: value, isSet: true}, true
}

// FromChecker is From restricted at compile time to types that define
// their own notion of emptiness.
func FromChecker[T empty.Checker](value T) (Value[T], bool) {
	return FromFunc(value, empty.Is[T])
}

// FromPtr wraps the value p points to. A nil pointer is treated as empty.
func FromPtr[T any](p *T) (Value[T], bool) {
	if p == nil {
		return Value[T]{}, false
	}

	return From(*p)
}

// Get returns the wrapped value. The Value itself is unchanged, so Get may
// be called any number of times. On the zero Value, Get returns the zero T.
func (v Value[T]) Get() T { //nolint:ireturn
	return v.value
}

// Take returns the wrapped value and resets v to the zero Value. After Take
// the caller owns the payload; to wrap it again, pass it back through From.
func (v *Value[T]) Take() T { //nolint:ireturn
	out := v.value
	*v = Value[T]{}

	return out
}

// IsEmpty reports whether v is the zero Value. A Value returned by a
// successful From is never empty.
func (v Value[T]) IsEmpty() bool {
	return !v.isSet
}

// IsZero is IsEmpty under the name encoding/json (omitzero) and
// gopkg.in/yaml.v3 (omitempty) look for.
func (v Value[T]) IsZero() bool {
	return !v.isSet
}

// String formats the wrapped value with fmt. The zero Value formats as
// "<empty>".
func (v Value[T]) String() string {
	if !v.isSet {
		return "<empty>"
	}

	return fmt.Sprint(v.value)
}

// LogValue lets slog record the payload instead of the wrapper struct.
func (v Value[T]) LogValue() slog.Value {
	if !v.isSet {
		return slog.Value{}
	}

	return slog.AnyValue(v.value)
}
