package nonempty

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amp-labs/amp-nonempty/empty"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when decoding produces an empty value.
var ErrEmpty = errors.New("nonempty: value is empty")

// MarshalJSON implements json.Marshaler.
// The payload is marshaled directly; the zero Value is marshaled as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.isSet {
		return []byte("null"), nil
	}

	return json.Marshal(v.value)
}

// UnmarshalJSON implements json.Unmarshaler. The decoded payload must be
// non-empty according to empty.Is; null and empty payloads return an
// error wrapping ErrEmpty and leave v unchanged.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: got null for %T", ErrEmpty, v.value)
	}

	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	return v.set(decoded)
}

// MarshalYAML implements yaml.Marshaler.
func (v Value[T]) MarshalYAML() (any, error) {
	if !v.isSet {
		return nil, nil //nolint:nilnil
	}

	return v.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, with the same validation as
// UnmarshalJSON. yaml.v3 does not call it for null nodes, so a key with no
// value leaves the field zero; use Validate after decoding to reject those:
//
//	type Config struct {
//	    ServiceName nonempty.String `yaml:"serviceName"`
//	}
func (v *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return fmt.Errorf("%w: got null for %T", ErrEmpty, v.value)
	}

	var decoded T
	if err := node.Decode(&decoded); err != nil {
		return err
	}

	return v.set(decoded)
}

func (v *Value[T]) set(decoded T) error {
	if empty.Is(decoded) {
		return fmt.Errorf("%w: %T", ErrEmpty, decoded)
	}

	v.value = decoded
	v.isSet = true

	return nil
}
