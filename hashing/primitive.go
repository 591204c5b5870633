package hashing

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"math"
	"reflect"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned when attempting to hash an unsupported type.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// Primitive writes value into h. Hashable values hash themselves; strings,
// byte slices and UUIDs are written raw; booleans and the built-in numeric
// types are written in a fixed-width big-endian encoding, so int(1) and
// int64(1) hash alike. Named types hash as their underlying kind, so a
// `type label string` hashes like the string. Anything else yields
// ErrUnsupportedType.
func Primitive(h hash.Hash, value any) error { //nolint:cyclop
	var buf [8]byte

	switch typed := value.(type) {
	case Hashable:
		return typed.UpdateHash(h)
	case string:
		return HashableString(typed).UpdateHash(h)
	case []byte:
		return HashableBytes(typed).UpdateHash(h)
	case uuid.UUID:
		return HashableBytes(typed[:]).UpdateHash(h)
	case bool:
		if typed {
			buf[0] = 1
		}

		return write(h, buf[:1])
	case int:
		binary.BigEndian.PutUint64(buf[:], uint64(typed)) //nolint:gosec
	case int8:
		binary.BigEndian.PutUint64(buf[:], uint64(typed)) //nolint:gosec
	case int16:
		binary.BigEndian.PutUint64(buf[:], uint64(typed)) //nolint:gosec
	case int32:
		binary.BigEndian.PutUint64(buf[:], uint64(typed)) //nolint:gosec
	case int64:
		binary.BigEndian.PutUint64(buf[:], uint64(typed)) //nolint:gosec
	case uint:
		binary.BigEndian.PutUint64(buf[:], uint64(typed))
	case uint8:
		binary.BigEndian.PutUint64(buf[:], uint64(typed))
	case uint16:
		binary.BigEndian.PutUint64(buf[:], uint64(typed))
	case uint32:
		binary.BigEndian.PutUint64(buf[:], uint64(typed))
	case uint64:
		binary.BigEndian.PutUint64(buf[:], typed)
	case uintptr:
		binary.BigEndian.PutUint64(buf[:], uint64(typed))
	case float32:
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(float64(typed)))
	case float64:
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(typed))
	default:
		return byKind(h, reflect.ValueOf(value))
	}

	return write(h, buf[:])
}

func byKind(h hash.Hash, val reflect.Value) error {
	var buf [8]byte

	switch val.Kind() { //nolint:exhaustive
	case reflect.String:
		return write(h, []byte(val.String()))
	case reflect.Slice:
		if val.Type().Elem().Kind() != reflect.Uint8 {
			return unsupported(val)
		}

		return write(h, val.Bytes())
	case reflect.Bool:
		if val.Bool() {
			buf[0] = 1
		}

		return write(h, buf[:1])
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.BigEndian.PutUint64(buf[:], uint64(val.Int())) //nolint:gosec
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		binary.BigEndian.PutUint64(buf[:], val.Uint())
	case reflect.Float32, reflect.Float64:
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(val.Float()))
	default:
		return unsupported(val)
	}

	return write(h, buf[:])
}

func unsupported(val reflect.Value) error {
	if !val.IsValid() {
		return fmt.Errorf("%w: <nil>", ErrUnsupportedType)
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedType, val.Type())
}

func write(h hash.Hash, data []byte) error {
	_, err := h.Write(data)

	return err
}
