package nonempty

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// wrapper is implemented by every Value[T], whatever T is.
type wrapper interface {
	IsZero() bool
	wrapped()
}

func (Value[T]) wrapped() {}

var wrapperType = reflect.TypeFor[wrapper]()

// Validate reports every zero Value field in the struct v points to, as
// an error wrapping ErrEmpty per field joined with errors.Join. Nested
// structs are checked too, with dotted field names.
//
// Decoders leave a field untouched when its key is missing, and yaml.v3
// never calls UnmarshalYAML for a null node (`name:` or `name: ~`), so
// the hooks alone can't catch those. Call Validate after decoding:
//
//	var cfg Config
//	if err := yaml.Unmarshal(data, &cfg); err != nil {
//	    return err
//	}
//
//	if err := nonempty.Validate(&cfg); err != nil {
//	    return err
//	}
//
// A field tagged omitempty or omitzero in its json or yaml tag is
// optional and skipped. So are unexported fields and nil pointers.
func Validate(v any) error {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil
		}

		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return nil
	}

	return errors.Join(validateStruct(val, "")...)
}

func validateStruct(val reflect.Value, prefix string) []error {
	var errs []error

	for i := range val.NumField() {
		field := val.Type().Field(i)
		if !field.IsExported() || optional(field.Tag) {
			continue
		}

		name := prefix + field.Name

		fieldVal := val.Field(i)
		for fieldVal.Kind() == reflect.Pointer && !fieldVal.IsNil() {
			fieldVal = fieldVal.Elem()
		}

		switch {
		case fieldVal.Kind() == reflect.Pointer:
			// A nil pointer field is optional.
			continue
		case fieldVal.Type().Implements(wrapperType):
			if w, ok := fieldVal.Interface().(wrapper); ok && w.IsZero() {
				errs = append(errs, fmt.Errorf("%w: field %s is not set", ErrEmpty, name))
			}
		case fieldVal.Kind() == reflect.Struct:
			errs = append(errs, validateStruct(fieldVal, name+".")...)
		}
	}

	return errs
}

func optional(tag reflect.StructTag) bool {
	for _, key := range []string{"json", "yaml"} {
		value, ok := tag.Lookup(key)
		if !ok {
			continue
		}

		_, opts, _ := strings.Cut(value, ",")
		for opt := range strings.SplitSeq(opts, ",") {
			if opt == "omitempty" || opt == "omitzero" {
				return true
			}
		}
	}

	return false
}
