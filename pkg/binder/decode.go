package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// RestTag marks a map[string]string field that receives unclaimed keys.
const RestTag = "*"

// Decode binds values to the struct pointed to by v using the given tag name.
// Untagged embedded structs are flattened into the parent.
func Decode(v any, tagName string, values map[string][]string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrInvalidTarget
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	claimed := make(map[string]bool, rv.NumField())
	rest, err := decodeStruct(rv, tagName, values, claimed)
	if err != nil {
		return err
	}

	if rest.IsValid() {
		m := make(map[string]string)
		for k, vals := range values {
			if claimed[k] || len(vals) == 0 {
				continue
			}
			m[k] = vals[0]
		}
		rest.Set(reflect.ValueOf(m))
	}

	return nil
}

// decodeStruct fills the fields of rv and returns the rest field, if any.
func decodeStruct(rv reflect.Value, tagName string, values map[string][]string, claimed map[string]bool) (reflect.Value, error) {
	rt := rv.Type()
	var rest reflect.Value

	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if fieldType.Anonymous && fieldType.Type.Kind() == reflect.Struct && fieldType.Tag.Get(tagName) == "" {
			embedded, err := decodeStruct(field, tagName, values, claimed)
			if err != nil {
				return reflect.Value{}, err
			}
			if !rest.IsValid() {
				rest = embedded
			}
			continue
		}

		if !field.CanSet() {
			continue
		}

		paramName, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}
		if paramName == RestTag {
			if fieldType.Type == reflect.TypeOf(map[string]string(nil)) {
				rest = field
			}
			continue
		}
		claimed[paramName] = true

		fieldValues, exists := values[paramName]
		if !exists || len(fieldValues) == 0 {
			continue
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return reflect.Value{}, &FieldError{Key: paramName, Value: fieldValues[0], Err: err}
		}
	}

	return rest, nil
}

// parseFieldTag returns the parameter name for a struct field and whether to skip it.
func parseFieldTag(field reflect.StructField, tagName string) (paramName string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	name, _, _ := strings.Cut(tag, ",")
	return name, name == ""
}

// setFieldValue sets the field value from string values.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if fieldType.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values)
	}

	if len(values) == 0 {
		return nil
	}
	value := values[0]

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(strings.TrimSpace(value), fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

// ParseBool is lenient about HTML checkbox values.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "on", "yes", "1", "t":
		return true, nil
	case "false", "off", "no", "0", "f", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q", value)
	}
}

func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	elemType := fieldType.Elem()
	slice := reflect.MakeSlice(fieldType, len(values), len(values))

	for i, value := range values {
		if err := setFieldValue(slice.Index(i), elemType, []string{value}); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}
