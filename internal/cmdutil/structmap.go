package cmdutil

import (
	"encoding"
	"reflect"
	"strings"
	"unicode"
)

// StructToMapOptions configures StructToMap behavior.
type StructToMapOptions struct {
	// UseJSONTags keys fields by their json tag name when one is set.
	// Fields tagged json:"-" are left out.
	UseJSONTags bool
}

// StructToMap converts a struct into a map of column values keyed by
// snake_case field names. Values implementing encoding.TextMarshaler are
// stored as their text, so enums land in the database as readable tokens,
// and integers narrower than uint64 are widened to int64.
func StructToMap[T any](value T, opts StructToMapOptions) map[string]any {
	result := make(map[string]any)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return result
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return result
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, ok := columnName(field, opts)
		if !ok {
			continue
		}
		result[name] = columnValue(v.Field(i))
	}
	return result
}

// columnName returns the key for field, or false when the field is skipped.
func columnName(field reflect.StructField, opts StructToMapOptions) (string, bool) {
	if opts.UseJSONTags {
		tag := field.Tag.Get("json")
		if tag == "-" {
			return "", false
		}
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name, true
		}
	}
	return toSnakeCase(field.Name), true
}

func columnValue(value reflect.Value) any {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	if m, ok := value.Interface().(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return nil
		}
		return string(text)
	}

	// SQLite stores every integer as int64
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int64(value.Uint())
	}

	return value.Interface()
}

func toSnakeCase(input string) string {
	runes := []rune(input)
	var builder strings.Builder
	builder.Grow(len(runes) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// Break before an upper case letter after a lower case one ("yearOf"),
			// and at the end of an acronym ("ISBNCode" -> "isbn_code").
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				builder.WriteRune('_')
			}
		}
		builder.WriteRune(unicode.ToLower(r))
	}

	return builder.String()
}
