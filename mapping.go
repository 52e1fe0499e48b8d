// FILE: lixenwraith/nestval/mapping.go
package nestval

import (
	"reflect"
	"strconv"
	"strings"
)

// DefaultTagName is the struct tag consulted when a struct is traversed.
const DefaultTagName = "toml"

// Mapping is a string-keyed container. Get reports whether key is present;
// a present key may hold nil.
type Mapping interface {
	Get(key string) (any, bool)
}

// child looks key up in current. The bool is false when current is not
// indexable or the key is absent.
func child(current any, key string, tagName string) (any, bool) {
	switch c := current.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := c[key]
		return v, ok
	case []any:
		i, ok := sequenceIndex(key, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	case Mapping:
		if rv := reflect.ValueOf(c); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, false
		}
		return c.Get(key)
	}

	rv, ok := indirect(reflect.ValueOf(current))
	if !ok {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(keyType))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true

	case reflect.Struct:
		return structField(rv, key, tagName)

	case reflect.Slice, reflect.Array:
		i, ok := sequenceIndex(key, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}

	return nil, false
}

// structField finds the exported field whose tag name (or Go name when untagged) is key.
// Promoted fields of embedded structs are visible; a nil embedded pointer hides its fields.
func structField(rv reflect.Value, key string, tagName string) (any, bool) {
	for _, field := range reflect.VisibleFields(rv.Type()) {
		if !field.IsExported() {
			continue
		}
		if field.Anonymous && field.Tag.Get(tagName) == "" {
			// Embedded containers are reached through their promoted fields
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				continue
			}
		}
		name, visible := fieldKey(field, tagName)
		if !visible || name != key {
			continue
		}
		fv, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}

// fieldKey returns the traversal key for a struct field. A "-" tag hides the field.
func fieldKey(field reflect.StructField, tagName string) (string, bool) {
	tag := field.Tag.Get(tagName)
	if tag == "-" {
		return "", false
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, true
	}
	return field.Name, true
}

// sequenceIndex parses a canonical non-negative decimal index below length.
// "01", "+1" and "-1" are keys, not indexes.
func sequenceIndex(segment string, length int) (int, bool) {
	i, err := strconv.Atoi(segment)
	if err != nil || i < 0 || i >= length {
		return 0, false
	}
	if strconv.Itoa(i) != segment {
		return 0, false
	}
	return i, true
}
