// FILE: lixenwraith/nestval/kind.go
package nestval

import (
	"encoding/json"
	"reflect"
)

// Kind tags the dynamic shape of a value as seen by Lookup.
type Kind int

const (
	// KindOther covers values no other tag describes (channels, maps with non-string keys)
	KindOther Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindMapping
	KindSequence
	KindCallable
	KindNull
	KindAbsent
)

var kindNames = map[Kind]string{
	KindOther:    "unsupported",
	KindString:   "string",
	KindNumber:   "number",
	KindBoolean:  "boolean",
	KindMapping:  "object",
	KindSequence: "array",
	KindCallable: "function",
	KindNull:     "null",
	KindAbsent:   "undefined",
}

// String returns the type name used in error messages.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindOther]
}

// KindOf computes the tag for v. Pointers and interfaces are followed; a nil
// pointer is KindNull. Structs count as mappings.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case missing:
		return KindAbsent
	case json.Number:
		return KindNumber
	case Mapping:
		// A sequence stays a sequence even when it can look keys up
		rv, ok := indirect(reflect.ValueOf(v))
		if !ok {
			return KindNull
		}
		if k := rv.Kind(); k == reflect.Slice || k == reflect.Array {
			return KindSequence
		}
		return KindMapping
	}

	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return KindNull
	}

	switch rv.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindNumber
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindMapping
		}
		return KindOther
	case reflect.Struct:
		return KindMapping
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Func:
		return KindCallable
	default:
		return KindOther
	}
}

// indirect follows pointers and interfaces. The bool is false when a nil is hit.
func indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

// stringValue extracts a string from v, following pointers and named string types.
func stringValue(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if KindOf(v) != KindString {
		return "", false
	}
	rv, _ := indirect(reflect.ValueOf(v))
	return rv.String(), true
}
