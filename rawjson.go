// FILE: lixenwraith/nestval/rawjson.go
package nestval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/buger/jsonparser"
)

// LookupJSON follows path through an undecoded JSON document without
// unmarshalling the parts it skips. Object members are keyed by segment,
// array elements by canonical index segment. The root must be a JSON object.
//
// As with Lookup, an unresolvable path returns Missing and a nil error.
// When an object repeats a key the first occurrence wins; ParseDocument
// keeps the last one, so the two can differ on such documents.
// The leaf is decoded to string, json.Number, bool, nil, map[string]any or []any.
func LookupJSON(data []byte, path, separator string) (any, error) {
	_, rootType, _, err := jsonparser.Get(data)
	if err != nil {
		if rootType == jsonparser.NotExist && len(bytes.TrimSpace(data)) == 0 {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("malformed JSON document: %w", err)
	}
	if rootType != jsonparser.Object {
		return nil, rootMismatch(jsonKind(rootType))
	}

	current, currentType := data, rootType
	for _, segment := range strings.Split(path, separator) {
		key := segment
		switch currentType {
		case jsonparser.Object:
		case jsonparser.Array:
			if _, ok := sequenceIndex(segment, math.MaxInt); !ok {
				return Missing, nil
			}
			key = "[" + segment + "]"
		default:
			return Missing, nil
		}

		value, valueType, _, err := jsonparser.Get(current, key)
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return Missing, nil
		}
		if err != nil {
			return nil, fmt.Errorf("malformed JSON at segment %q: %w", segment, err)
		}
		current, currentType = value, valueType
	}

	return decodeJSONValue(current, currentType)
}

func decodeJSONValue(value []byte, valueType jsonparser.ValueType) (any, error) {
	switch valueType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, fmt.Errorf("malformed JSON string: %w", err)
		}
		return s, nil
	case jsonparser.Number:
		return json.Number(value), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, fmt.Errorf("malformed JSON boolean: %w", err)
		}
		return b, nil
	case jsonparser.Null:
		return nil, nil
	case jsonparser.Object, jsonparser.Array:
		decoder := json.NewDecoder(bytes.NewReader(value))
		decoder.UseNumber()
		var v any
		if err := decoder.Decode(&v); err != nil {
			return nil, fmt.Errorf("malformed JSON %s: %w", jsonKind(valueType), err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value type %s", valueType)
	}
}

func jsonKind(t jsonparser.ValueType) Kind {
	switch t {
	case jsonparser.String:
		return KindString
	case jsonparser.Number:
		return KindNumber
	case jsonparser.Boolean:
		return KindBoolean
	case jsonparser.Object:
		return KindMapping
	case jsonparser.Array:
		return KindSequence
	case jsonparser.Null:
		return KindNull
	default:
		return KindOther
	}
}
