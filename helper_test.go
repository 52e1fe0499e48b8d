// FILE: lixenwraith/nestval/helper_test.go
package nestval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1},
			"d": []any{1, 2},
		},
		"e":     "leaf",
		"empty": map[string]any{},
	}

	assert.Equal(t, map[string]any{
		"a::b::c": 1,
		"a::d":    []any{1, 2},
		"e":       "leaf",
	}, Flatten(nested, "::"))

	assert.Empty(t, Flatten(map[string]any{}, "."))
}

func TestSet(t *testing.T) {
	t.Run("CreatesIntermediates", func(t *testing.T) {
		root := map[string]any{}
		Set(root, "a/b/c", "/", 1)
		Set(root, "a/b/d", "/", nil)
		Set(root, "top", "/", "v")

		assert.Equal(t, map[string]any{
			"a":   map[string]any{"b": map[string]any{"c": 1, "d": nil}},
			"top": "v",
		}, root)
	})

	t.Run("ReplacesNonMapIntermediate", func(t *testing.T) {
		root := map[string]any{"a": "scalar"}
		Set(root, "a.b", ".", true)

		value, err := Lookup("a.b", ".", root)
		assert.NoError(t, err)
		assert.Equal(t, true, value)
	})

	t.Run("NilRootPanics", func(t *testing.T) {
		assert.Panics(t, func() { Set(nil, "a.b", ".", 1) })
	})

	t.Run("OverwritesLeaf", func(t *testing.T) {
		root := map[string]any{"a": map[string]any{"b": 1}}
		Set(root, "a.b", ".", map[string]any{"c": 2})

		value, err := Lookup("a.b.c", ".", root)
		assert.NoError(t, err)
		assert.Equal(t, 2, value)
	})
}
