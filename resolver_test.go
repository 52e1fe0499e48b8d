// FILE: lixenwraith/nestval/resolver_test.go
package nestval

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTypeConversion tests the typed getters
func TestTypeConversion(t *testing.T) {
	r := NewBuilder().WithRoot(map[string]any{
		"str":      "hello",
		"intStr":   "0x1F",
		"floatStr": "2.5",
		"boolStr":  "true",
		"int":      42,
		"uint":     uint16(7),
		"bigUint":  ^uint64(0),
		"float":    3.9,
		"bool":     true,
		"null":     nil,
		"bytes":    []byte("raw"),
		"number":   json.Number("12"),
		"list":     []any{1, 2},
	}).MustBuild()

	t.Run("String", func(t *testing.T) {
		tests := map[string]string{
			"str":    "hello",
			"int":    "42",
			"uint":   "7",
			"float":  "3.9",
			"bool":   "true",
			"null":   "",
			"bytes":  "raw",
			"number": "12",
		}
		for path, expected := range tests {
			val, err := r.String(path)
			require.NoError(t, err, path)
			assert.Equal(t, expected, val, path)
		}

		_, err := r.String("list")
		assert.Error(t, err)
	})

	t.Run("Int64", func(t *testing.T) {
		tests := map[string]int64{
			"int":      42,
			"uint":     7,
			"float":    3,
			"intStr":   31,
			"floatStr": 2,
			"bool":     1,
			"number":   12,
		}
		for path, expected := range tests {
			val, err := r.Int64(path)
			require.NoError(t, err, path)
			assert.Equal(t, expected, val, path)
		}

		_, err := r.Int64("bigUint")
		assert.ErrorContains(t, err, "overflow")
		_, err = r.Int64("str")
		assert.Error(t, err)
		_, err = r.Int64("null")
		assert.ErrorContains(t, err, "is null")
	})

	t.Run("Bool", func(t *testing.T) {
		tests := map[string]bool{
			"bool":    true,
			"boolStr": true,
			"int":     true,
			"float":   true,
		}
		for path, expected := range tests {
			val, err := r.Bool(path)
			require.NoError(t, err, path)
			assert.Equal(t, expected, val, path)
		}

		_, err := r.Bool("str")
		assert.Error(t, err)
	})

	t.Run("Float64", func(t *testing.T) {
		tests := map[string]float64{
			"float":    3.9,
			"int":      42,
			"floatStr": 2.5,
			"number":   12,
			"bool":     1,
		}
		for path, expected := range tests {
			val, err := r.Float64(path)
			require.NoError(t, err, path)
			assert.Equal(t, expected, val, path)
		}

		_, err := r.Float64("list")
		assert.Error(t, err)
	})

	t.Run("MissingPath", func(t *testing.T) {
		_, err := r.String("absent")
		assert.ErrorIs(t, err, ErrPathNotFound)
		_, err = r.Int64("absent.deeper")
		assert.ErrorIs(t, err, ErrPathNotFound)
		_, err = r.Bool("absent")
		assert.ErrorIs(t, err, ErrPathNotFound)
		_, err = r.Float64("absent")
		assert.ErrorIs(t, err, ErrPathNotFound)
	})
}

// TestResolverQueries tests Has, Validate, Flatten and Paths
func TestResolverQueries(t *testing.T) {
	root := map[string]any{
		"server": map[string]any{
			"host": "localhost",
			"tls":  map[string]any{"cert": "/cert.pem"},
		},
		"debug": false,
		"empty": nil,
	}

	r := NewBuilder().WithRoot(root).WithSeparator("/").MustBuild()

	assert.True(t, r.Has("server/tls/cert"))
	assert.True(t, r.Has("empty"))
	assert.False(t, r.Has("server/port"))
	assert.Equal(t, root, r.Root())

	err := r.Validate("server/host", "server/port", "database")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathNotFound)
	assert.Equal(t, "path not found: server/port, database", err.Error())
	assert.NoError(t, r.Validate("debug", "empty"))

	assert.Equal(t, map[string]any{
		"server/host":     "localhost",
		"server/tls/cert": "/cert.pem",
		"debug":           false,
		"empty":           nil,
	}, r.Flatten())

	assert.Equal(t, []string{"debug", "empty", "server/host", "server/tls/cert"}, r.Paths())

	t.Run("FlattenWithoutSeparator", func(t *testing.T) {
		r := NewBuilder().WithRoot(root).WithoutSeparator().MustBuild()
		assert.Contains(t, r.Flatten(), "server.tls.cert")
	})

	t.Run("FlattenStructRoot", func(t *testing.T) {
		r := NewBuilder().WithRoot(struct{ A int }{A: 1}).MustBuild()
		assert.Empty(t, r.Flatten())
		assert.True(t, r.Has("A"))
	})
}

// TestResolverLookup tests the resolver-scoped Lookup with a custom tag name
func TestResolverLookup(t *testing.T) {
	type Item struct {
		Name string `json:"name" toml:"title"`
	}

	r := NewBuilder().WithRoot(map[string]any{}).WithTagName("json").MustBuild()

	value, err := r.Lookup("item/name", "/", map[string]any{"item": Item{Name: "x"}})
	require.NoError(t, err)
	assert.Equal(t, "x", value)

	value, err = Lookup("item/title", "/", map[string]any{"item": Item{Name: "x"}})
	require.NoError(t, err)
	assert.Equal(t, "x", value)

	_, err = r.Lookup(7, "/", map[string]any{})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

// TestConcurrentAccess tests concurrent reads from a shared resolver
func TestConcurrentAccess(t *testing.T) {
	root := make(map[string]any)
	for i := 0; i < 50; i++ {
		Set(root, fmt.Sprintf("group%d.item%d.value", i%5, i), ".", i)
	}
	r := NewBuilder().WithRoot(root).MustBuild()

	var wg sync.WaitGroup
	errs := make(chan error, 500)

	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				path := fmt.Sprintf("group%d.item%d.value", i%5, i)
				v, err := r.Int64(path)
				if err != nil {
					errs <- err
					continue
				}
				if v != int64(i) {
					errs <- fmt.Errorf("goroutine %d: %s = %d", g, path, v)
				}
				if _, err := Lookup(path, ".", root); err != nil {
					errs <- err
				}
			}
		}(g)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
