// FILE: lixenwraith/nestval/resolver.go
package nestval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-logr/logr"
)

// DefaultSeparator splits resolver paths unless another one is configured.
const DefaultSeparator = "."

// Resolver answers path queries against one bound root.
// It is immutable once built and safe for concurrent use.
type Resolver struct {
	root      any
	separator string
	hasSep    bool
	tagName   string
	logger    logr.Logger
}

// Root returns the bound root.
func (r *Resolver) Root() any {
	return r.root
}

// Separator returns the bound separator; false means paths are not split.
func (r *Resolver) Separator() (string, bool) {
	return r.separator, r.hasSep
}

// Get follows path from the bound root.
// The second return value is false when the path cannot be followed to completion.
func (r *Resolver) Get(path string) (any, bool) {
	return r.walk(r.root, path, splitPath(path, r.separator, r.hasSep))
}

// Has reports whether path can be followed to completion.
func (r *Resolver) Has(path string) bool {
	_, found := r.Get(path)
	return found
}

// Validate checks that every required path resolves.
// All missing paths are reported together.
func (r *Resolver) Validate(required ...string) error {
	var missingPaths []string
	for _, path := range required {
		if !r.Has(path) {
			missingPaths = append(missingPaths, path)
		}
	}

	if len(missingPaths) > 0 {
		return fmt.Errorf("%w: %s", ErrPathNotFound, strings.Join(missingPaths, ", "))
	}
	return nil
}

// Flatten returns every leaf of the bound root keyed by its full path.
// Only map[string]any levels are descended.
func (r *Resolver) Flatten() map[string]any {
	root, ok := r.root.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	sep := r.separator
	if !r.hasSep {
		sep = DefaultSeparator
	}
	return Flatten(root, sep)
}

// Paths returns the flattened leaf paths in sorted order.
func (r *Resolver) Paths() []string {
	flat := r.Flatten()
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
