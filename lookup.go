// FILE: lixenwraith/nestval/lookup.go
package nestval

import (
	"strings"

	"github.com/go-logr/logr"
)

type missing struct{}

// String renders the marker the way it is reported in messages.
func (missing) String() string { return "undefined" }

// Missing is returned when a path cannot be followed to completion.
// Stored as a value inside a mapping it reads as an absent key.
var Missing any = missing{}

// IsMissing reports whether v is the Missing marker.
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

var defaultResolver = &Resolver{
	tagName: DefaultTagName,
	logger:  logr.Discard(),
}

// Lookup returns the value found by following path through root, using
// separator to split path into keys. separator may be nil, in which case
// the whole path is one key.
//
// A path that cannot be followed to completion returns Missing and a nil
// error. A nil stored at the final key is returned as nil. Errors are
// returned only for arguments of the wrong type, as *TypeMismatchError:
// path must be a string, separator a string or nil, and root a mapping
// that is not a sequence.
func Lookup(path, separator, root any) (any, error) {
	return defaultResolver.Lookup(path, separator, root)
}

// Lookup is the package-level Lookup using this resolver's tag name and logger.
// The bound root and separator are not consulted.
func (r *Resolver) Lookup(path, separator, root any) (any, error) {
	p, sep, hasSep, err := validateArgs(path, separator, root)
	if err != nil {
		return nil, err
	}
	value, _ := r.walk(root, p, splitPath(p, sep, hasSep))
	return value, nil
}

// validateArgs checks the arguments in the order their errors are reported.
func validateArgs(path, separator, root any) (p string, sep string, hasSep bool, err error) {
	p, ok := stringValue(path)
	if !ok {
		return "", "", false, pathMismatch(KindOf(path))
	}

	sep, hasSep, err = validateSeparator(separator)
	if err != nil {
		return "", "", false, err
	}

	if err := validateRoot(root); err != nil {
		return "", "", false, err
	}
	return p, sep, hasSep, nil
}

// validateSeparator treats nil, including a typed nil pointer, as no separator.
func validateSeparator(separator any) (string, bool, error) {
	if KindOf(separator) == KindNull {
		return "", false, nil
	}
	sep, ok := stringValue(separator)
	if !ok {
		return "", false, separatorMismatch(KindOf(separator))
	}
	return sep, true, nil
}

func validateRoot(root any) error {
	switch kind := KindOf(root); kind {
	case KindMapping:
		return nil
	default:
		return rootMismatch(kind)
	}
}

// splitPath splits on the literal separator. Without one the path is a single segment.
func splitPath(path, sep string, hasSep bool) []string {
	if !hasSep {
		return []string{path}
	}
	return strings.Split(path, sep)
}

// walk follows segments from root. It stops at the first absent key, the
// first non-indexable value, or the first stored Missing marker.
func (r *Resolver) walk(root any, path string, segments []string) (any, bool) {
	current := root
	for depth, segment := range segments {
		next, ok := child(current, segment, r.tagName)
		if !ok || IsMissing(next) {
			r.logger.V(1).Info("path not followed to completion",
				"path", path, "segment", segment, "depth", depth, "kind", KindOf(current).String())
			return Missing, false
		}
		current = next
	}
	return current, true
}
