// File: lixenwraith/nestval/helper.go
package nestval

import "strings"

// Flatten converts a nested map[string]any to a flat map keyed by full paths
// joined with separator. Only map[string]any levels are descended; an empty
// nested map produces no entries.
func Flatten(root map[string]any, separator string) map[string]any {
	flat := make(map[string]any)
	flattenInto(flat, root, "", false, separator)
	return flat
}

func flattenInto(flat map[string]any, nested map[string]any, prefix string, hasPrefix bool, separator string) {
	for key, value := range nested {
		newPath := key
		if hasPrefix {
			newPath = prefix + separator + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			flattenInto(flat, nestedMap, newPath, true, separator)
		} else {
			flat[newPath] = value
		}
	}
}

// Set assigns value at path inside root, splitting path on separator.
// Intermediate maps are created when absent; an intermediate that is not a
// map[string]any is overwritten by a new map. root must be non-nil;
// assigning into a nil map panics.
func Set(root map[string]any, path, separator string, value any) {
	segments := strings.Split(path, separator)
	current := root

	for _, segment := range segments[:len(segments)-1] {
		next, exists := current[segment]
		if nextMap, isMap := next.(map[string]any); exists && isMap {
			current = nextMap
			continue
		}
		newMap := make(map[string]any)
		current[segment] = newMap
		current = newMap
	}

	current[segments[len(segments)-1]] = value
}
