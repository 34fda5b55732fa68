// Package maputil provides helpers for nested string-keyed maps,
// including dotted-path namespacing and lookup.
package maputil

import (
	"sort"
	"strings"
)

// SortKeys returns the keys of in, sorted.
func SortKeys[T any](in map[string]T) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Namespace walks root along the dotted path, creating nested maps as
// needed, and returns the map at the end of the path. An intermediate
// key holding a non-map value is overwritten. An empty path returns
// root.
func Namespace(root map[string]any, path string) map[string]any {
	current := root
	for _, key := range splitPath(path) {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	return current
}

// Lookup walks root along the dotted path without modifying it and
// returns the value at the end, if any.
func Lookup(root map[string]any, path string) (any, bool) {
	keys := splitPath(path)
	if len(keys) == 0 {
		return root, true
	}

	current := root
	for i, key := range keys {
		v, ok := current[key]
		if !ok {
			return nil, false
		}
		if i == len(keys)-1 {
			return v, true
		}
		current, ok = v.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
