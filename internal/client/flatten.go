package client

import (
	"sort"
	"strconv"
)

// FlatEntry is one dotted-path/value pair produced by Flatten.
type FlatEntry struct {
	Key   string
	Value any
}

// Flatten converts a nested quota payload into an ordered sequence of
// dotted-path pairs via a depth-first walk. Go maps carry no insertion
// order, so keys are emitted in ascending byte order at every nesting
// level; the output is therefore deterministic for a given input.
//
// Lists of scalars are leaf values and are rendered as-is. Lists
// containing mappings are expanded by index, e.g. path.0.subkey.
func Flatten(data map[string]any) []FlatEntry {
	var entries []FlatEntry
	flattenInto(&entries, "", data)
	return entries
}

func flattenInto(entries *[]FlatEntry, prefix string, data map[string]any) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		flattenValue(entries, path, data[k])
	}
}

func flattenValue(entries *[]FlatEntry, path string, value any) {
	switch v := value.(type) {
	case map[string]any:
		flattenInto(entries, path, v)
	case []any:
		if !containsMapping(v) {
			*entries = append(*entries, FlatEntry{Key: path, Value: v})
			return
		}
		for i, item := range v {
			flattenValue(entries, path+"."+strconv.Itoa(i), item)
		}
	default:
		*entries = append(*entries, FlatEntry{Key: path, Value: v})
	}
}

func containsMapping(list []any) bool {
	for _, item := range list {
		if _, ok := item.(map[string]any); ok {
			return true
		}
	}
	return false
}
