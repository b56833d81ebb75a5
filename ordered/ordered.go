// Package ordered provides a mapping type that remembers key order.
//
// Decoders in this module produce Map values so that converted records keep
// the field order of the source document. Go maps have no iteration order,
// so FromMap sorts keys to stay deterministic.
package ordered

import "sort"

// Pair is a single entry of a Map.
type Pair struct {
	Key   string
	Value any
}

// Map is an ordered collection of key/value pairs. Keys may repeat; readers
// treat the last occurrence as authoritative.
type Map []Pair

// Len returns the number of pairs, duplicates included.
func (m Map) Len() int { return len(m) }

// Get returns the value of the last pair with the given key.
func (m Map) Get(key string) (any, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order, duplicates included.
func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, p := range m {
		keys[i] = p.Key
	}
	return keys
}

// ToMap converts m into a plain map, recursively. Nested Map values become
// map[string]any and sequences are copied with their elements converted.
func (m Map) ToMap() map[string]any {
	out := make(map[string]any, len(m))
	for _, p := range m {
		out[p.Key] = Plain(p.Value)
	}
	return out
}

// Plain converts any ordered maps inside v into plain maps.
func Plain(v any) any {
	switch t := v.(type) {
	case Map:
		return t.ToMap()
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = Plain(t[i])
		}
		return arr
	default:
		return v
	}
}

// FromMap builds a Map from m with keys in lexical order.
func FromMap(m map[string]any) Map {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(Map, 0, len(keys))
	for _, k := range keys {
		out = append(out, Pair{Key: k, Value: m[k]})
	}
	return out
}
