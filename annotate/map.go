package annotate

import (
	"iter"
	"maps"
	"reflect"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Field is a single key/value entry of a Map.
type Field struct {
	Key   string
	Value any
}

// Map is a mapping from string keys to values that remembers insertion
// order. Go maps do not, and the augmenter processes fields in document
// order.
type Map struct {
	om *orderedmap.OrderedMap[string, any]
}

// NewMap builds a Map from fields. A repeated key replaces the earlier value
// but keeps its original position.
func NewMap(fields ...Field) *Map {
	m := &Map{om: orderedmap.New[string, any]()}
	for _, f := range fields {
		m.Set(f.Key, f.Value)
	}

	return m
}

// FromGoMap converts a plain Go map into a Map. Keys are sorted because the
// source has no order of its own. Nested values are kept as they are: the
// augmenter accepts string-keyed maps at any depth.
func FromGoMap(src map[string]any) *Map {
	m := NewMap()
	for _, k := range slices.Sorted(maps.Keys(src)) {
		m.Set(k, src[k])
	}

	return m
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil || m.om == nil {
		return nil, false
	}

	return m.om.Get(key)
}

// Set stores value under key, appending the key if it is new.
func (m *Map) Set(key string, value any) {
	if m.om == nil {
		m.om = orderedmap.New[string, any]()
	}

	m.om.Set(key, value)
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil || m.om == nil {
		return 0
	}

	return m.om.Len()
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m.Len() == 0 {
		return nil
	}

	keys := make([]string, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil || m.om == nil {
			return
		}

		for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// asMap normalizes the accepted mapping representations.
func asMap(v any) (*Map, bool) {
	switch tv := v.(type) {
	case nil:
		return nil, false
	case *Map:
		return tv, true
	case Map:
		return &tv, true
	case map[string]any:
		return FromGoMap(tv), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return fromReflectMap(rv), true
	}

	return nil, false
}
