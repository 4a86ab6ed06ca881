package annotate

import (
	"reflect"
	"slices"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies a data value by its structural shape.
type KindEnum int

const (
	_ KindEnum = iota // zero value is not a valid kind

	KindScalar
	KindMapping
	KindList
	KindOther // anything the augmenter does not know how to wrap, including null
)

// Classify resolves the kind of v. It is called once per field and the
// result is matched exhaustively by the augmenter.
//
// Classification goes by the underlying Go kind, so named types such as
// `type ID int` are scalars and any string-keyed map is a mapping.
func Classify(v any) KindEnum {
	switch tv := v.(type) {
	case nil:
		return KindOther
	case *Map:
		if tv == nil {
			return KindOther
		}
		return KindMapping
	case Map:
		return KindMapping
	case []byte:
		return KindOther
	}

	rtype := reflect.TypeOf(v)
	switch rtype.Kind() {
	default:
		return KindOther
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindScalar
	case reflect.Map:
		if rtype.Key().Kind() == reflect.String {
			return KindMapping
		}
		return KindOther
	case reflect.Slice, reflect.Array:
		return KindList
	}
}

// listElems returns the elements of a list-kinded value.
func listElems(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}

	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out
}

// fromReflectMap converts a string-keyed map of any value type into a Map
// with sorted keys.
func fromReflectMap(rv reflect.Value) *Map {
	keys := make([]string, 0, rv.Len())
	byKey := make(map[string]reflect.Value, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
		byKey[k.String()] = k
	}
	slices.Sort(keys)

	m := NewMap()
	for _, k := range keys {
		m.Set(k, rv.MapIndex(byKey[k]).Interface())
	}

	return m
}
