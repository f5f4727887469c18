// Package typekit holds the small typed helpers that surround the text
// operations: runtime type predicates, interface and doc generation from JSON
// objects, TypeScript to Python type names, an awaited string check and an
// explicit key/value store.
package typekit

import (
	"encoding/json"
	"reflect"
)

// Predicate checks a single value.
type Predicate func(v any) bool

// IsString reports whether v is a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsNumber reports whether v is an integer, a float or a json.Number.
func IsNumber(v any) bool {
	if _, ok := v.(json.Number); ok {
		return true
	}

	if v == nil {
		return false
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsBoolean reports whether v is a bool.
func IsBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsObject reports whether v is a string keyed map.
func IsObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// IsList reports whether v is a slice of values.
func IsList(v any) bool {
	_, ok := v.([]any)
	return ok
}

// ValidateShape reports whether every field predicate accepts the matching
// field of v. A missing field is handed to its predicate as nil, so it fails
// unless the predicate explicitly allows nil. A nil predicate always fails.
func ValidateShape(v map[string]any, fields map[string]Predicate) bool {
	for name, predicate := range fields {
		if predicate == nil {
			return false
		}

		if !predicate(v[name]) {
			return false
		}
	}

	return true
}
