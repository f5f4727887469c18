package typekit

import "reflect"

// RuntimeTypeName returns the JavaScript typeof name a decoded JSON value
// would have: string, number, boolean, function or object. nil, maps, slices
// and structs are all objects.
func RuntimeTypeName(v any) string {
	switch {
	case v == nil:
		return "object"
	case IsString(v):
		return "string"
	case IsNumber(v):
		return "number"
	case IsBoolean(v):
		return "boolean"
	}

	if reflect.TypeOf(v).Kind() == reflect.Func {
		return "function"
	}

	return "object"
}
