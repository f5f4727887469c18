package typekit

// UnknownTypeName is returned by MapTypeName for types it does not know.
const UnknownTypeName = "any"

var pythonTypeNames = map[string]string{
	"string":  "str",
	"number":  "int",
	"boolean": "bool",
	"object":  "dict",
}

// MapTypeName maps a TypeScript primitive type name to its Python counterpart.
func MapTypeName(tsTypeName string) string {
	if name, ok := pythonTypeNames[tsTypeName]; ok {
		return name
	}

	return UnknownTypeName
}
