package typekit

import "strings"

const generatedInterfaceName = "GeneratedType"

// GenerateInterfaceFromJSON renders obj as a one-line TypeScript interface
// listing every key with its runtime type name. Keys are sorted.
func GenerateInterfaceFromJSON(obj map[string]any) string {
	return RenderInterface(FieldsFromMap(obj))
}

// GenerateInterfaceFromJSONBytes is GenerateInterfaceFromJSON for a raw JSON
// object, keeping keys in document order.
func GenerateInterfaceFromJSONBytes(data []byte) (string, error) {
	fields, err := DecodeFields(data)
	if err != nil {
		return "", err
	}

	return RenderInterface(fields), nil
}

// RenderInterface renders fields in the given order.
func RenderInterface(fields []Field) string {
	members := make([]string, 0, len(fields))
	for _, field := range fields {
		members = append(members, field.Name+": "+RuntimeTypeName(field.Value)+";")
	}

	return "interface " + generatedInterfaceName + " { " + strings.Join(members, " ") + " }"
}
