package typekit

import "strings"

// GenerateDocLines lists every key of obj as "- <key>: <runtime type>", one
// per line, sorted by key.
func GenerateDocLines(obj map[string]any) string {
	return RenderDocLines(FieldsFromMap(obj))
}

// RenderDocLines renders fields in the given order without a trailing newline.
func RenderDocLines(fields []Field) string {
	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, "- "+field.Name+": "+RuntimeTypeName(field.Value))
	}

	return strings.Join(lines, "\n")
}
