package textops

import "strings"

// substitution is a literal, token-free replacement.
type substitution struct {
	from string
	to   string
}

// javaToTS is applied in order; each entry rewrites every occurrence before
// the next one starts. Replacements ignore word boundaries, so "int" inside
// "Sprint" is rewritten as well.
var javaToTS = []substitution{
	{from: "String", to: "string"},
	{from: "int", to: "number"},
	{from: "class", to: "interface"},
	{from: ";", to: ""},
}

// TranslateJavaLikeToTS approximates a Java to TypeScript conversion by
// plain substring substitution. The input is not validated.
func TranslateJavaLikeToTS(text string) string {
	for _, sub := range javaToTS {
		text = strings.ReplaceAll(text, sub.from, sub.to)
	}

	return text
}
