package textops

import (
	"strings"
	"unicode"
)

// NormalizeWhitespace replaces every run of whitespace with a single space and
// trims the ends. Code structure such as line breaks is not preserved.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.FieldsFunc(text, isSpace), " ")
}

// isSpace matches the ECMAScript \s class: Unicode white space except NEL,
// plus the byte order mark.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}

	return unicode.IsSpace(r) || r == '\uFEFF'
}
