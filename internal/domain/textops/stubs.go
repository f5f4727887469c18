package textops

import (
	"strings"
	"unicode/utf8"
)

const (
	functionKeyword = "function"
	stubPrefix      = "Test case for function: "
)

// functionHeader is a match of `function <name>(` inside a text.
type functionHeader struct {
	name   string
	offset int
}

// GenerateStubsFromSource returns a stub description for every function
// declaration header, in order of appearance. Arrow and anonymous functions
// are not recognised.
func GenerateStubsFromSource(text string) []string {
	headers := scanFunctionHeaders(text)

	stubs := make([]string, 0, len(headers))
	for _, header := range headers {
		stubs = append(stubs, stubPrefix+header.name)
	}

	return stubs
}

// scanFunctionHeaders walks text once, left to right. A failed candidate
// resumes one byte after its keyword; a match resumes after its "(".
func scanFunctionHeaders(text string) []functionHeader {
	var headers []functionHeader

	for from := 0; from < len(text); {
		idx := strings.Index(text[from:], functionKeyword)
		if idx < 0 {
			break
		}

		start := from + idx
		header, end, ok := matchHeaderAt(text, start)

		if !ok {
			from = start + 1
			continue
		}

		headers = append(headers, header)
		from = end
	}

	return headers
}

// matchHeaderAt tries to match a function header whose keyword begins at
// start, returning the offset just past the opening parenthesis.
func matchHeaderAt(text string, start int) (functionHeader, int, bool) {
	pos := start + len(functionKeyword)

	spaces := 0

	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !isSpace(r) {
			break
		}

		pos += size
		spaces++
	}

	if spaces == 0 {
		return functionHeader{}, 0, false
	}

	nameStart := pos
	for pos < len(text) && isWordByte(text[pos]) {
		pos++
	}

	if pos == nameStart || pos >= len(text) || text[pos] != '(' {
		return functionHeader{}, 0, false
	}

	return functionHeader{name: text[nameStart:pos], offset: start}, pos + 1, true
}

// isWordByte reports whether b belongs to the ASCII word class [A-Za-z0-9_].
func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}
