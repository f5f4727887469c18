package textops

import (
	"sort"
	"strings"

	m "devkit.dev/pkg/devkit/internal/model"
)

// riskyRule is a fixed textual signature flagged by the scanner.
type riskyRule struct {
	id      string
	token   string
	message string
}

// EvalWarning is reported for dynamic code execution through eval.
const EvalWarning = "Warning: Avoid using eval as it can lead to security vulnerabilities."

var riskyRules = []riskyRule{
	{id: "eval-call", token: "eval(", message: EvalWarning},
}

// ScanForRiskyPatterns returns one warning per rule whose signature appears
// anywhere in text. Repeated occurrences of the same signature produce a
// single warning; use FindRiskyOccurrences for every location.
func ScanForRiskyPatterns(text string) []string {
	warnings := make([]string, 0, len(riskyRules))

	for _, rule := range riskyRules {
		if strings.Contains(text, rule.token) {
			warnings = append(warnings, rule.message)
		}
	}

	return warnings
}

// FindRiskyOccurrences reports every occurrence of every rule, ordered by
// position in text.
func FindRiskyOccurrences(text string) []m.Finding {
	findings := make([]m.Finding, 0)

	for _, rule := range riskyRules {
		for from := 0; from < len(text); {
			idx := strings.Index(text[from:], rule.token)
			if idx < 0 {
				break
			}

			offset := from + idx
			line, column := position(text, offset)
			findings = append(findings, m.Finding{
				RuleID:  rule.id,
				Message: rule.message,
				Offset:  offset,
				Line:    line,
				Column:  column,
			})

			from = offset + len(rule.token)
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Offset < findings[j].Offset
	})

	return findings
}

// position converts a byte offset into a 1-based line and rune column.
func position(text string, offset int) (int, int) {
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1

	return line, len([]rune(before[lineStart:])) + 1
}
