// Package textops implements the pattern-matching text operations of devkit:
// the risky pattern scanner, the Java-like to TypeScript translator, the test
// stub generator and the whitespace normalizer.
//
// Every function here is pure and total. None of them parses its input; they
// work on surface text only, so results are defined by the literal patterns
// they look for rather than by any language grammar.
package textops

import (
	"errors"
	"fmt"

	m "devkit.dev/pkg/devkit/internal/model"
)

// ErrUnknownOperation is returned by Apply for operations it cannot dispatch.
var ErrUnknownOperation = errors.New("unknown operation")

// Apply runs op over the content of source and wraps the result in an Outcome.
func Apply(op m.Operation, source m.Source) (m.Outcome, error) {
	outcome := m.Outcome{
		Operation: op,
		Source:    source,
	}

	switch op {
	case m.OperationScan:
		outcome.Warnings = ScanForRiskyPatterns(source.Content)
		outcome.Findings = FindRiskyOccurrences(source.Content)
	case m.OperationStubs:
		outcome.Stubs = GenerateStubsFromSource(source.Content)
	case m.OperationTranslate:
		outcome.Output = TranslateJavaLikeToTS(source.Content)
		outcome.Changed = outcome.Output != source.Content
	case m.OperationNormalize:
		outcome.Output = NormalizeWhitespace(source.Content)
		outcome.Changed = outcome.Output != source.Content
	default:
		return m.Outcome{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	return outcome, nil
}
