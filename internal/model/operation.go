package model

import "fmt"

// Operation names one of the text transformations devkit can run over a file.
type Operation string

const (
	// OperationScan reports risky patterns such as eval(...).
	OperationScan Operation = "scan"
	// OperationTranslate rewrites Java-like declarations into TypeScript-like text.
	OperationTranslate Operation = "translate"
	// OperationStubs lists a test stub per declared function.
	OperationStubs Operation = "stubs"
	// OperationNormalize collapses whitespace runs into single spaces.
	OperationNormalize Operation = "normalize"
)

// Operations lists every supported operation in display order.
var Operations = []Operation{OperationScan, OperationTranslate, OperationStubs, OperationNormalize}

var (
	scriptExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"}
	javaExtensions   = []string{".java"}
)

// ParseOperation converts a user supplied name into an Operation.
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations {
		if string(op) == name {
			return op, nil
		}
	}

	return "", fmt.Errorf("unknown operation %q", name)
}

// DefaultExtensions returns the file extensions an operation looks at when
// none are configured.
func (o Operation) DefaultExtensions() []string {
	var exts []string
	if o == OperationTranslate {
		exts = javaExtensions
	} else {
		exts = scriptExtensions
	}

	out := make([]string, len(exts))
	copy(out, exts)

	return out
}

// Rewrites reports whether the operation produces transformed text.
func (o Operation) Rewrites() bool {
	return o == OperationTranslate || o == OperationNormalize
}

func (o Operation) String() string {
	return string(o)
}
