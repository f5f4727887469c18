package model

// Finding is a single located occurrence of a risky pattern.
type Finding struct {
	RuleID  string `yaml:"rule" msgpack:"rule"`
	Message string `yaml:"message" msgpack:"message"`
	Offset  int    `yaml:"offset" msgpack:"offset"`
	Line    int    `yaml:"line" msgpack:"line"`
	Column  int    `yaml:"column" msgpack:"column"`
}

// Outcome is what one operation produced for one source.
type Outcome struct {
	Operation Operation `yaml:"operation" msgpack:"operation"`
	Source    Source    `yaml:"source" msgpack:"source"`
	Warnings  []string  `yaml:"warnings,omitempty" msgpack:"warnings"`
	Findings  []Finding `yaml:"findings,omitempty" msgpack:"findings"`
	Stubs     []string  `yaml:"stubs,omitempty" msgpack:"stubs"`
	Output    string    `yaml:"-" msgpack:"output"`
	Changed   bool      `yaml:"changed,omitempty" msgpack:"changed"`
	Diff      string    `yaml:"diff,omitempty" msgpack:"diff"`
	Written   Path      `yaml:"written,omitempty" msgpack:"written"`
	Cached    bool      `yaml:"-" msgpack:"cached"`
}

// Count returns the number of reportable entries in the outcome: warnings for
// scans, stubs for stub generation and one per changed file for rewrites.
func (o Outcome) Count() int {
	switch o.Operation {
	case OperationScan:
		return len(o.Warnings)
	case OperationStubs:
		return len(o.Stubs)
	case OperationTranslate, OperationNormalize:
		if o.Changed {
			return 1
		}
	}

	return 0
}
