package model

import "time"

// Summary aggregates the outcomes of a run.
type Summary struct {
	Files    int `yaml:"files"`
	Warnings int `yaml:"warnings"`
	Stubs    int `yaml:"stubs"`
	Changed  int `yaml:"changed"`
	Cached   int `yaml:"cached"`
}

// Report is the persisted form of a run for a single operation.
type Report struct {
	Version     int       `yaml:"version"`
	Operation   Operation `yaml:"operation"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Summary     Summary   `yaml:"summary"`
	Outcomes    []Outcome `yaml:"outcomes"`
}

// CurrentReportVersion is written into every saved report.
const CurrentReportVersion = 1
