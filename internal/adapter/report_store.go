package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"devkit.dev/pkg/devkit/internal/domain/typekit"
	m "devkit.dev/pkg/devkit/internal/model"
)

const reportExtension = ".yaml"

// ErrMalformedReport is returned when a report file does not have the
// expected top-level fields.
var ErrMalformedReport = errors.New("malformed report")

// ReportStore persists one report per operation inside a reports directory.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.Report) error
	LoadReport(ctx context.Context, dir m.Path, op m.Operation) (m.Report, error)
	LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error)
}

var reportShape = map[string]typekit.Predicate{
	"version":   typekit.IsNumber,
	"operation": typekit.IsString,
	"summary":   typekit.IsObject,
	"outcomes":  func(v any) bool { return v == nil || typekit.IsList(v) },
}

// YAMLReportStore stores reports as <dir>/<operation>.yaml.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport implements ReportStore.
func (s *YAMLReportStore) SaveReport(ctx context.Context, dir m.Path, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	path := reportPath(dir, report.Operation)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	slog.Debug("saved report", "path", path, "outcomes", len(report.Outcomes))

	return nil
}

// LoadReport implements ReportStore.
func (s *YAMLReportStore) LoadReport(ctx context.Context, dir m.Path, op m.Operation) (m.Report, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, err
	}

	return readReport(reportPath(dir, op))
}

// LoadReports implements ReportStore. Reports are returned in operation order;
// files that are not reports are ignored.
func (s *YAMLReportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var reports []m.Report

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != reportExtension {
			continue
		}

		if _, err := m.ParseOperation(strings.TrimSuffix(name, reportExtension)); err != nil {
			continue
		}

		report, err := readReport(filepath.Join(string(dir), name))
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return operationIndex(reports[i].Operation) < operationIndex(reports[j].Operation)
	})

	return reports, nil
}

func readReport(path string) (m.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	if !typekit.ValidateShape(raw, reportShape) {
		return m.Report{}, fmt.Errorf("%w: %s", ErrMalformedReport, path)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}

func reportPath(dir m.Path, op m.Operation) string {
	return filepath.Join(string(dir), string(op)+reportExtension)
}

func operationIndex(op m.Operation) int {
	for i, known := range m.Operations {
		if known == op {
			return i
		}
	}

	return len(m.Operations)
}
