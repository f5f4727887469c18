package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	m "devkit.dev/pkg/devkit/internal/model"
)

const (
	maxCellWidth = 72
	ellipsis     = "…"
)

// renderer turns outcomes into text. Colors are only applied when enabled.
type renderer struct {
	warn    *color.Color
	good    *color.Color
	heading *color.Color
}

func newRenderer(colorize bool) renderer {
	r := renderer{
		warn:    color.New(color.FgYellow),
		good:    color.New(color.FgGreen),
		heading: color.New(color.Bold),
	}

	for _, c := range []*color.Color{r.warn, r.good, r.heading} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

func (r renderer) outcomes(op m.Operation, outcomes []m.Outcome) string {
	switch op {
	case m.OperationScan:
		return r.scanTable(outcomes)
	case m.OperationStubs:
		return r.stubsTable(outcomes)
	case m.OperationTranslate, m.OperationNormalize:
		return r.rewrites(outcomes)
	default:
		return fmt.Sprintf("unsupported operation %q\n", op)
	}
}

func (r renderer) scanTable(outcomes []m.Outcome) string {
	rows := make([][]string, 0)
	files := 0

	for _, outcome := range outcomes {
		if outcome.Count() == 0 {
			continue
		}

		files++

		path := truncate(string(outcome.Source.Path()))
		if len(outcome.Findings) == 0 {
			for _, warning := range outcome.Warnings {
				rows = append(rows, []string{path, "-", r.warn.Sprint(truncate(warning))})
			}

			continue
		}

		for _, finding := range outcome.Findings {
			location := fmt.Sprintf("%d:%d", finding.Line, finding.Column)
			rows = append(rows, []string{path, location, r.warn.Sprint(truncate(finding.Message))})
		}
	}

	if len(rows) == 0 {
		return r.good.Sprint("No risky patterns found") + "\n"
	}

	return renderTable(
		[]string{"Path", "Location", "Warning"},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT},
		rows,
		[]string{fmt.Sprintf("Files %d", files), "", fmt.Sprintf("%d", len(rows))},
	)
}

func (r renderer) stubsTable(outcomes []m.Outcome) string {
	rows := make([][]string, 0)
	files := 0

	for _, outcome := range outcomes {
		if outcome.Count() == 0 {
			continue
		}

		files++

		for _, stub := range outcome.Stubs {
			rows = append(rows, []string{truncate(string(outcome.Source.Path())), truncate(stub)})
		}
	}

	if len(rows) == 0 {
		return "No function declarations found\n"
	}

	return renderTable(
		[]string{"Path", "Stub"},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT},
		rows,
		[]string{fmt.Sprintf("Files %d", files), fmt.Sprintf("%d", len(rows))},
	)
}

// rewrites prints diffs when present, the transformed text for files that
// were neither diffed nor written, and a status table for the rest.
func (r renderer) rewrites(outcomes []m.Outcome) string {
	var b strings.Builder

	rows := make([][]string, 0)

	for _, outcome := range outcomes {
		path := string(outcome.Source.Path())

		switch {
		case outcome.Diff != "":
			b.WriteString(outcome.Diff)

			if !strings.HasSuffix(outcome.Diff, "\n") {
				b.WriteString("\n")
			}
		case outcome.Written == "" && outcome.Output != "":
			b.WriteString(r.heading.Sprintf("== %s ==", path))
			b.WriteString("\n")
			b.WriteString(outcome.Output)
			b.WriteString("\n")
		}

		status := "unchanged"
		if outcome.Changed {
			status = r.warn.Sprint("changed")
		}

		rows = append(rows, []string{truncate(path), status, truncate(string(outcome.Written))})
	}

	if len(rows) == 0 {
		return "No files processed\n"
	}

	b.WriteString(renderTable(
		[]string{"Path", "Status", "Written"},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT},
		rows,
		nil,
	))

	return b.String()
}

func (r renderer) summary(op m.Operation, summary m.Summary) string {
	parts := []string{fmt.Sprintf("%d file(s)", summary.Files)}

	switch op {
	case m.OperationScan:
		text := fmt.Sprintf("%d warning(s)", summary.Warnings)
		if summary.Warnings > 0 {
			text = r.warn.Sprint(text)
		} else {
			text = r.good.Sprint(text)
		}

		parts = append(parts, text)
	case m.OperationStubs:
		parts = append(parts, fmt.Sprintf("%d stub(s)", summary.Stubs))
	case m.OperationTranslate, m.OperationNormalize:
		parts = append(parts, fmt.Sprintf("%d changed", summary.Changed))
	}

	if summary.Cached > 0 {
		parts = append(parts, fmt.Sprintf("%d cached", summary.Cached))
	}

	return fmt.Sprintf("%s: %s\n", op, strings.Join(parts, ", "))
}

func (r renderer) reportHeader(report m.Report) string {
	return r.heading.Sprintf("Report %s (generated %s)", report.Operation, report.GeneratedAt.Format("2006-01-02 15:04:05")) + "\n"
}

func renderTable(header []string, alignment []int, rows [][]string, footer []string) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(alignment)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return buf.String()
}

func truncate(s string) string {
	if runewidth.StringWidth(s) <= maxCellWidth {
		return s
	}

	return runewidth.Truncate(s, maxCellWidth, ellipsis)
}
