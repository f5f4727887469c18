package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "devkit.dev/pkg/devkit/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd    *cobra.Command
	render renderer
	mode   StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, colorize bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, render: newRenderer(colorize)}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = applyStartOptions(options).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayRunInfo prints what is about to be processed.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, op m.Operation, files int, threads int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Running %s on %d file(s) with %d worker(s)\n", op, files, threads)
}

// DisplayOutcomes prints the outcomes of a run.
func (s *SimpleUI) DisplayOutcomes(ctx context.Context, op m.Operation, outcomes []m.Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", s.render.outcomes(op, outcomes))

	return nil
}

// DisplaySummary prints the run totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, op m.Operation, summary m.Summary) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s", s.render.summary(op, summary))
}

// DisplayReport prints a previously saved report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", s.render.reportHeader(report))
	s.printf("%s", s.render.outcomes(report.Operation, report.Outcomes))
	s.printf("%s", s.render.summary(report.Operation, report.Summary))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
