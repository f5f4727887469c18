// Package domain wires the text operations to files on disk: it discovers
// sources, runs an operation over them concurrently and hands the outcomes to
// the UI and the report store.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"devkit.dev/pkg/devkit/internal/adapter"
	"devkit.dev/pkg/devkit/internal/controller"
	"devkit.dev/pkg/devkit/internal/domain/textops"
	"devkit.dev/pkg/devkit/internal/domain/typekit"
	m "devkit.dev/pkg/devkit/internal/model"
	"devkit.dev/pkg/devkit/pkg"
)

var (
	// ErrWarningsFound is returned by Run when FailOnWarning is set and the
	// scan reported at least one warning.
	ErrWarningsFound = errors.New("risky patterns found")
	// ErrNoReports is returned by View when there is nothing to show.
	ErrNoReports = errors.New("no reports found")
)

const (
	counterFiles    = "files"
	counterWarnings = "warnings"
	counterStubs    = "stubs"
	counterChanged  = "changed"
	counterCached   = "cached"

	translatedExtension = ".ts"
	diffContextLines    = 3
)

// RunArgs contains the arguments for running an operation over files.
type RunArgs struct {
	Operation     m.Operation
	Paths         []m.Path
	Exclude       []string
	Extensions    []string
	Threads       int
	UseCache      bool
	Reports       m.Path
	Write         bool
	Diff          bool
	FailOnWarning bool
}

// ViewArgs contains the arguments for displaying saved reports. An empty
// Operation shows every report found in Reports.
type ViewArgs struct {
	Reports   m.Path
	Operation m.Operation
}

// Workflow runs operations over source files and shows saved results.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fs       adapter.SourceFSAdapter
	reports  adapter.ReportStore
	cache    adapter.ResultCache
	ui       controller.UI
	spillDir string
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
// cache may be nil, in which case nothing is cached.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	cache adapter.ResultCache,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:      fsAdapter,
		reports: reportStore,
		cache:   cache,
		ui:      ui,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if _, err := m.ParseOperation(string(args.Operation)); err != nil {
		return fmt.Errorf("%w: %q", textops.ErrUnknownOperation, args.Operation)
	}

	threads := max(args.Threads, 1)

	extensions := args.Extensions
	if len(extensions) == 0 {
		extensions = args.Operation.DefaultExtensions()
	}

	sources, err := w.fs.Get(ctx, args.Paths, extensions, args.Exclude...)
	if err != nil {
		slog.Error("Failed to get sources", "error", err)
		return fmt.Errorf("get sources: %w", err)
	}

	if err := w.ui.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	w.ui.DisplayRunInfo(ctx, args.Operation, len(sources), threads)

	outcomes, summary, err := w.processSources(ctx, args, sources, threads)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayOutcomes(ctx, args.Operation, outcomes); err != nil {
		slog.Error("Failed to display outcomes", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if args.Reports != "" {
		report := m.Report{
			Version:     m.CurrentReportVersion,
			Operation:   args.Operation,
			GeneratedAt: time.Now().UTC(),
			Summary:     summary,
			Outcomes:    outcomes,
		}

		if err := w.reports.SaveReport(ctx, args.Reports, report); err != nil {
			slog.Error("Failed to save report", "error", err)
			return fmt.Errorf("save report: %w", err)
		}
	}

	w.ui.DisplaySummary(ctx, args.Operation, summary)
	w.ui.Wait(ctx)

	if args.FailOnWarning && summary.Warnings > 0 {
		return fmt.Errorf("%w: %d warning(s)", ErrWarningsFound, summary.Warnings)
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	var reports []m.Report

	if args.Operation != "" {
		report, err := w.reports.LoadReport(ctx, args.Reports, args.Operation)
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w in %s", ErrNoReports, args.Reports)
		}

		if err != nil {
			return fmt.Errorf("load report: %w", err)
		}

		reports = append(reports, report)
	} else {
		loaded, err := w.reports.LoadReports(ctx, args.Reports)
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w in %s", ErrNoReports, args.Reports)
		}

		if err != nil {
			return fmt.Errorf("load reports: %w", err)
		}

		reports = loaded
	}

	if len(reports) == 0 {
		return fmt.Errorf("%w in %s", ErrNoReports, args.Reports)
	}

	if err := w.ui.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start view UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	for _, report := range reports {
		if err := w.ui.DisplayReport(ctx, report); err != nil {
			return fmt.Errorf("display report %s: %w", report.Operation, err)
		}
	}

	w.ui.Wait(ctx)

	return nil
}

// processSources applies the operation to every source with at most threads
// workers. Outcomes are spooled to disk while the workers run and returned
// sorted by path.
func (w *workflow) processSources(ctx context.Context, args RunArgs, sources []m.Source, threads int) ([]m.Outcome, m.Summary, error) {
	spill, err := pkg.NewFileSpill[m.Outcome](w.spillDir)
	if err != nil {
		return nil, m.Summary{}, fmt.Errorf("create spill: %w", err)
	}

	defer func() {
		if err := spill.Close(); err != nil {
			slog.Error("Failed to close spill", "error", err)
		}
	}()

	counters := typekit.NewStore(map[string]any{
		counterFiles:    0,
		counterWarnings: 0,
		counterStubs:    0,
		counterChanged:  0,
		counterCached:   0,
	})

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for _, source := range sources {
		currentSource := source

		group.Go(func() error {
			outcome, err := w.processSource(groupCtx, args, currentSource)
			if err != nil {
				return err
			}

			if err := spill.Append(outcome); err != nil {
				return fmt.Errorf("spill outcome for %s: %w", currentSource.Path(), err)
			}

			recordOutcome(counters, outcome)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to process sources", "error", err)
		return nil, m.Summary{}, fmt.Errorf("process sources: %w", err)
	}

	outcomes := make([]m.Outcome, 0, spill.Len())

	err = spill.Range(func(_ uint64, outcome m.Outcome) error {
		outcomes = append(outcomes, outcome)
		return nil
	})
	if err != nil {
		return nil, m.Summary{}, fmt.Errorf("read spilled outcomes: %w", err)
	}

	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].Source.Path() < outcomes[j].Source.Path()
	})

	return outcomes, summaryFrom(counters), nil
}

func (w *workflow) processSource(ctx context.Context, args RunArgs, source m.Source) (m.Outcome, error) {
	if source.Origin == nil {
		return m.Outcome{}, errors.New("source without origin")
	}

	content, err := typekit.ProcessString(ctx, func(ctx context.Context) (any, error) {
		data, err := w.fs.ReadFile(ctx, source.Origin.FullPath)
		if err != nil {
			return nil, err
		}

		return string(data), nil
	})
	if err != nil {
		return m.Outcome{}, fmt.Errorf("read %s: %w", source.Path(), err)
	}

	source.Content = content

	outcome, err := w.apply(args, source)
	if err != nil {
		return m.Outcome{}, err
	}

	if !args.Operation.Rewrites() {
		return outcome, nil
	}

	target := rewriteTarget(args.Operation, source.Origin.FullPath)

	if args.Diff && outcome.Changed {
		diff, err := unifiedDiff(source.Path(), rewriteTarget(args.Operation, source.Path()), content, outcome.Output)
		if err != nil {
			return m.Outcome{}, fmt.Errorf("diff %s: %w", source.Path(), err)
		}

		outcome.Diff = diff
	}

	if args.Write && (outcome.Changed || target != source.Origin.FullPath) {
		if err := w.writeOutput(ctx, source, target, outcome.Output); err != nil {
			return m.Outcome{}, err
		}

		outcome.Written = rewriteTarget(args.Operation, source.Path())
	}

	return outcome, nil
}

// apply runs the operation, consulting the result cache by content hash first.
func (w *workflow) apply(args RunArgs, source m.Source) (m.Outcome, error) {
	useCache := args.UseCache && w.cache != nil

	if useCache {
		if cached, ok := w.cache.Get(args.Operation, source.Origin.Hash); ok {
			slog.Debug("cache hit", "path", source.Path(), "operation", args.Operation)

			cached.Source = source
			cached.Diff = ""
			cached.Written = ""
			cached.Cached = true

			return cached, nil
		}
	}

	outcome, err := textops.Apply(args.Operation, source)
	if err != nil {
		return m.Outcome{}, fmt.Errorf("apply %s to %s: %w", args.Operation, source.Path(), err)
	}

	if useCache {
		w.cache.Add(args.Operation, source.Origin.Hash, outcome)
	}

	return outcome, nil
}

func (w *workflow) writeOutput(ctx context.Context, source m.Source, target m.Path, output string) error {
	info, err := w.fs.FileInfo(ctx, source.Origin.FullPath)
	if err != nil {
		return fmt.Errorf("stat %s: %w", source.Path(), err)
	}

	if err := w.fs.WriteFile(ctx, target, []byte(output), info.Mode().Perm()); err != nil {
		slog.Error("Failed to write output", "path", target, "error", err)
		return fmt.Errorf("write %s: %w", target, err)
	}

	slog.Debug("wrote output", "source", source.Path(), "target", target)

	return nil
}

// rewriteTarget returns where the rewritten text of path goes: translations
// land next to the source with a .ts extension, normalization is in place.
func rewriteTarget(op m.Operation, path m.Path) m.Path {
	if op != m.OperationTranslate {
		return path
	}

	p := string(path)

	return m.Path(strings.TrimSuffix(p, filepath.Ext(p)) + translatedExtension)
}

func unifiedDiff(from, to m.Path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(from),
		ToFile:   string(to),
		Context:  diffContextLines,
	})
}

func recordOutcome(counters *typekit.Store, outcome m.Outcome) {
	increment(counters, counterFiles, 1)
	increment(counters, counterWarnings, len(outcome.Warnings))
	increment(counters, counterStubs, len(outcome.Stubs))

	if outcome.Changed {
		increment(counters, counterChanged, 1)
	}

	if outcome.Cached {
		increment(counters, counterCached, 1)
	}
}

func increment(counters *typekit.Store, key string, delta int) {
	if delta == 0 {
		return
	}

	counters.Modify(key, func(current any) any {
		n, _ := current.(int)
		return n + delta
	})
}

func summaryFrom(counters *typekit.Store) m.Summary {
	snapshot := counters.Snapshot()

	get := func(key string) int {
		n, _ := snapshot[key].(int)
		return n
	}

	return m.Summary{
		Files:    get(counterFiles),
		Warnings: get(counterWarnings),
		Stubs:    get(counterStubs),
		Changed:  get(counterChanged),
		Cached:   get(counterCached),
	}
}
