package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"devkit.dev/pkg/devkit/internal/adapter"
	adaptermocks "devkit.dev/pkg/devkit/internal/adapter/mocks"
	controllermocks "devkit.dev/pkg/devkit/internal/controller/mocks"
	"devkit.dev/pkg/devkit/internal/domain/textops"
	m "devkit.dev/pkg/devkit/internal/model"
)

func makeSource(short, hash string) m.Source {
	return m.Source{Origin: &m.File{
		ShortPath: m.Path(short),
		FullPath:  m.Path("/work/" + short),
		Hash:      hash,
	}}
}

func expectRunUI(ui *controllermocks.MockUI, op m.Operation, files, threads int) {
	ui.On("Start", mock.Anything, mock.Anything).Return(nil)
	ui.On("Close", mock.Anything).Return()
	ui.On("DisplayRunInfo", mock.Anything, op, files, threads).Return()
}

func captureOutcomes(ui *controllermocks.MockUI, op m.Operation, captured *[]m.Outcome) {
	ui.On("DisplayOutcomes", mock.Anything, op, mock.Anything).
		Run(func(args mock.Arguments) {
			*captured = args.Get(2).([]m.Outcome)
		}).
		Return(nil)
}

func TestWorkflow_RunScan(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	sources := []m.Source{makeSource("src/b.js", "hb"), makeSource("src/a.js", "ha")}

	fs.On("Get", mock.Anything, []m.Path{"./src/..."}, m.OperationScan.DefaultExtensions(), mock.Anything).Return(sources, nil)
	fs.On("ReadFile", mock.Anything, m.Path("/work/src/a.js")).Return([]byte("x = 1;\neval(a); eval(b)"), nil)
	fs.On("ReadFile", mock.Anything, m.Path("/work/src/b.js")).Return([]byte("const ok = true"), nil)

	expectRunUI(ui, m.OperationScan, 2, 2)

	var outcomes []m.Outcome
	captureOutcomes(ui, m.OperationScan, &outcomes)

	wantSummary := m.Summary{Files: 2, Warnings: 1}
	store.On("SaveReport", mock.Anything, m.Path("reports"), mock.MatchedBy(func(report m.Report) bool {
		return report.Version == m.CurrentReportVersion &&
			report.Operation == m.OperationScan &&
			report.Summary == wantSummary &&
			len(report.Outcomes) == 2
	})).Return(nil)
	ui.On("DisplaySummary", mock.Anything, m.OperationScan, wantSummary).Return()
	ui.On("Wait", mock.Anything).Return()

	wf := NewWorkflow(fs, store, nil, ui)

	err := wf.Run(context.Background(), RunArgs{
		Operation: m.OperationScan,
		Paths:     []m.Path{"./src/..."},
		Threads:   2,
		Reports:   "reports",
	})
	require.NoError(t, err)

	require.Len(t, outcomes, 2)
	assert.Equal(t, m.Path("src/a.js"), outcomes[0].Source.Path())
	assert.Equal(t, []string{textops.EvalWarning}, outcomes[0].Warnings)
	require.Len(t, outcomes[0].Findings, 2)
	assert.Equal(t, 2, outcomes[0].Findings[0].Line)
	assert.Equal(t, 1, outcomes[0].Findings[0].Column)
	assert.Equal(t, 10, outcomes[0].Findings[1].Column)
	assert.Equal(t, m.Path("src/b.js"), outcomes[1].Source.Path())
	assert.Empty(t, outcomes[1].Warnings)
}

func TestWorkflow_RunFailOnWarning(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	fs.On("Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]m.Source{makeSource("a.js", "h")}, nil)
	fs.On("ReadFile", mock.Anything, m.Path("/work/a.js")).Return([]byte("eval(x)"), nil)

	expectRunUI(ui, m.OperationScan, 1, 1)
	ui.On("DisplayOutcomes", mock.Anything, m.OperationScan, mock.Anything).Return(nil)
	ui.On("DisplaySummary", mock.Anything, m.OperationScan, m.Summary{Files: 1, Warnings: 1}).Return()
	ui.On("Wait", mock.Anything).Return()

	wf := NewWorkflow(fs, store, nil, ui)

	err := wf.Run(context.Background(), RunArgs{Operation: m.OperationScan, FailOnWarning: true})
	require.ErrorIs(t, err, ErrWarningsFound)
}

func TestWorkflow_RunReadErrorAborts(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)

	readErr := errors.New("permission denied")

	fs.On("Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]m.Source{makeSource("a.js", "h")}, nil)
	fs.On("ReadFile", mock.Anything, m.Path("/work/a.js")).Return(nil, readErr)

	expectRunUI(ui, m.OperationStubs, 1, 1)

	wf := NewWorkflow(fs, store, nil, ui)

	err := wf.Run(context.Background(), RunArgs{Operation: m.OperationStubs, Reports: "reports"})
	require.Error(t, err)
	require.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "read a.js")
}

func TestWorkflow_RunGetSourcesError(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	ui := controllermocks.NewMockUI(t)

	fs.On("Get", mock.Anything, mock.Anything, []string{".java"}, mock.Anything).Return(nil, errors.New("root path error"))

	wf := NewWorkflow(fs, adaptermocks.NewMockReportStore(t), nil, ui)

	err := wf.Run(context.Background(), RunArgs{Operation: m.OperationTranslate})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get sources")
}

func TestWorkflow_RunUnknownOperation(t *testing.T) {
	wf := NewWorkflow(
		adaptermocks.NewMockSourceFSAdapter(t),
		adaptermocks.NewMockReportStore(t),
		nil,
		controllermocks.NewMockUI(t),
	)

	err := wf.Run(context.Background(), RunArgs{Operation: "minify"})
	require.ErrorIs(t, err, textops.ErrUnknownOperation)
}

func TestWorkflow_RunUsesCacheForIdenticalContent(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	ui := controllermocks.NewMockUI(t)

	cache, err := adapter.NewLRUResultCache(8)
	require.NoError(t, err)

	sources := []m.Source{makeSource("a.js", "same"), makeSource("b.js", "same")}

	fs.On("Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(sources, nil)
	fs.On("ReadFile", mock.Anything, m.Path("/work/a.js")).Return([]byte("function one() {}"), nil)
	fs.On("ReadFile", mock.Anything, m.Path("/work/b.js")).Return([]byte("function one() {}"), nil)

	expectRunUI(ui, m.OperationStubs, 2, 1)

	var outcomes []m.Outcome
	captureOutcomes(ui, m.OperationStubs, &outcomes)
	ui.On("DisplaySummary", mock.Anything, m.OperationStubs, m.Summary{Files: 2, Stubs: 2, Cached: 1}).Return()
	ui.On("Wait", mock.Anything).Return()

	wf := NewWorkflow(fs, adaptermocks.NewMockReportStore(t), cache, ui)

	err = wf.Run(context.Background(), RunArgs{Operation: m.OperationStubs, Threads: 1, UseCache: true})
	require.NoError(t, err)

	require.Len(t, outcomes, 2)
	assert.False(t, outcomes[0].Cached)
	assert.True(t, outcomes[1].Cached)
	assert.Equal(t, m.Path("b.js"), outcomes[1].Source.Path())
	assert.Equal(t, []string{"Test case for function: one"}, outcomes[1].Stubs)
	assert.Equal(t, 1, cache.Len())
}

func TestWorkflow_RunCacheDisabled(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	ui := controllermocks.NewMockUI(t)
	cache := adaptermocks.NewMockResultCache(t)

	fs.On("Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]m.Source{makeSource("a.js", "h")}, nil)
	fs.On("ReadFile", mock.Anything, m.Path("/work/a.js")).Return([]byte("a"), nil)

	expectRunUI(ui, m.OperationNormalize, 1, 1)
	ui.On("DisplayOutcomes", mock.Anything, m.OperationNormalize, mock.Anything).Return(nil)
	ui.On("DisplaySummary", mock.Anything, m.OperationNormalize, m.Summary{Files: 1}).Return()
	ui.On("Wait", mock.Anything).Return()

	wf := NewWorkflow(fs, adaptermocks.NewMockReportStore(t), cache, ui)

	err := wf.Run(context.Background(), RunArgs{Operation: m.OperationNormalize, UseCache: false})
	require.NoError(t, err)

	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestWorkflow_RunNormalizeWriteAndDiff(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "messy.js"), []byte("let  a =\t1;\n\nlet b = 2;\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clean.js"), []byte("let c = 3;"), 0o600))

	ui := controllermocks.NewMockUI(t)
	expectRunUI(ui, m.OperationNormalize, 2, 1)

	var outcomes []m.Outcome
	captureOutcomes(ui, m.OperationNormalize, &outcomes)
	ui.On("DisplaySummary", mock.Anything, m.OperationNormalize, m.Summary{Files: 2, Changed: 1}).Return()
	ui.On("Wait", mock.Anything).Return()

	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewReportStore(), nil, ui)

	err := wf.Run(context.Background(), RunArgs{
		Operation: m.OperationNormalize,
		Paths:     []m.Path{"./..."},
		Write:     true,
		Diff:      true,
	})
	require.NoError(t, err)

	require.Len(t, outcomes, 2)

	clean, messy := outcomes[0], outcomes[1]
	assert.False(t, clean.Changed)
	assert.Empty(t, clean.Diff)
	assert.Empty(t, clean.Written)

	assert.True(t, messy.Changed)
	assert.Equal(t, m.Path("messy.js"), messy.Written)
	assert.Contains(t, messy.Diff, "--- messy.js")
	assert.Contains(t, messy.Diff, "+let a = 1; let b = 2;")

	data, err := os.ReadFile(filepath.Join(dir, "messy.js"))
	require.NoError(t, err)
	assert.Equal(t, "let a = 1; let b = 2;", string(data))
}

func TestWorkflow_RunTranslateWritesSibling(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foo.java"), []byte("class Foo { String name; int age; }"), 0o600))

	ui := controllermocks.NewMockUI(t)
	expectRunUI(ui, m.OperationTranslate, 1, 1)

	var outcomes []m.Outcome
	captureOutcomes(ui, m.OperationTranslate, &outcomes)
	ui.On("DisplaySummary", mock.Anything, m.OperationTranslate, m.Summary{Files: 1, Changed: 1}).Return()
	ui.On("Wait", mock.Anything).Return()

	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewReportStore(), nil, ui)

	err := wf.Run(context.Background(), RunArgs{Operation: m.OperationTranslate, Write: true})
	require.NoError(t, err)

	require.Len(t, outcomes, 1)
	assert.Equal(t, m.Path("Foo.ts"), outcomes[0].Written)

	data, err := os.ReadFile(filepath.Join(dir, "Foo.ts"))
	require.NoError(t, err)
	assert.Equal(t, "interface Foo { string name number age }", string(data))

	original, err := os.ReadFile(filepath.Join(dir, "Foo.java"))
	require.NoError(t, err)
	assert.Equal(t, "class Foo { String name; int age; }", string(original))
}

func TestWorkflow_View(t *testing.T) {
	scan := m.Report{Version: 1, Operation: m.OperationScan}
	stubs := m.Report{Version: 1, Operation: m.OperationStubs}

	t.Run("single operation", func(t *testing.T) {
		store := adaptermocks.NewMockReportStore(t)
		ui := controllermocks.NewMockUI(t)

		store.On("LoadReport", mock.Anything, m.Path("reports"), m.OperationScan).Return(scan, nil)
		ui.On("Start", mock.Anything, mock.Anything).Return(nil)
		ui.On("DisplayReport", mock.Anything, scan).Return(nil)
		ui.On("Wait", mock.Anything).Return()
		ui.On("Close", mock.Anything).Return()

		wf := NewWorkflow(adaptermocks.NewMockSourceFSAdapter(t), store, nil, ui)
		require.NoError(t, wf.View(context.Background(), ViewArgs{Reports: "reports", Operation: m.OperationScan}))
	})

	t.Run("all reports", func(t *testing.T) {
		store := adaptermocks.NewMockReportStore(t)
		ui := controllermocks.NewMockUI(t)

		store.On("LoadReports", mock.Anything, m.Path("reports")).Return([]m.Report{scan, stubs}, nil)
		ui.On("Start", mock.Anything, mock.Anything).Return(nil)
		ui.On("DisplayReport", mock.Anything, scan).Return(nil).Once()
		ui.On("DisplayReport", mock.Anything, stubs).Return(nil).Once()
		ui.On("Wait", mock.Anything).Return()
		ui.On("Close", mock.Anything).Return()

		wf := NewWorkflow(adaptermocks.NewMockSourceFSAdapter(t), store, nil, ui)
		require.NoError(t, wf.View(context.Background(), ViewArgs{Reports: "reports"}))
	})

	t.Run("no reports", func(t *testing.T) {
		store := adaptermocks.NewMockReportStore(t)
		store.On("LoadReports", mock.Anything, m.Path("reports")).Return([]m.Report{}, nil)

		wf := NewWorkflow(adaptermocks.NewMockSourceFSAdapter(t), store, nil, controllermocks.NewMockUI(t))
		err := wf.View(context.Background(), ViewArgs{Reports: "reports"})
		require.ErrorIs(t, err, ErrNoReports)
	})

	t.Run("load error", func(t *testing.T) {
		malformed := errors.New("malformed report")

		store := adaptermocks.NewMockReportStore(t)
		store.On("LoadReport", mock.Anything, m.Path("reports"), m.OperationStubs).Return(m.Report{}, malformed)

		wf := NewWorkflow(adaptermocks.NewMockSourceFSAdapter(t), store, nil, controllermocks.NewMockUI(t))
		err := wf.View(context.Background(), ViewArgs{Reports: "reports", Operation: m.OperationStubs})
		require.ErrorIs(t, err, malformed)
		require.NotErrorIs(t, err, ErrNoReports)
	})

	t.Run("missing reports directory", func(t *testing.T) {
		missing := m.Path(filepath.Join(t.TempDir(), "never-written"))

		wf := NewWorkflow(adaptermocks.NewMockSourceFSAdapter(t), adapter.NewReportStore(), nil, controllermocks.NewMockUI(t))
		err := wf.View(context.Background(), ViewArgs{Reports: missing})
		require.ErrorIs(t, err, ErrNoReports)
		assert.Contains(t, err.Error(), string(missing))
	})

	t.Run("missing operation report", func(t *testing.T) {
		dir := m.Path(t.TempDir())

		wf := NewWorkflow(adaptermocks.NewMockSourceFSAdapter(t), adapter.NewReportStore(), nil, controllermocks.NewMockUI(t))
		err := wf.View(context.Background(), ViewArgs{Reports: dir, Operation: m.OperationScan})
		require.ErrorIs(t, err, ErrNoReports)
	})
}

func TestRewriteTarget(t *testing.T) {
	assert.Equal(t, m.Path("src/Foo.ts"), rewriteTarget(m.OperationTranslate, "src/Foo.java"))
	assert.Equal(t, m.Path("Bar.ts"), rewriteTarget(m.OperationTranslate, "Bar"))
	assert.Equal(t, m.Path("src/a.js"), rewriteTarget(m.OperationNormalize, "src/a.js"))
}
