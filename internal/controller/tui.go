package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "devkit.dev/pkg/devkit/internal/model"
)

// reservedLines is the space taken by the pager title and footer.
const reservedLines = 4

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// TUI implements UI with colored output and a Bubble Tea pager for results
// that do not fit on the screen.
type TUI struct {
	output io.Writer
	render renderer
	mode   StartMode

	mu      sync.Mutex
	pending []string
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, render: newRenderer(true)}
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mode = applyStartOptions(options).mode

	return nil
}

// Close drops anything not yet shown.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = nil
}

// Wait shows the collected output, paging it when it is taller than the
// terminal, and returns once the user quits the pager.
func (t *TUI) Wait(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	t.mu.Lock()
	content := strings.Join(t.pending, "")
	t.pending = nil
	t.mu.Unlock()

	if content == "" {
		return
	}

	width, height := t.terminalSize()
	if height == 0 || strings.Count(content, "\n")+reservedLines <= height {
		_, _ = fmt.Fprint(t.output, content)
		return
	}

	program := tea.NewProgram(
		newPagerModel(t.title(), content, width, height),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		_, _ = fmt.Fprint(t.output, content)
	}
}

// DisplayRunInfo prints what is about to be processed.
func (t *TUI) DisplayRunInfo(ctx context.Context, op m.Operation, files int, threads int) {
	if ctx.Err() != nil {
		return
	}

	_, _ = fmt.Fprintf(t.output, "Running %s on %d file(s) with %d worker(s)\n", op, files, threads)
}

// DisplayOutcomes queues the outcomes for Wait.
func (t *TUI) DisplayOutcomes(ctx context.Context, op m.Operation, outcomes []m.Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.queue(t.render.outcomes(op, outcomes))

	return nil
}

// DisplaySummary queues the run totals for Wait.
func (t *TUI) DisplaySummary(ctx context.Context, op m.Operation, summary m.Summary) {
	if ctx.Err() != nil {
		return
	}

	t.queue(t.render.summary(op, summary))
}

// DisplayReport queues a saved report for Wait.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.queue(t.render.reportHeader(report))
	t.queue(t.render.outcomes(report.Operation, report.Outcomes))
	t.queue(t.render.summary(report.Operation, report.Summary))

	return nil
}

func (t *TUI) queue(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = append(t.pending, s)
}

func (t *TUI) title() string {
	if t.mode == ModeView {
		return "devkit reports"
	}

	return "devkit results"
}

func (t *TUI) terminalSize() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// pagerModel is a scrollable Bubble Tea view over pre-rendered text.
type pagerModel struct {
	title    string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-reservedLines, 1))
	vp.SetContent(content)

	return pagerModel{title: title, viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-reservedLines, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := footerStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • g/G top/bottom • q quit", pm.viewport.ScrollPercent()*100))

	return titleStyle.Render(pm.title) + "\n\n" + pm.viewport.View() + "\n" + footer
}
