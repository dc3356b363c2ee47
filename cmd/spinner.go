package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/tabzen/internal/adapters/render/theme"
	"github.com/bnema/tabzen/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type passDoneMsg struct {
	report domain.Report
	err    error
}

// passSpinnerModel spins while a policy action runs against the browser and
// leaves a one-line receipt naming the pass once it finishes.
type passSpinnerModel struct {
	spinner spinner.Model
	label   string
	run     tea.Cmd
	done    lipgloss.Style
	failed  lipgloss.Style

	finished bool
	report   domain.Report
	err      error
}

func newPassSpinnerModel(label string, t domain.Theme, run tea.Cmd) passSpinnerModel {
	p := theme.For(t)

	return passSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(p.Accent)),
		),
		label:  label,
		run:    run,
		done:   lipgloss.NewStyle().Foreground(p.Success),
		failed: lipgloss.NewStyle().Foreground(p.Danger),
	}
}

func (m passSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m passSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case passDoneMsg:
		m.finished = true
		m.report = msg.report
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m passSpinnerModel) View() string {
	if !m.finished {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}

	return passReceipt(m.report, m.err, m.done, m.failed) + "\n"
}

// passReceipt names the pass by its short id, with its duration and failure count.
func passReceipt(report domain.Report, err error, done, failed lipgloss.Style) string {
	id := shortPassID(report.PassID)
	switch {
	case err != nil:
		return failed.Render(fmt.Sprintf("✗ pass %s aborted", id))
	case report.Skipped:
		return done.Render(fmt.Sprintf("• pass %s skipped", id))
	}

	elapsed := report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond)
	if n := len(report.Failed()); n > 0 {
		return failed.Render(fmt.Sprintf("✗ pass %s finished in %s, %d of %d actions failed", id, elapsed, n, len(report.Outcomes)))
	}

	return done.Render(fmt.Sprintf("✓ pass %s finished in %s, %d actions", id, elapsed, len(report.Outcomes)))
}

func shortPassID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// runPassSpinner runs action behind a spinner on output and returns its report.
func runPassSpinner(ctx context.Context, output io.Writer, label string, t domain.Theme, action func(context.Context) (domain.Report, error)) (domain.Report, error) {
	run := func() tea.Msg {
		report, err := action(ctx)
		return passDoneMsg{report: report, err: err}
	}

	p := tea.NewProgram(
		newPassSpinnerModel(label, t, run),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.Report{}, err
	}

	result, ok := finalModel.(passSpinnerModel)
	if !ok {
		return domain.Report{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.report, result.err
}
