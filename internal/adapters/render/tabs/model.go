package tabs

import (
	"errors"
	"io"

	"github.com/bnema/tabzen/internal/application"
	"github.com/bnema/tabzen/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type section struct {
	title string
	tabs  []domain.TabAssessment
}

type model struct {
	listing  application.TabListing
	sections []section
	opts     RenderOptions
	styles   styles
	output   string
}

func newModel(listing application.TabListing, opts RenderOptions) model {
	return model{
		listing:  listing,
		sections: splitSections(listing.Tabs),
		opts:     opts,
		styles:   newStyles(opts.Theme),
	}
}

// splitSections orders tabs the way the policy sees them: inactive tabs first,
// then the ones still in use, then those it never touches. Empty sections are dropped.
func splitSections(tabs []domain.TabAssessment) []section {
	inactive := section{title: "Inactive"}
	active := section{title: "Active"}
	excluded := section{title: "Excluded"}

	for _, a := range tabs {
		switch {
		case a.Excluded:
			excluded.tabs = append(excluded.tabs, a)
		case a.PinEligible:
			inactive.tabs = append(inactive.tabs, a)
		default:
			active.tabs = append(active.tabs, a)
		}
	}

	sections := make([]section, 0, 3)
	for _, s := range []section{inactive, active, excluded} {
		if len(s.tabs) > 0 {
			sections = append(sections, s)
		}
	}

	return sections
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.listing, m.sections, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(listing application.TabListing, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(listing, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
