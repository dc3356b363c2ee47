package popup

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/tabzen/internal/application"
	"github.com/bnema/tabzen/internal/domain"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const RefreshInterval = 10 * time.Second

type TabService interface {
	ListTabs(ctx context.Context, settings domain.Settings, query string) (application.TabListing, error)
	SetPinned(ctx context.Context, id domain.TabID, pinned bool) error
	Close(ctx context.Context, id domain.TabID) error
	Open(ctx context.Context, id domain.TabID) error
}

type Policy interface {
	PinInactive(ctx context.Context, settings domain.Settings) (domain.Report, error)
	UnpinAll(ctx context.Context) (domain.Report, error)
	CloseInactive(ctx context.Context, settings domain.Settings) (domain.Report, error)
}

type Settings interface {
	Current() domain.Settings
	ExcludeDomain(ctx context.Context, urlOrHost string) (string, error)
}

type Options struct {
	Context  context.Context
	Tabs     TabService
	Policy   Policy
	Settings Settings
}

type (
	listingMsg struct {
		listing application.TabListing
		err     error
	}
	actionMsg struct {
		status string
		err    error
	}
	tickMsg time.Time
)

// Model is the interactive popup: a searchable tab list with per-tab and bulk actions.
type Model struct {
	ctx      context.Context
	tabs     TabService
	policy   Policy
	settings Settings

	keys     keyMap
	styles   *styles
	showIdle *bool
	delegate *tabDelegate
	list     list.Model
	search   textinput.Model

	stats     domain.Stats
	showStats bool
	status    string
	err       error
	listErr   error
	loaded    bool

	width  int
	height int
}

func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	current := opts.Settings.Current()
	st := newStyles(current.Theme)
	showIdle := current.ShowInactivityTime
	delegate := &tabDelegate{styles: &st, showIdle: &showIdle}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	search := textinput.New()
	search.Placeholder = "Search tabs..."
	search.Prompt = "/ "
	search.Cursor.SetMode(cursor.CursorStatic)

	return Model{
		ctx:       ctx,
		tabs:      opts.Tabs,
		policy:    opts.Policy,
		settings:  opts.Settings,
		keys:      newKeyMap(),
		styles:    &st,
		showIdle:  &showIdle,
		delegate:  delegate,
		list:      l,
		search:    search,
		showStats: current.ShowStats,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.resize(), nil

	case listingMsg:
		m.loaded = true
		m.listErr = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.stats = msg.listing.Stats
		cmd := m.setItems(msg.listing.Tabs)
		return m, cmd

	case actionMsg:
		m.status = msg.status
		m.err = msg.err
		return m, m.refreshCmd()

	case tickMsg:
		return m, tea.Batch(m.refreshCmd(), m.tickCmd())

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ClearSearch):
		m.search.SetValue("")
		m.search.Blur()
		return m, m.refreshCmd()
	case key.Matches(msg, m.keys.ConfirmInput):
		m.search.Blur()
		return m, nil
	}

	previous := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == previous {
		return m, cmd
	}

	return m, tea.Batch(cmd, m.refreshCmd())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.ClearSearch):
		if m.search.Value() == "" {
			return m, tea.Quit
		}
		m.search.SetValue("")
		return m, m.refreshCmd()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd()
	case key.Matches(msg, m.keys.PinInactive):
		return m, m.bulkCmd("pinned", func(ctx context.Context) (domain.Report, error) {
			return m.policy.PinInactive(ctx, m.settings.Current())
		}, domain.ActionPin)
	case key.Matches(msg, m.keys.UnpinAll):
		return m, m.bulkCmd("unpinned", m.policy.UnpinAll, domain.ActionUnpin)
	case key.Matches(msg, m.keys.CloseStale):
		return m, m.bulkCmd("closed", func(ctx context.Context) (domain.Report, error) {
			return m.policy.CloseInactive(ctx, m.settings.Current())
		}, domain.ActionClose)
	}

	item, ok := m.list.SelectedItem().(tabItem)
	if ok {
		switch {
		case key.Matches(msg, m.keys.Open):
			return m, m.openCmd(item)
		case key.Matches(msg, m.keys.TogglePin):
			return m, m.togglePinCmd(item)
		case key.Matches(msg, m.keys.CloseTab):
			return m, m.closeCmd(item)
		case key.Matches(msg, m.keys.Exclude):
			return m, m.excludeCmd(item)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) refreshCmd() tea.Cmd {
	query := m.search.Value()
	return func() tea.Msg {
		listing, err := m.tabs.ListTabs(m.ctx, m.settings.Current(), query)
		return listingMsg{listing: listing, err: err}
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) openCmd(item tabItem) tea.Cmd {
	id := item.assessment.Tab.ID
	return func() tea.Msg {
		if err := m.tabs.Open(m.ctx, id); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: fmt.Sprintf("opened tab %d", id)}
	}
}

func (m Model) togglePinCmd(item tabItem) tea.Cmd {
	id := item.assessment.Tab.ID
	pinned := !item.assessment.Tab.Pinned
	return func() tea.Msg {
		if err := m.tabs.SetPinned(m.ctx, id, pinned); err != nil {
			return actionMsg{err: err}
		}
		verb := "unpinned"
		if pinned {
			verb = "pinned"
		}
		return actionMsg{status: fmt.Sprintf("%s tab %d", verb, id)}
	}
}

func (m Model) closeCmd(item tabItem) tea.Cmd {
	id := item.assessment.Tab.ID
	return func() tea.Msg {
		if err := m.tabs.Close(m.ctx, id); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: fmt.Sprintf("closed tab %d", id)}
	}
}

func (m Model) excludeCmd(item tabItem) tea.Cmd {
	url := item.assessment.Tab.URL
	return func() tea.Msg {
		host, err := m.settings.ExcludeDomain(m.ctx, url)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{status: "excluded " + host}
	}
}

func (m Model) bulkCmd(verb string, run func(context.Context) (domain.Report, error), action domain.Action) tea.Cmd {
	return func() tea.Msg {
		report, err := run(m.ctx)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{
			status: fmt.Sprintf("%s %d tabs", verb, len(report.Succeeded(action))),
			err:    report.Err(),
		}
	}
}

func (m *Model) setItems(assessments []domain.TabAssessment) tea.Cmd {
	current := m.settings.Current()
	*m.showIdle = current.ShowInactivityTime
	m.showStats = current.ShowStats
	*m.styles = newStyles(current.Theme)

	items := make([]list.Item, len(assessments))
	for i, a := range assessments {
		items[i] = tabItem{assessment: a}
	}

	return m.list.SetItems(items)
}

func (m Model) resize() Model {
	// title, stats, search, status and help lines
	listHeight := m.height - 7
	if listHeight < 4 {
		listHeight = 4
	}
	listWidth := m.width - 2
	if listWidth < 20 {
		listWidth = 20
	}

	m.delegate.SetWidth(listWidth)
	m.list.SetSize(listWidth, listHeight)
	m.search.Width = listWidth - 4

	return m
}

// Stats exposes the counts of the last listing.
func (m Model) Stats() domain.Stats {
	return m.stats
}
