package popup

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/tabzen/internal/adapters/host/memory"
	tomlrepo "github.com/bnema/tabzen/internal/adapters/repo/toml"
	"github.com/bnema/tabzen/internal/application"
	"github.com/bnema/tabzen/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type popupFixture struct {
	host     *memory.Host
	tracker  *application.ActivityTracker
	settings *application.SettingsStore
	clock    *fixedClock
	model    Model
}

func newPopupFixture(t *testing.T, tabs ...domain.Tab) *popupFixture {
	t.Helper()

	cfg := viper.New()
	cfg.Set("settings.path", filepath.Join(t.TempDir(), "settings.toml"))
	repo, err := tomlrepo.NewSettingsRepository(cfg)
	require.NoError(t, err)

	host := memory.New(tabs...)
	clock := &fixedClock{now: time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)}
	tracker := application.NewActivityTracker(nil, clock, nil)
	engine := application.NewPolicyEngine(host, tracker, clock, nil)
	settings := application.NewSettingsStore(repo, nil)

	model := New(Options{
		Tabs:     application.NewTabService(host, tracker, engine),
		Policy:   engine,
		Settings: settings,
	})

	return &popupFixture{host: host, tracker: tracker, settings: settings, clock: clock, model: model}
}

// send applies msg and runs any returned command chain that yields popup messages.
func (f *popupFixture) send(t *testing.T, msg tea.Msg) {
	t.Helper()

	updated, cmd := f.model.Update(msg)
	f.model = updated.(Model)
	f.drain(t, cmd)
}

func (f *popupFixture) drain(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}

	switch msg := cmd().(type) {
	case listingMsg, actionMsg:
		f.send(t, msg)
	case tea.BatchMsg:
		for _, c := range msg {
			f.drain(t, c)
		}
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (f *popupFixture) load(t *testing.T) {
	t.Helper()
	f.send(t, tea.WindowSizeMsg{Width: 100, Height: 30})
	f.drain(t, f.model.refreshCmd())
}

func TestViewBeforeSizeIsLoading(t *testing.T) {
	f := newPopupFixture(t)
	assert.Equal(t, "Loading...", f.model.View())
}

func TestRefreshListsTabsAndStats(t *testing.T) {
	f := newPopupFixture(t,
		domain.Tab{ID: 1, WindowID: 1, Title: "Go Documentation", URL: "https://go.dev/doc"},
		domain.Tab{ID: 2, WindowID: 1, Title: "Inbox", URL: "https://mail.example.com", Pinned: true},
	)
	f.load(t)

	assert.Len(t, f.model.list.Items(), 2)
	assert.Equal(t, domain.Stats{Total: 2, Pinned: 1, Excluded: 1}, f.model.Stats())

	view := f.model.View()
	assert.Contains(t, view, "Go Documentation")
	assert.Contains(t, view, "total 2")
	assert.Contains(t, view, "go.dev")
}

func TestSearchFiltersByTitle(t *testing.T) {
	f := newPopupFixture(t,
		domain.Tab{ID: 1, WindowID: 1, Title: "Go Documentation", URL: "https://go.dev/doc"},
		domain.Tab{ID: 2, WindowID: 1, Title: "Inbox", URL: "https://mail.example.com"},
	)
	f.load(t)

	f.send(t, keyRunes("/"))
	require.True(t, f.model.search.Focused())
	f.send(t, keyRunes("inb"))

	require.Len(t, f.model.list.Items(), 1)
	assert.Equal(t, domain.TabID(2), f.model.list.Items()[0].(tabItem).assessment.Tab.ID)
	assert.Equal(t, 2, f.model.Stats().Total)

	f.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.model.search.Focused())
	assert.Len(t, f.model.list.Items(), 2)
}

func TestTogglePinOnSelectedTab(t *testing.T) {
	f := newPopupFixture(t, domain.Tab{ID: 1, WindowID: 1, Title: "A", URL: "https://a.example.com"})
	f.load(t)

	f.send(t, keyRunes("p"))

	tabs, err := f.host.ListTabs(context.Background())
	require.NoError(t, err)
	assert.True(t, tabs[0].Pinned)
	assert.Equal(t, "pinned tab 1", f.model.status)

	f.send(t, keyRunes("p"))
	tabs, _ = f.host.ListTabs(context.Background())
	assert.False(t, tabs[0].Pinned)
}

func TestCloseAndOpenSelectedTab(t *testing.T) {
	f := newPopupFixture(t,
		domain.Tab{ID: 1, WindowID: 1, Title: "A", URL: "https://a.example.com"},
		domain.Tab{ID: 2, WindowID: 1, Title: "B", URL: "https://b.example.com", Active: true},
	)
	f.load(t)

	f.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	_, tracked := f.tracker.Entry(1)
	assert.True(t, tracked)

	f.send(t, keyRunes("x"))
	tabs, err := f.host.ListTabs(context.Background())
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, domain.TabID(2), tabs[0].ID)
	assert.Len(t, f.model.list.Items(), 1)
}

func TestExcludeSelectedTabDomain(t *testing.T) {
	f := newPopupFixture(t, domain.Tab{ID: 1, WindowID: 1, Title: "A", URL: "https://News.Example.com/x"})
	f.load(t)

	f.send(t, keyRunes("e"))

	assert.Equal(t, []string{"news.example.com"}, f.settings.Current().ExcludedDomains)
	assert.Equal(t, "excluded news.example.com", f.model.status)
	assert.Equal(t, 1, f.model.Stats().Excluded)
}

func TestBulkActions(t *testing.T) {
	f := newPopupFixture(t,
		domain.Tab{ID: 1, WindowID: 1, Title: "A", URL: "https://a.example.com"},
		domain.Tab{ID: 2, WindowID: 1, Title: "B", URL: "https://b.example.com"},
	)
	ctx := context.Background()
	require.NoError(t, f.tracker.RecordActivity(ctx, 1))
	require.NoError(t, f.tracker.RecordActivity(ctx, 2))
	f.clock.now = f.clock.now.Add(time.Hour)
	f.load(t)

	f.send(t, keyRunes("P"))
	assert.Equal(t, "pinned 2 tabs", f.model.status)

	f.send(t, keyRunes("U"))
	assert.Equal(t, "unpinned 2 tabs", f.model.status)

	f.send(t, keyRunes("C"))
	assert.Equal(t, "closed 2 tabs", f.model.status)
	assert.Empty(t, f.model.list.Items())
	assert.Contains(t, f.model.View(), "No tabs match.")
}

func TestActionErrorIsShown(t *testing.T) {
	f := newPopupFixture(t, domain.Tab{ID: 1, WindowID: 1, Title: "A", URL: "https://a.example.com"})
	f.load(t)
	require.NoError(t, f.host.RemoveTabs(context.Background(), []domain.TabID{1}))

	f.send(t, keyRunes("x"))

	require.Error(t, f.model.err)
	assert.ErrorIs(t, f.model.err, domain.ErrTabNotFound)
	assert.Contains(t, f.model.View(), "Error:")
}

func TestQuitKeys(t *testing.T) {
	f := newPopupFixture(t)

	_, cmd := f.model.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
