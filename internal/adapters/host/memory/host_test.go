package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTabs() []domain.Tab {
	return []domain.Tab{
		{ID: 1, WindowID: 1, Title: "Docs", URL: "https://docs.example.com", Active: true},
		{ID: 2, WindowID: 1, Title: "Mail", URL: "https://mail.example.com"},
		{ID: 3, WindowID: 2, Title: "News", URL: "https://news.example.com", Active: true},
	}
}

func TestHostPinningUngroupsAndDropsEmptyGroups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	host := New(testTabs()...)

	groupID, err := host.GroupTabs(ctx, domain.NoGroup, []domain.TabID{1, 2})
	require.NoError(t, err)
	require.NoError(t, host.UpdateGroup(ctx, groupID, "Inactive Tabs", domain.GroupColorGrey))

	group, err := host.FindGroup(ctx, "Inactive Tabs")
	require.NoError(t, err)
	assert.Equal(t, groupID, group.ID)
	assert.Equal(t, domain.GroupColorGrey, group.Color)

	require.NoError(t, host.SetPinned(ctx, 1, true))
	require.NoError(t, host.SetPinned(ctx, 2, true))

	tabs, err := host.ListTabs(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NoGroup, tabs[0].GroupID)
	assert.True(t, tabs[0].Pinned)

	_, err = host.FindGroup(ctx, "Inactive Tabs")
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
	assert.Equal(t, 4, host.Mutations())
}

func TestHostRejectsUnknownTabs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	host := New(testTabs()...)

	assert.ErrorIs(t, host.SetPinned(ctx, 42, true), domain.ErrTabNotFound)
	assert.ErrorIs(t, host.RemoveTabs(ctx, []domain.TabID{1, 42}), domain.ErrTabNotFound)
	_, err := host.GroupTabs(ctx, 7, []domain.TabID{1})
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)

	tabs, err := host.ListTabs(ctx)
	require.NoError(t, err)
	assert.Len(t, tabs, 3)
	assert.Zero(t, host.Mutations())
}

func TestHostRefusesToGroupPinnedTabs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	host := New(domain.Tab{ID: 1, WindowID: 1, Pinned: true})

	_, err := host.GroupTabs(ctx, domain.NoGroup, []domain.TabID{1})
	assert.ErrorIs(t, err, ErrPinnedTabNotGroupable)
}

func TestHostEmitsEventsToSubscribers(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	host := New(testTabs()...)

	events, err := host.Events(ctx)
	require.NoError(t, err)

	require.NoError(t, host.ActivateTab(context.Background(), 2))
	require.NoError(t, host.RemoveTabs(context.Background(), []domain.TabID{3}))

	assert.Equal(t, domain.TabEvent{Kind: domain.TabEventActivated, TabID: 2, WindowID: 1}, receive(t, events))
	assert.Equal(t, domain.TabEvent{Kind: domain.TabEventRemoved, TabID: 3, WindowID: 2}, receive(t, events))

	tabs, err := host.ListTabs(context.Background())
	require.NoError(t, err)
	assert.False(t, tabs[0].Active)
	assert.True(t, tabs[1].Active)

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestHostFixturePersistsAcrossOpens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tabs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`tabs:
  - id: 1
    window_id: 1
    title: Docs
    url: https://docs.example.com
  - id: 2
    window_id: 1
    title: Mail
    url: https://mail.example.com
`), 0o600))

	host, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, host.SetPinned(ctx, 2, true))

	reopened, err := Open(path)
	require.NoError(t, err)
	tabs, err := reopened.ListTabs(ctx)
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, "Docs", tabs[0].Title)
	assert.True(t, tabs[1].Pinned)
}

func TestHostOpenMissingFixtureStartsEmpty(t *testing.T) {
	t.Parallel()

	host, err := Open(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	tabs, err := host.ListTabs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tabs)
}

func receive(t *testing.T, events <-chan domain.TabEvent) domain.TabEvent {
	t.Helper()

	select {
	case event := <-events:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tab event")
		return domain.TabEvent{}
	}
}
