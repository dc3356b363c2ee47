package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/tabzen/internal/adapters/host/memory"
	"github.com/bnema/tabzen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTabService(t *testing.T, tabs ...domain.Tab) (*TabService, *memory.Host, *ActivityTracker, *manualClock) {
	t.Helper()

	host := memory.New(tabs...)
	clock := newManualClock()
	tracker := NewActivityTracker(nil, clock, nil)
	engine := NewPolicyEngine(host, tracker, clock, nil)

	return NewTabService(host, tracker, engine), host, tracker, clock
}

func TestTabServiceListTabsFiltersByTitleAndKeepsStats(t *testing.T) {
	t.Parallel()

	service, _, tracker, clock := newTestTabService(t,
		domain.Tab{ID: 1, WindowID: 1, Title: "Go Documentation", URL: "https://go.dev/doc"},
		domain.Tab{ID: 2, WindowID: 1, Title: "Inbox", URL: "https://mail.example.com", Pinned: true},
		domain.Tab{ID: 3, WindowID: 1, Title: "golang/go issues", URL: "https://github.com/golang/go/issues"},
	)
	ctx := context.Background()
	require.NoError(t, tracker.RecordActivity(ctx, 1))
	clock.Advance(15 * time.Minute)
	require.NoError(t, tracker.RecordActivity(ctx, 3))

	listing, err := service.ListTabs(ctx, domain.DefaultSettings(), "  GO ")
	require.NoError(t, err)

	require.Len(t, listing.Tabs, 2)
	assert.Equal(t, domain.TabID(1), listing.Tabs[0].Tab.ID)
	assert.InDelta(t, 15, listing.Tabs[0].InactivityMinutes(), 0.001)
	assert.True(t, listing.Tabs[0].PinEligible)
	assert.Equal(t, domain.TabID(3), listing.Tabs[1].Tab.ID)

	assert.Equal(t, domain.Stats{Total: 3, Pinned: 1, Inactive: 1, Excluded: 1}, listing.Stats)
}

func TestTabServiceListTabsWithoutQueryReturnsEverything(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newTestTabService(t,
		domain.Tab{ID: 1, WindowID: 1, Title: "A", URL: "https://a.example.com"},
		domain.Tab{ID: 2, WindowID: 1, Title: "B"},
	)

	listing, err := service.ListTabs(context.Background(), domain.DefaultSettings(), "")
	require.NoError(t, err)
	assert.Len(t, listing.Tabs, 2)
}

func TestTabServiceOpenRecordsActivity(t *testing.T) {
	t.Parallel()

	service, host, tracker, clock := newTestTabService(t,
		domain.Tab{ID: 1, WindowID: 1, Title: "A", URL: "https://a.example.com"},
		domain.Tab{ID: 2, WindowID: 1, Title: "B", URL: "https://b.example.com", Active: true},
	)
	ctx := context.Background()
	require.NoError(t, tracker.RecordActivity(ctx, 1))
	clock.Advance(time.Hour)

	require.NoError(t, service.Open(ctx, 1))

	assert.Zero(t, tracker.Inactivity(1))
	tabs, err := host.ListTabs(ctx)
	require.NoError(t, err)
	assert.True(t, tabs[0].Active)
	assert.False(t, tabs[1].Active)
}

func TestTabServiceCloseForgetsTab(t *testing.T) {
	t.Parallel()

	service, host, tracker, _ := newTestTabService(t,
		domain.Tab{ID: 1, WindowID: 1, Title: "A", URL: "https://a.example.com"},
	)
	ctx := context.Background()
	require.NoError(t, tracker.RecordActivity(ctx, 1))

	require.NoError(t, service.Close(ctx, 1))

	_, tracked := tracker.Entry(1)
	assert.False(t, tracked)
	tabs, err := host.ListTabs(ctx)
	require.NoError(t, err)
	assert.Empty(t, tabs)
}

func TestTabServiceActionsOnUnknownTab(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newTestTabService(t)
	ctx := context.Background()

	assert.ErrorIs(t, service.Open(ctx, 9), domain.ErrTabNotFound)
	assert.ErrorIs(t, service.Close(ctx, 9), domain.ErrTabNotFound)
	assert.ErrorIs(t, service.SetPinned(ctx, 9, true), domain.ErrTabNotFound)
}

func TestTabServiceSetPinnedTogglesBothWays(t *testing.T) {
	t.Parallel()

	service, host, _, _ := newTestTabService(t,
		domain.Tab{ID: 1, WindowID: 1, Title: "A", URL: "https://a.example.com"},
	)
	ctx := context.Background()

	require.NoError(t, service.SetPinned(ctx, 1, true))
	tabs, _ := host.ListTabs(ctx)
	assert.True(t, tabs[0].Pinned)

	require.NoError(t, service.SetPinned(ctx, 1, false))
	tabs, _ = host.ListTabs(ctx)
	assert.False(t, tabs[0].Pinned)
}
