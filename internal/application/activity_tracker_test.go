package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/bnema/tabzen/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerUnknownTabHasZeroInactivity(t *testing.T) {
	t.Parallel()

	tracker := NewActivityTracker(nil, newManualClock(), nil)

	assert.Zero(t, tracker.InactivityMinutes(99))
	assert.Zero(t, tracker.Inactivity(99))
}

func TestTrackerInactivityGrowsAndResets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	tracker := NewActivityTracker(nil, clock, nil)

	require.NoError(t, tracker.RecordActivity(ctx, 1))
	assert.Zero(t, tracker.InactivityMinutes(1))

	previous := 0.0
	for i := 0; i < 5; i++ {
		clock.Advance(90 * time.Second)
		current := tracker.InactivityMinutes(1)
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}
	assert.InDelta(t, 7.5, previous, 0.001)

	require.NoError(t, tracker.RecordActivity(ctx, 1))
	assert.Zero(t, tracker.InactivityMinutes(1))
}

func TestTrackerForgetIsNoOpForUnknownTab(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	tracker := NewActivityTracker(nil, clock, nil)

	require.NoError(t, tracker.Forget(ctx, 5))

	require.NoError(t, tracker.RecordActivity(ctx, 5))
	clock.Advance(time.Hour)
	require.NoError(t, tracker.Forget(ctx, 5))

	assert.Zero(t, tracker.InactivityMinutes(5))
	assert.Empty(t, tracker.Entries())
}

func TestTrackerRecordActivityClearsPinnedByPolicy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tracker := NewActivityTracker(nil, newManualClock(), nil)

	require.NoError(t, tracker.RecordActivity(ctx, 3))
	require.NoError(t, tracker.MarkPinnedByPolicy(ctx, 3))
	entry, ok := tracker.Entry(3)
	require.True(t, ok)
	assert.True(t, entry.PinnedByPolicy)

	require.NoError(t, tracker.RecordActivity(ctx, 3))
	entry, _ = tracker.Entry(3)
	assert.False(t, entry.PinnedByPolicy)

	require.NoError(t, tracker.MarkPinnedByPolicy(ctx, 4))
	_, ok = tracker.Entry(4)
	assert.False(t, ok)
}

func TestTrackerHandleEvent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	tracker := NewActivityTracker(nil, clock, nil)

	require.NoError(t, tracker.HandleEvent(ctx, domain.TabEvent{Kind: domain.TabEventActivated, TabID: 1}))
	require.NoError(t, tracker.HandleEvent(ctx, domain.TabEvent{Kind: domain.TabEventLoaded, TabID: 2}))
	require.NoError(t, tracker.HandleEvent(ctx, domain.TabEvent{Kind: domain.TabEventWindowFocused, TabID: 3}))
	require.NoError(t, tracker.HandleEvent(ctx, domain.TabEvent{Kind: "moved", TabID: 4}))
	assert.Len(t, tracker.Entries(), 3)

	require.NoError(t, tracker.HandleEvent(ctx, domain.TabEvent{Kind: domain.TabEventRemoved, TabID: 2}))

	entries := tracker.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, domain.TabID(1), entries[0].TabID)
	assert.Equal(t, domain.TabID(3), entries[1].TabID)
}

func TestTrackerWritesThroughToRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	repo := mocks.NewMockActivityRepository(t)
	tracker := NewActivityTracker(repo, clock, nil)

	repo.EXPECT().Put(mockAnyContext(), domain.ActivityEntry{TabID: 7, LastActiveAt: clock.Now()}).Return(nil).Once()
	repo.EXPECT().Put(mockAnyContext(), domain.ActivityEntry{TabID: 7, LastActiveAt: clock.Now(), PinnedByPolicy: true}).Return(nil).Once()
	repo.EXPECT().Delete(mockAnyContext(), domain.TabID(7)).Return(nil).Once()

	require.NoError(t, tracker.RecordActivity(ctx, 7))
	require.NoError(t, tracker.MarkPinnedByPolicy(ctx, 7))
	require.NoError(t, tracker.Forget(ctx, 7))
}

func TestTrackerRecordActivityReportsPersistenceFailure(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockActivityRepository(t)
	tracker := NewActivityTracker(repo, newManualClock(), nil)
	diskFull := errors.New("disk full")

	repo.EXPECT().Put(mockAnyContext(), domain.ActivityEntry{TabID: 1, LastActiveAt: tracker.clock.Now()}).Return(diskFull)

	err := tracker.RecordActivity(context.Background(), 1)
	require.ErrorIs(t, err, diskFull)
	_, ok := tracker.Entry(1)
	assert.True(t, ok)
}

func TestTrackerReloadReplacesCacheAndKeepsItOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	repo := mocks.NewMockActivityRepository(t)
	tracker := NewActivityTracker(repo, clock, nil)

	loaded := []domain.ActivityEntry{{TabID: 9, LastActiveAt: clock.Now().Add(-20 * time.Minute)}}
	repo.EXPECT().List(mockAnyContext()).Return(loaded, nil).Once()
	repo.EXPECT().List(mockAnyContext()).Return(nil, errors.New("locked")).Once()

	require.NoError(t, tracker.Reload(ctx))
	assert.InDelta(t, 20, tracker.InactivityMinutes(9), 0.001)

	require.Error(t, tracker.Reload(ctx))
	assert.Equal(t, loaded, tracker.Entries())
}

// slowActivityRepo is an in-memory repository whose Put blocks until released.
type slowActivityRepo struct {
	mu      sync.Mutex
	entries map[domain.TabID]domain.ActivityEntry

	putEntered chan struct{}
	releasePut chan struct{}
}

func newSlowActivityRepo(seed ...domain.ActivityEntry) *slowActivityRepo {
	r := &slowActivityRepo{
		entries:    map[domain.TabID]domain.ActivityEntry{},
		putEntered: make(chan struct{}, 1),
		releasePut: make(chan struct{}),
	}
	for _, entry := range seed {
		r.entries[entry.TabID] = entry
	}
	return r
}

func (r *slowActivityRepo) List(context.Context) ([]domain.ActivityEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]domain.ActivityEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *slowActivityRepo) Put(_ context.Context, entry domain.ActivityEntry) error {
	r.putEntered <- struct{}{}
	<-r.releasePut

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.TabID] = entry
	return nil
}

func (r *slowActivityRepo) Delete(_ context.Context, id domain.TabID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

func TestTrackerReloadDuringActivityWriteKeepsFreshTimestamp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	repo := newSlowActivityRepo(domain.ActivityEntry{TabID: 1, LastActiveAt: clock.Now()})
	tracker := NewActivityTracker(repo, clock, nil)
	require.NoError(t, tracker.Reload(ctx))

	clock.Advance(30 * time.Minute)
	require.Equal(t, 30*time.Minute, tracker.Inactivity(1))

	recorded := make(chan error, 1)
	go func() { recorded <- tracker.RecordActivity(ctx, 1) }()
	<-repo.putEntered

	reloaded := make(chan error, 1)
	go func() { reloaded <- tracker.Reload(ctx) }()

	close(repo.releasePut)
	require.NoError(t, <-recorded)
	require.NoError(t, <-reloaded)

	assert.Zero(t, tracker.Inactivity(1))
	a := domain.Assess(domain.Tab{ID: 1, URL: "https://go.dev"}, tracker.Inactivity(1), domain.DefaultSettings())
	assert.False(t, a.PinEligible)
}

func TestTrackerReloadKeepsCacheForFailedWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now)
	repo := mocks.NewMockActivityRepository(t)
	tracker := NewActivityTracker(repo, clock, nil)
	diskFull := errors.New("disk full")

	repo.EXPECT().Put(mockAnyContext(), domain.ActivityEntry{TabID: 1, LastActiveAt: now}).Return(diskFull).Once()
	repo.EXPECT().Delete(mockAnyContext(), domain.TabID(2)).Return(diskFull).Once()
	repo.EXPECT().List(mockAnyContext()).Return([]domain.ActivityEntry{
		{TabID: 1, LastActiveAt: now.Add(-30 * time.Minute)},
		{TabID: 2, LastActiveAt: now.Add(-45 * time.Minute)},
		{TabID: 3, LastActiveAt: now.Add(-5 * time.Minute)},
	}, nil).Once()

	require.ErrorIs(t, tracker.RecordActivity(ctx, 1), diskFull)
	require.ErrorIs(t, tracker.Forget(ctx, 2), diskFull)
	require.NoError(t, tracker.Reload(ctx))

	assert.Zero(t, tracker.Inactivity(1))
	_, forgotten := tracker.Entry(2)
	assert.False(t, forgotten)
	assert.InDelta(t, 5, tracker.InactivityMinutes(3), 0.001)
}

func TestTrackerReloadPicksUpDeletesFromOtherProcesses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newManualClock()
	repo := mocks.NewMockActivityRepository(t)
	tracker := NewActivityTracker(repo, clock, nil)

	repo.EXPECT().Put(mockAnyContext(), domain.ActivityEntry{TabID: 4, LastActiveAt: clock.Now()}).Return(nil).Once()
	repo.EXPECT().List(mockAnyContext()).Return([]domain.ActivityEntry{}, nil).Once()

	require.NoError(t, tracker.RecordActivity(ctx, 4))
	require.NoError(t, tracker.Reload(ctx))

	_, ok := tracker.Entry(4)
	assert.False(t, ok)
}
