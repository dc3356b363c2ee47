package application

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/tabzen/internal/adapters/host/memory"
	tomlrepo "github.com/bnema/tabzen/internal/adapters/repo/toml"
	"github.com/bnema/tabzen/internal/domain"
	"github.com/bnema/tabzen/internal/ports/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerSkipsTickWhilePassInFlight(t *testing.T) {
	t.Parallel()

	host := mocks.NewMockTabHost(t)
	clock := newManualClock()
	tracker := NewActivityTracker(nil, clock, nil)
	engine := NewPolicyEngine(host, tracker, clock, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	host.EXPECT().ListTabs(mockAnyContext()).RunAndReturn(func(context.Context) ([]domain.Tab, error) {
		close(entered)
		<-release
		return nil, nil
	}).Once()

	var reports atomic.Int32
	runner := NewRunner(RunnerConfig{
		Events:   mocks.NewMockTabEventSource(t),
		Tracker:  tracker,
		Engine:   engine,
		Settings: NewSettingsStore(mocks.NewMockSettingsRepository(t), nil),
		OnReport: func(domain.Report, error) { reports.Add(1) },
	})

	ctx := context.Background()
	require.True(t, runner.TriggerPass(ctx))
	<-entered

	assert.False(t, runner.TriggerPass(ctx))
	assert.False(t, runner.TriggerPass(ctx))

	close(release)
	runner.Wait()
	assert.Equal(t, int32(1), reports.Load())
}

func TestRunnerFeedsEventsAndRunsPassesUntilCancelled(t *testing.T) {
	t.Parallel()

	host := memory.New(
		domain.Tab{ID: 1, WindowID: 1, Title: "A", URL: "https://a.example.com"},
	)
	clock := newManualClock()
	tracker := NewActivityTracker(nil, clock, nil)
	engine := NewPolicyEngine(host, tracker, clock, nil)

	cfg := viper.New()
	cfg.Set("settings.path", filepath.Join(t.TempDir(), "settings.toml"))
	settingsRepo, err := tomlrepo.NewSettingsRepository(cfg)
	require.NoError(t, err)

	var passes atomic.Int32
	runner := NewRunner(RunnerConfig{
		Events:   host,
		Tracker:  tracker,
		Engine:   engine,
		Settings: NewSettingsStore(settingsRepo, nil),
		Interval: 10 * time.Millisecond,
		OnReport: func(report domain.Report, err error) {
			if err == nil && !report.Skipped {
				passes.Add(1)
			}
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	require.Eventually(t, func() bool {
		host.Emit(domain.TabEvent{Kind: domain.TabEventActivated, TabID: 1, WindowID: 1})
		_, ok := tracker.Entry(1)
		return ok
	}, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool { return passes.Load() > 0 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}

	assert.Zero(t, host.Mutations())
}

func TestRunnerFailsWhenEventStreamCloses(t *testing.T) {
	t.Parallel()

	events := mocks.NewMockTabEventSource(t)
	closed := make(chan domain.TabEvent)
	close(closed)
	events.EXPECT().Events(mockAnyContext()).Return(closed, nil)

	settingsRepo := mocks.NewMockSettingsRepository(t)
	settingsRepo.EXPECT().Load(mockAnyContext()).Return(domain.Settings{}, domain.ErrSettingsNotFound)
	settingsRepo.EXPECT().Watch(mockAnyContext()).Return(make(chan struct{}), nil).Maybe()

	tracker := NewActivityTracker(nil, nil, nil)
	runner := NewRunner(RunnerConfig{
		Events:   events,
		Tracker:  tracker,
		Engine:   NewPolicyEngine(mocks.NewMockTabHost(t), tracker, nil, nil),
		Settings: NewSettingsStore(settingsRepo, nil),
		Interval: time.Hour,
	})

	err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tab event stream closed")
}
