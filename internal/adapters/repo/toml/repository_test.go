package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettingsRepository(t *testing.T) (*SettingsRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.toml")
	config := viper.New()
	config.Set("settings.path", path)

	repo, err := NewSettingsRepository(config)
	require.NoError(t, err)
	return repo, path
}

func newTestActivityRepository(t *testing.T) (*ActivityRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "activity.toml")
	config := viper.New()
	config.Set("activity.path", path)

	repo, err := NewActivityRepository(config)
	require.NoError(t, err)
	return repo, path
}

func TestSettingsRepositoryLoadMissingFile(t *testing.T) {
	t.Parallel()

	repo, _ := newTestSettingsRepository(t)

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrSettingsNotFound)
}

func TestSettingsRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, path := newTestSettingsRepository(t)
	settings := domain.Settings{
		InactivityThreshold: 25,
		ExcludePinnedTabs:   false,
		ExcludedDomains:     []string{"mail.google.com", "github.com"},
		Theme:               domain.ThemeDark,
		AutoPinEnabled:      false,
		ShowStats:           true,
		ShowInactivityTime:  false,
		GroupName:           "Later",
		GroupAction:         domain.GroupActionGroup,
	}

	require.NoError(t, repo.Save(context.Background(), settings))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSettingsRepositoryRoundTripDefaults(t *testing.T) {
	t.Parallel()

	repo, _ := newTestSettingsRepository(t)
	settings := domain.DefaultSettings()

	require.NoError(t, repo.Save(context.Background(), settings))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}

func TestSettingsRepositoryMissingKeysFallBackToDefaults(t *testing.T) {
	t.Parallel()

	repo, path := newTestSettingsRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("[settings]\ninactivity_threshold = 30\n"), 0o600))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.InactivityThreshold = 30
	assert.Equal(t, want, got)
}

func TestSettingsRepositoryMalformedFile(t *testing.T) {
	t.Parallel()

	repo, path := newTestSettingsRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("[settings\nthreshold = "), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode settings.toml")
}

func TestSettingsRepositoryHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	repo, _ := newTestSettingsRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, repo.Save(ctx, domain.DefaultSettings()), context.Canceled)
	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSettingsRepositoryWatchSignalsOnSave(t *testing.T) {
	t.Parallel()

	repo, _ := newTestSettingsRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := repo.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.DefaultSettings()))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change notification")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestActivityRepositoryPutListDelete(t *testing.T) {
	t.Parallel()

	repo, _ := newTestActivityRepository(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 14, 11, 0, 0, 123456789, time.UTC)

	first := domain.ActivityEntry{TabID: 12, LastActiveAt: now}
	second := domain.ActivityEntry{TabID: 3, LastActiveAt: now.Add(-time.Hour), PinnedByPolicy: true}

	require.NoError(t, repo.Put(ctx, first))
	require.NoError(t, repo.Put(ctx, second))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ActivityEntry{second, first}, entries)

	require.NoError(t, repo.Delete(ctx, 3))
	require.NoError(t, repo.Delete(ctx, 99))

	entries, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ActivityEntry{first}, entries)
}

func TestActivityRepositoryPutOverwrites(t *testing.T) {
	t.Parallel()

	repo, _ := newTestActivityRepository(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Put(ctx, domain.ActivityEntry{TabID: 1, LastActiveAt: now, PinnedByPolicy: true}))
	require.NoError(t, repo.Put(ctx, domain.ActivityEntry{TabID: 1, LastActiveAt: now.Add(time.Minute)}))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, now.Add(time.Minute), entries[0].LastActiveAt)
	assert.False(t, entries[0].PinnedByPolicy)
}

func TestActivityRepositoryFileFormat(t *testing.T) {
	t.Parallel()

	repo, path := newTestActivityRepository(t)
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Put(context.Background(), domain.ActivityEntry{TabID: 42, LastActiveAt: now}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "tab_activity")
	assert.Contains(t, string(data), "42")
	assert.Contains(t, string(data), "2026-02-14T11:00:00Z")
	assert.Contains(t, string(data), "is_pinned = false")
}

func TestActivityRepositoryRejectsFutureSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, path := newTestActivityRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("version = 9\n"), 0o600))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported activity schema version 9")
}

func TestActivityRepositoryConcurrentPuts(t *testing.T) {
	t.Parallel()

	repo, _ := newTestActivityRepository(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, repo.Put(ctx, domain.ActivityEntry{TabID: domain.TabID(id), LastActiveAt: now}))
		}(i)
	}
	wg.Wait()

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 20)
	for i, entry := range entries {
		assert.Equal(t, domain.TabID(i+1), entry.TabID, "entry %s", strconv.Itoa(i))
	}
}
