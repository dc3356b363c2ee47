package application

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/bnema/tabzen/internal/ports"
)

// ActivityTracker keeps the last-active timestamp of every tab it has seen.
// A nil repository keeps entries in memory only.
type ActivityTracker struct {
	repo   ports.ActivityRepository
	clock  ports.Clock
	logger *slog.Logger

	// writeMu orders each cache change with its repository write, and Reload
	// with both, so a reload never swaps in a file older than the cache.
	writeMu sync.Mutex

	mu      sync.RWMutex
	entries map[domain.TabID]domain.ActivityEntry

	// unsynced holds ids whose last repository write failed. The cache stays
	// authoritative for them across reloads.
	unsynced map[domain.TabID]bool
}

func NewActivityTracker(repo ports.ActivityRepository, clock ports.Clock, logger *slog.Logger) *ActivityTracker {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ActivityTracker{
		repo:     repo,
		clock:    clock,
		logger:   logger,
		entries:  map[domain.TabID]domain.ActivityEntry{},
		unsynced: map[domain.TabID]bool{},
	}
}

// RecordActivity overwrites the tab's entry, which also clears PinnedByPolicy.
func (t *ActivityTracker) RecordActivity(ctx context.Context, id domain.TabID) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	entry := domain.ActivityEntry{TabID: id, LastActiveAt: t.clock.Now()}

	t.mu.Lock()
	t.entries[id] = entry
	t.mu.Unlock()

	return t.persist(ctx, entry)
}

// Inactivity is zero for a tab that was never recorded.
func (t *ActivityTracker) Inactivity(id domain.TabID) time.Duration {
	t.mu.RLock()
	entry, ok := t.entries[id]
	t.mu.RUnlock()

	if !ok {
		return 0
	}

	return entry.Inactivity(t.clock.Now())
}

func (t *ActivityTracker) InactivityMinutes(id domain.TabID) float64 {
	return t.Inactivity(id).Minutes()
}

func (t *ActivityTracker) Forget(ctx context.Context, id domain.TabID) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	t.mu.Lock()
	delete(t.entries, id)
	t.mu.Unlock()

	if t.repo == nil {
		return nil
	}
	err := t.repo.Delete(ctx, id)
	t.markSynced(id, err == nil)
	if err != nil {
		return fmt.Errorf("delete tab activity: %w", err)
	}

	return nil
}

// MarkPinnedByPolicy flags an existing entry. Unknown tabs are left untracked.
func (t *ActivityTracker) MarkPinnedByPolicy(ctx context.Context, id domain.TabID) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	t.mu.Lock()
	entry, ok := t.entries[id]
	if ok {
		entry.PinnedByPolicy = true
		t.entries[id] = entry
	}
	t.mu.Unlock()

	if !ok {
		return nil
	}

	return t.persist(ctx, entry)
}

// Reload replaces the cached entries with the repository contents, picking up
// writes from other processes. Ids whose last write failed keep their cached
// state, and an entry never moves back to an older LastActiveAt. The cache is
// kept on error.
func (t *ActivityTracker) Reload(ctx context.Context) error {
	if t.repo == nil {
		return nil
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	entries, err := t.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list tab activity: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	loaded := make(map[domain.TabID]domain.ActivityEntry, len(entries))
	for _, entry := range entries {
		if cached, ok := t.entries[entry.TabID]; ok && cached.LastActiveAt.After(entry.LastActiveAt) {
			entry = cached
		}
		loaded[entry.TabID] = entry
	}
	for id := range t.unsynced {
		if cached, ok := t.entries[id]; ok {
			loaded[id] = cached
		} else {
			delete(loaded, id)
		}
	}
	t.entries = loaded

	return nil
}

// persist writes entry through to the repository. Callers hold writeMu.
func (t *ActivityTracker) persist(ctx context.Context, entry domain.ActivityEntry) error {
	if t.repo == nil {
		return nil
	}

	err := t.repo.Put(ctx, entry)
	t.markSynced(entry.TabID, err == nil)
	if err != nil {
		return fmt.Errorf("persist tab activity: %w", err)
	}

	return nil
}

func (t *ActivityTracker) markSynced(id domain.TabID, synced bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if synced {
		delete(t.unsynced, id)
		return
	}
	t.unsynced[id] = true
}

func (t *ActivityTracker) Entry(id domain.TabID) (domain.ActivityEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entry, ok := t.entries[id]
	return entry, ok
}

func (t *ActivityTracker) Entries() []domain.ActivityEntry {
	t.mu.RLock()
	entries := make([]domain.ActivityEntry, 0, len(t.entries))
	for _, entry := range t.entries {
		entries = append(entries, entry)
	}
	t.mu.RUnlock()

	slices.SortFunc(entries, func(a, b domain.ActivityEntry) int {
		return int(a.TabID) - int(b.TabID)
	})

	return entries
}

func (t *ActivityTracker) HandleEvent(ctx context.Context, event domain.TabEvent) error {
	switch {
	case event.MarksActivity():
		t.logger.Debug("tab activity", "tab_id", event.TabID, "event", event.Kind)
		return t.RecordActivity(ctx, event.TabID)
	case event.Kind == domain.TabEventRemoved:
		t.logger.Debug("tab removed", "tab_id", event.TabID)
		return t.Forget(ctx, event.TabID)
	default:
		return nil
	}
}
