package memory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/bnema/tabzen/internal/ports"
	"gopkg.in/yaml.v3"
)

var ErrPinnedTabNotGroupable = errors.New("pinned tabs cannot be grouped")

// Host is an in-process browser. It behaves like the real tab APIs where the
// policy depends on it: pinning ungroups a tab and empty groups disappear.
// With a fixture path, state is loaded from and saved to a YAML file.
type Host struct {
	fixture string

	mu          sync.Mutex
	tabs        []domain.Tab
	groups      []domain.TabGroup
	nextGroupID domain.GroupID
	mutations   int
	subs        map[int]chan domain.TabEvent
	nextSub     int
}

var (
	_ ports.TabHost        = (*Host)(nil)
	_ ports.TabEventSource = (*Host)(nil)
)

type fixtureSchema struct {
	Tabs   []domain.Tab      `yaml:"tabs"`
	Groups []domain.TabGroup `yaml:"groups,omitempty"`
}

func New(tabs ...domain.Tab) *Host {
	h := &Host{subs: map[int]chan domain.TabEvent{}}
	h.tabs = append(h.tabs, tabs...)
	h.nextGroupID = 1
	return h
}

// Open loads the fixture at path. A missing file starts an empty browser.
func Open(path string) (*Host, error) {
	h := New()
	h.fixture = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return h, nil
		}
		return nil, fmt.Errorf("read tab fixture: %w", err)
	}

	var fixture fixtureSchema
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("decode tab fixture: %w", err)
	}

	h.tabs = fixture.Tabs
	h.groups = fixture.Groups
	for _, group := range h.groups {
		if group.ID >= h.nextGroupID {
			h.nextGroupID = group.ID + 1
		}
	}

	return h, nil
}

func (h *Host) ListTabs(ctx context.Context) ([]domain.Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return slices.Clone(h.tabs), nil
}

func (h *Host) Groups() []domain.TabGroup {
	h.mu.Lock()
	defer h.mu.Unlock()

	return slices.Clone(h.groups)
}

// Mutations counts every successful state-changing call.
func (h *Host) Mutations() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.mutations
}

func (h *Host) AddTab(ctx context.Context, tab domain.Tab) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.indexOf(tab.ID) >= 0 {
		return fmt.Errorf("tab %d already exists", tab.ID)
	}
	h.tabs = append(h.tabs, tab)

	return h.commit()
}

func (h *Host) SetPinned(ctx context.Context, id domain.TabID, pinned bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.indexOf(id)
	if i < 0 {
		return fmt.Errorf("no tab with id %d: %w", id, domain.ErrTabNotFound)
	}

	h.tabs[i].Pinned = pinned
	if pinned {
		h.tabs[i].GroupID = domain.NoGroup
	}

	return h.commit()
}

// RemoveTabs removes nothing when any id is unknown.
func (h *Host) RemoveTabs(ctx context.Context, ids []domain.TabID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, id := range ids {
		if h.indexOf(id) < 0 {
			return fmt.Errorf("no tab with id %d: %w", id, domain.ErrTabNotFound)
		}
	}

	removed := make([]domain.Tab, 0, len(ids))
	h.tabs = slices.DeleteFunc(h.tabs, func(tab domain.Tab) bool {
		if slices.Contains(ids, tab.ID) {
			removed = append(removed, tab)
			return true
		}
		return false
	})

	if err := h.commit(); err != nil {
		return err
	}
	for _, tab := range removed {
		h.emit(domain.TabEvent{Kind: domain.TabEventRemoved, TabID: tab.ID, WindowID: tab.WindowID})
	}

	return nil
}

func (h *Host) ActivateTab(ctx context.Context, id domain.TabID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.indexOf(id)
	if i < 0 {
		return fmt.Errorf("no tab with id %d: %w", id, domain.ErrTabNotFound)
	}

	window := h.tabs[i].WindowID
	for j := range h.tabs {
		if h.tabs[j].WindowID == window {
			h.tabs[j].Active = j == i
		}
	}

	if err := h.commit(); err != nil {
		return err
	}
	h.emit(domain.TabEvent{Kind: domain.TabEventActivated, TabID: id, WindowID: window})

	return nil
}

func (h *Host) FindGroup(ctx context.Context, title string) (domain.TabGroup, error) {
	if err := ctx.Err(); err != nil {
		return domain.TabGroup{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, group := range h.groups {
		if group.Title == title {
			return group, nil
		}
	}

	return domain.TabGroup{}, domain.ErrGroupNotFound
}

func (h *Host) GroupTabs(ctx context.Context, groupID domain.GroupID, ids []domain.TabID) (domain.GroupID, error) {
	if err := ctx.Err(); err != nil {
		return domain.NoGroup, err
	}
	if len(ids) == 0 {
		return domain.NoGroup, errors.New("no tabs to group")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, id := range ids {
		i := h.indexOf(id)
		if i < 0 {
			return domain.NoGroup, fmt.Errorf("no tab with id %d: %w", id, domain.ErrTabNotFound)
		}
		if h.tabs[i].Pinned {
			return domain.NoGroup, fmt.Errorf("tab %d: %w", id, ErrPinnedTabNotGroupable)
		}
	}

	if groupID == domain.NoGroup {
		groupID = h.nextGroupID
		h.nextGroupID++
		h.groups = append(h.groups, domain.TabGroup{
			ID:       groupID,
			WindowID: h.tabs[h.indexOf(ids[0])].WindowID,
			Color:    domain.GroupColorBlue,
		})
	} else if h.groupIndex(groupID) < 0 {
		return domain.NoGroup, fmt.Errorf("no group with id %d: %w", groupID, domain.ErrGroupNotFound)
	}

	for _, id := range ids {
		h.tabs[h.indexOf(id)].GroupID = groupID
	}

	if err := h.commit(); err != nil {
		return domain.NoGroup, err
	}

	return groupID, nil
}

func (h *Host) UpdateGroup(ctx context.Context, id domain.GroupID, title string, color domain.GroupColor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.groupIndex(id)
	if i < 0 {
		return fmt.Errorf("no group with id %d: %w", id, domain.ErrGroupNotFound)
	}
	h.groups[i].Title = title
	h.groups[i].Color = color

	return h.commit()
}

// Events delivers events until ctx is done. Slow subscribers drop events.
func (h *Host) Events(ctx context.Context) (<-chan domain.TabEvent, error) {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	ch := make(chan domain.TabEvent, 64)
	h.subs[id] = ch
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, id)
		close(ch)
		h.mu.Unlock()
	}()

	return ch, nil
}

// Emit publishes an event as if the browser had fired it.
func (h *Host) Emit(event domain.TabEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.emit(event)
}

func (h *Host) emit(event domain.TabEvent) {
	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

func (h *Host) indexOf(id domain.TabID) int {
	return slices.IndexFunc(h.tabs, func(tab domain.Tab) bool { return tab.ID == id })
}

func (h *Host) groupIndex(id domain.GroupID) int {
	return slices.IndexFunc(h.groups, func(group domain.TabGroup) bool { return group.ID == id })
}

// commit drops empty groups, counts the mutation and saves the fixture.
func (h *Host) commit() error {
	h.groups = slices.DeleteFunc(h.groups, func(group domain.TabGroup) bool {
		return !slices.ContainsFunc(h.tabs, func(tab domain.Tab) bool { return tab.GroupID == group.ID })
	})
	h.mutations++

	if h.fixture == "" {
		return nil
	}

	data, err := yaml.Marshal(fixtureSchema{Tabs: h.tabs, Groups: h.groups})
	if err != nil {
		return fmt.Errorf("encode tab fixture: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(h.fixture), 0o700); err != nil {
		return fmt.Errorf("create fixture directory: %w", err)
	}
	if err := os.WriteFile(h.fixture, data, 0o600); err != nil {
		return fmt.Errorf("write tab fixture: %w", err)
	}

	return nil
}
