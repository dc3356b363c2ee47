package domain

import "time"

type ActivityEntry struct {
	TabID          TabID
	LastActiveAt   time.Time
	PinnedByPolicy bool
}

// Inactivity never returns a negative duration, even when now is before LastActiveAt.
func (e ActivityEntry) Inactivity(now time.Time) time.Duration {
	if e.LastActiveAt.IsZero() {
		return 0
	}

	elapsed := now.Sub(e.LastActiveAt)
	if elapsed < 0 {
		return 0
	}

	return elapsed
}

type TabEventKind string

const (
	TabEventActivated     TabEventKind = "activated"
	TabEventLoaded        TabEventKind = "loaded"
	TabEventWindowFocused TabEventKind = "window_focused"
	TabEventRemoved       TabEventKind = "removed"
)

type TabEvent struct {
	Kind     TabEventKind
	TabID    TabID
	WindowID int
}

// MarksActivity reports whether the event stamps the tab as active.
func (e TabEvent) MarksActivity() bool {
	switch e.Kind {
	case TabEventActivated, TabEventLoaded, TabEventWindowFocused:
		return true
	default:
		return false
	}
}
