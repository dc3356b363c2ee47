package ports

import (
	"context"

	"github.com/bnema/tabzen/internal/domain"
)

// TabHost is the browser's tab and tab-group API.
type TabHost interface {
	ListTabs(ctx context.Context) ([]domain.Tab, error)
	SetPinned(ctx context.Context, id domain.TabID, pinned bool) error
	RemoveTabs(ctx context.Context, ids []domain.TabID) error
	ActivateTab(ctx context.Context, id domain.TabID) error
	// FindGroup returns domain.ErrGroupNotFound when no group has exactly this title.
	FindGroup(ctx context.Context, title string) (domain.TabGroup, error)
	// GroupTabs adds ids to groupID, or to a new group when groupID is domain.NoGroup.
	GroupTabs(ctx context.Context, groupID domain.GroupID, ids []domain.TabID) (domain.GroupID, error)
	UpdateGroup(ctx context.Context, id domain.GroupID, title string, color domain.GroupColor) error
}

// TabEventSource streams tab lifecycle and window focus events until ctx is done.
type TabEventSource interface {
	Events(ctx context.Context) (<-chan domain.TabEvent, error)
}
