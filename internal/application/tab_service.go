package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/bnema/tabzen/internal/ports"
)

type TabListing struct {
	Tabs  []domain.TabAssessment
	Stats domain.Stats
}

// TabService backs the popup: listings with inactivity, stats and per-tab actions.
type TabService struct {
	host    ports.TabHost
	tracker *ActivityTracker
	engine  *PolicyEngine
}

func NewTabService(host ports.TabHost, tracker *ActivityTracker, engine *PolicyEngine) *TabService {
	return &TabService{host: host, tracker: tracker, engine: engine}
}

// ListTabs filters by a case-insensitive title match. Stats always cover every tab.
func (s *TabService) ListTabs(ctx context.Context, settings domain.Settings, query string) (TabListing, error) {
	plan, err := s.engine.Snapshot(ctx, settings)
	if err != nil {
		return TabListing{}, err
	}

	listing := TabListing{Stats: domain.ComputeStats(plan.Assessments)}
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, a := range plan.Assessments {
		if needle != "" && !strings.Contains(strings.ToLower(a.Tab.Title), needle) {
			continue
		}
		listing.Tabs = append(listing.Tabs, a)
	}

	return listing, nil
}

func (s *TabService) SetPinned(ctx context.Context, id domain.TabID, pinned bool) error {
	if err := s.host.SetPinned(ctx, id, pinned); err != nil {
		return fmt.Errorf("set tab %d pinned=%t: %w", id, pinned, err)
	}

	return nil
}

func (s *TabService) Close(ctx context.Context, id domain.TabID) error {
	if err := s.host.RemoveTabs(ctx, []domain.TabID{id}); err != nil {
		return fmt.Errorf("close tab %d: %w", id, err)
	}

	if err := s.tracker.Forget(ctx, id); err != nil {
		return fmt.Errorf("forget closed tab %d: %w", id, err)
	}

	return nil
}

// Open focuses the tab and stamps it active.
func (s *TabService) Open(ctx context.Context, id domain.TabID) error {
	if err := s.host.ActivateTab(ctx, id); err != nil {
		return fmt.Errorf("open tab %d: %w", id, err)
	}

	if err := s.tracker.RecordActivity(ctx, id); err != nil {
		return fmt.Errorf("record tab %d activity: %w", id, err)
	}

	return nil
}
