package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/bnema/tabzen/internal/ports"
	"github.com/google/uuid"
)

// PolicyEngine decides which tabs to pin, group or close and applies those
// decisions through the host. Every host call is recorded as an outcome and a
// failed call never stops the rest of the pass.
type PolicyEngine struct {
	host    ports.TabHost
	tracker *ActivityTracker
	clock   ports.Clock
	logger  *slog.Logger
	newID   func() string
}

func NewPolicyEngine(host ports.TabHost, tracker *ActivityTracker, clock ports.Clock, logger *slog.Logger) *PolicyEngine {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &PolicyEngine{
		host:    host,
		tracker: tracker,
		clock:   clock,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// Plan assesses tabs against settings using the tracker's current entries.
func (e *PolicyEngine) Plan(tabs []domain.Tab, settings domain.Settings) domain.Plan {
	assessments := make([]domain.TabAssessment, 0, len(tabs))
	for _, tab := range tabs {
		assessments = append(assessments, domain.Assess(tab, e.tracker.Inactivity(tab.ID), settings))
	}

	return domain.NewPlan(assessments)
}

// Snapshot reloads the tracker, lists the host's tabs and plans against them.
func (e *PolicyEngine) Snapshot(ctx context.Context, settings domain.Settings) (domain.Plan, error) {
	if err := e.tracker.Reload(ctx); err != nil {
		e.logger.Warn("reload tab activity failed, using cached entries", "error", err)
	}

	tabs, err := e.host.ListTabs(ctx)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("list tabs: %w", err)
	}

	return e.Plan(tabs, settings), nil
}

// RunPass is the periodic pass. It does nothing at all when auto-pin is disabled.
func (e *PolicyEngine) RunPass(ctx context.Context, settings domain.Settings) (domain.Report, error) {
	report := e.newReport()
	if !settings.AutoPinEnabled {
		report.Skipped = true
		report.FinishedAt = report.StartedAt
		e.logger.Debug("policy pass skipped, auto-pin disabled", "pass_id", report.PassID)
		return report, nil
	}

	plan, err := e.Snapshot(ctx, settings)
	if err != nil {
		return report, err
	}

	if settings.GroupsTabs() {
		e.groupTabs(ctx, plan.Group, settings, &report)
	}
	if settings.PinsTabs() {
		e.pinTabs(ctx, plan.Pin, plan, &report)
	}

	return e.finish(report, "policy pass"), nil
}

// PinInactive pins every eligible tab that is not pinned yet, regardless of auto-pin.
func (e *PolicyEngine) PinInactive(ctx context.Context, settings domain.Settings) (domain.Report, error) {
	report := e.newReport()

	plan, err := e.Snapshot(ctx, settings)
	if err != nil {
		return report, err
	}

	ids := make([]domain.TabID, 0, len(plan.Pin))
	for _, a := range plan.Assessments {
		if a.PinEligible && !a.Tab.Pinned {
			ids = append(ids, a.Tab.ID)
		}
	}
	e.pinTabs(ctx, ids, plan, &report)

	return e.finish(report, "pin inactive"), nil
}

func (e *PolicyEngine) GroupInactive(ctx context.Context, settings domain.Settings) (domain.Report, error) {
	report := e.newReport()

	plan, err := e.Snapshot(ctx, settings)
	if err != nil {
		return report, err
	}
	e.groupTabs(ctx, plan.Group, settings, &report)

	return e.finish(report, "group inactive"), nil
}

// CloseInactive removes the close eligibility set in one bulk call and falls
// back to one call per tab when the bulk call fails.
func (e *PolicyEngine) CloseInactive(ctx context.Context, settings domain.Settings) (domain.Report, error) {
	report := e.newReport()

	plan, err := e.Snapshot(ctx, settings)
	if err != nil {
		return report, err
	}

	ids := plan.Close()
	if len(ids) == 0 {
		return e.finish(report, "close inactive"), nil
	}

	err = e.host.RemoveTabs(ctx, ids)
	if err == nil {
		for _, id := range ids {
			report.Record(id, domain.ActionClose, nil)
			e.forget(ctx, id)
		}
		return e.finish(report, "close inactive"), nil
	}
	e.logger.Warn("bulk close failed, closing tabs one by one", "error", err)

	for _, id := range ids {
		err := e.host.RemoveTabs(ctx, []domain.TabID{id})
		report.Record(id, domain.ActionClose, err)
		if err == nil {
			e.forget(ctx, id)
		}
	}

	return e.finish(report, "close inactive"), nil
}

// UnpinAll unpins every pinned tab. It is the only path that unpins.
func (e *PolicyEngine) UnpinAll(ctx context.Context) (domain.Report, error) {
	report := e.newReport()

	tabs, err := e.host.ListTabs(ctx)
	if err != nil {
		return report, fmt.Errorf("list tabs: %w", err)
	}

	for _, tab := range tabs {
		if !tab.Pinned {
			continue
		}
		report.Record(tab.ID, domain.ActionUnpin, e.host.SetPinned(ctx, tab.ID, false))
	}

	return e.finish(report, "unpin all"), nil
}

func (e *PolicyEngine) pinTabs(ctx context.Context, ids []domain.TabID, plan domain.Plan, report *domain.Report) {
	pinned := make(map[domain.TabID]bool, len(plan.Assessments))
	for _, a := range plan.Assessments {
		pinned[a.Tab.ID] = a.Tab.Pinned
	}

	for _, id := range ids {
		err := e.host.SetPinned(ctx, id, true)
		report.Record(id, domain.ActionPin, err)
		if err != nil || pinned[id] {
			continue
		}
		if err := e.tracker.MarkPinnedByPolicy(ctx, id); err != nil {
			e.logger.Warn("mark tab pinned by policy failed", "tab_id", id, "error", err)
		}
	}
}

// groupTabs upserts the group named settings.GroupName. An existing group is
// reused, otherwise one group is created and titled.
func (e *PolicyEngine) groupTabs(ctx context.Context, ids []domain.TabID, settings domain.Settings, report *domain.Report) {
	if len(ids) == 0 {
		return
	}

	group, err := e.host.FindGroup(ctx, settings.GroupName)
	switch {
	case err == nil:
		e.addToGroup(ctx, group.ID, ids, report)
		return
	case !errors.Is(err, domain.ErrGroupNotFound):
		for _, id := range ids {
			report.RecordGroup(id, domain.NoGroup, fmt.Errorf("find group %q: %w", settings.GroupName, err))
		}
		return
	}

	groupID, err := e.host.GroupTabs(ctx, domain.NoGroup, ids)
	if err == nil {
		for _, id := range ids {
			report.RecordGroup(id, groupID, nil)
		}
		e.nameGroup(ctx, groupID, settings.GroupName, report)
		return
	}
	e.logger.Warn("bulk group failed, grouping tabs one by one", "error", err)

	for i, id := range ids {
		groupID, err := e.host.GroupTabs(ctx, domain.NoGroup, []domain.TabID{id})
		report.RecordGroup(id, groupID, err)
		if err != nil {
			continue
		}
		e.nameGroup(ctx, groupID, settings.GroupName, report)
		e.addEach(ctx, groupID, ids[i+1:], report)
		return
	}
}

func (e *PolicyEngine) addToGroup(ctx context.Context, groupID domain.GroupID, ids []domain.TabID, report *domain.Report) {
	if _, err := e.host.GroupTabs(ctx, groupID, ids); err != nil {
		e.logger.Warn("bulk group failed, grouping tabs one by one", "group_id", groupID, "error", err)
		e.addEach(ctx, groupID, ids, report)
		return
	}

	for _, id := range ids {
		report.RecordGroup(id, groupID, nil)
	}
}

func (e *PolicyEngine) addEach(ctx context.Context, groupID domain.GroupID, ids []domain.TabID, report *domain.Report) {
	for _, id := range ids {
		_, err := e.host.GroupTabs(ctx, groupID, []domain.TabID{id})
		report.RecordGroup(id, groupID, err)
	}
}

func (e *PolicyEngine) nameGroup(ctx context.Context, groupID domain.GroupID, name string, report *domain.Report) {
	if err := e.host.UpdateGroup(ctx, groupID, name, domain.GroupColorGrey); err != nil {
		report.Outcomes = append(report.Outcomes, domain.Outcome{
			Action:  domain.ActionNameGroup,
			GroupID: groupID,
			Err:     err,
		})
	}
}

func (e *PolicyEngine) forget(ctx context.Context, id domain.TabID) {
	if err := e.tracker.Forget(ctx, id); err != nil {
		e.logger.Warn("forget closed tab failed", "tab_id", id, "error", err)
	}
}

func (e *PolicyEngine) newReport() domain.Report {
	return domain.Report{PassID: e.newID(), StartedAt: e.clock.Now()}
}

func (e *PolicyEngine) finish(report domain.Report, name string) domain.Report {
	report.FinishedAt = e.clock.Now()

	for _, failed := range report.Failed() {
		e.logger.Warn(name+" action failed",
			"pass_id", report.PassID,
			"tab_id", failed.TabID,
			"action", failed.Action,
			"error", failed.Err,
		)
	}
	e.logger.Info(name+" finished",
		"pass_id", report.PassID,
		"pinned", len(report.Succeeded(domain.ActionPin)),
		"grouped", len(report.Succeeded(domain.ActionGroup)),
		"closed", len(report.Succeeded(domain.ActionClose)),
		"unpinned", len(report.Succeeded(domain.ActionUnpin)),
		"failed", len(report.Failed()),
	)

	return report
}
