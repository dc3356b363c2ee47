package domain

import "time"

type ExclusionReason string

const (
	ExclusionNone   ExclusionReason = ""
	ExclusionPinned ExclusionReason = "pinned"
	ExclusionDomain ExclusionReason = "excluded_domain"
)

type TabAssessment struct {
	Tab           Tab
	Inactivity    time.Duration
	Excluded      bool
	Reason        ExclusionReason
	PinEligible   bool
	GroupEligible bool
}

func (a TabAssessment) InactivityMinutes() float64 {
	return a.Inactivity.Minutes()
}

// Assess applies the exclusion filter and the pin and group/close eligibility rules to one tab.
func Assess(tab Tab, inactivity time.Duration, s Settings) TabAssessment {
	a := TabAssessment{Tab: tab, Inactivity: inactivity}

	switch {
	case tab.Pinned && s.ExcludePinnedTabs:
		a.Excluded = true
		a.Reason = ExclusionPinned
	case s.IsDomainExcluded(tab.URL):
		a.Excluded = true
		a.Reason = ExclusionDomain
	}
	if a.Excluded {
		return a
	}

	threshold := time.Duration(s.InactivityThreshold) * time.Minute
	a.PinEligible = inactivity >= threshold
	a.GroupEligible = a.PinEligible && !tab.Pinned

	return a
}

type Plan struct {
	Assessments []TabAssessment
	Pin         []TabID
	Group       []TabID
}

// Close returns the close eligibility set, which matches the group set.
func (p Plan) Close() []TabID {
	return p.Group
}

func NewPlan(assessments []TabAssessment) Plan {
	plan := Plan{Assessments: assessments}
	for _, a := range assessments {
		if a.PinEligible {
			plan.Pin = append(plan.Pin, a.Tab.ID)
		}
		if a.GroupEligible {
			plan.Group = append(plan.Group, a.Tab.ID)
		}
	}

	return plan
}

type Stats struct {
	Total    int `json:"total" yaml:"total"`
	Pinned   int `json:"pinned" yaml:"pinned"`
	Grouped  int `json:"grouped" yaml:"grouped"`
	Inactive int `json:"inactive" yaml:"inactive"`
	Excluded int `json:"excluded" yaml:"excluded"`
}

func ComputeStats(assessments []TabAssessment) Stats {
	stats := Stats{Total: len(assessments)}
	for _, a := range assessments {
		if a.Tab.Pinned {
			stats.Pinned++
		}
		if a.Tab.Grouped() {
			stats.Grouped++
		}
		if a.PinEligible {
			stats.Inactive++
		}
		if a.Excluded {
			stats.Excluded++
		}
	}

	return stats
}
