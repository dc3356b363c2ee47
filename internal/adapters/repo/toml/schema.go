package toml

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/tabzen/internal/domain"
)

const currentActivitySchemaVersion = 1

type settingsFileSchema struct {
	Settings *settingsSchema `toml:"settings,omitempty"`
}

// settingsSchema uses pointers so that keys missing from the file fall back to defaults.
type settingsSchema struct {
	InactivityThreshold *int      `toml:"inactivity_threshold,omitempty"`
	ExcludePinnedTabs   *bool     `toml:"exclude_pinned_tabs,omitempty"`
	ExcludedDomains     *[]string `toml:"excluded_domains,omitempty"`
	Theme               *string   `toml:"theme,omitempty"`
	AutoPinEnabled      *bool     `toml:"auto_pin_enabled,omitempty"`
	ShowStats           *bool     `toml:"show_stats,omitempty"`
	ShowInactivityTime  *bool     `toml:"show_inactivity_time,omitempty"`
	GroupName           *string   `toml:"group_name,omitempty"`
	GroupAction         *string   `toml:"group_action,omitempty"`
}

type activityFileSchema struct {
	Version     int                          `toml:"version"`
	TabActivity map[string]tabActivitySchema `toml:"tab_activity"`
}

type tabActivitySchema struct {
	LastActiveAt string `toml:"last_active_at"`
	IsPinned     bool   `toml:"is_pinned"`
}

func (s *activityFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentActivitySchemaVersion
	}
	if s.TabActivity == nil {
		s.TabActivity = map[string]tabActivitySchema{}
	}
}

func (s activityFileSchema) validateVersion() error {
	if s.Version > currentActivitySchemaVersion {
		return fmt.Errorf("unsupported activity schema version %d (current %d)", s.Version, currentActivitySchemaVersion)
	}

	return nil
}

func toSettingsSchema(s domain.Settings) *settingsSchema {
	domains := append([]string{}, s.ExcludedDomains...)
	theme := string(s.Theme)
	action := string(s.GroupAction)

	return &settingsSchema{
		InactivityThreshold: &s.InactivityThreshold,
		ExcludePinnedTabs:   &s.ExcludePinnedTabs,
		ExcludedDomains:     &domains,
		Theme:               &theme,
		AutoPinEnabled:      &s.AutoPinEnabled,
		ShowStats:           &s.ShowStats,
		ShowInactivityTime:  &s.ShowInactivityTime,
		GroupName:           &s.GroupName,
		GroupAction:         &action,
	}
}

func fromSettingsSchema(schema settingsSchema) domain.Settings {
	s := domain.DefaultSettings()

	if schema.InactivityThreshold != nil {
		s.InactivityThreshold = *schema.InactivityThreshold
	}
	if schema.ExcludePinnedTabs != nil {
		s.ExcludePinnedTabs = *schema.ExcludePinnedTabs
	}
	if schema.ExcludedDomains != nil {
		s.ExcludedDomains = append([]string{}, (*schema.ExcludedDomains)...)
	}
	if schema.Theme != nil {
		s.Theme = domain.Theme(*schema.Theme)
	}
	if schema.AutoPinEnabled != nil {
		s.AutoPinEnabled = *schema.AutoPinEnabled
	}
	if schema.ShowStats != nil {
		s.ShowStats = *schema.ShowStats
	}
	if schema.ShowInactivityTime != nil {
		s.ShowInactivityTime = *schema.ShowInactivityTime
	}
	if schema.GroupName != nil {
		s.GroupName = *schema.GroupName
	}
	if schema.GroupAction != nil {
		s.GroupAction = domain.GroupAction(*schema.GroupAction)
	}

	return s
}

func toTabActivitySchema(entry domain.ActivityEntry) tabActivitySchema {
	return tabActivitySchema{
		LastActiveAt: formatTime(entry.LastActiveAt),
		IsPinned:     entry.PinnedByPolicy,
	}
}

func fromTabActivitySchema(key string, schema tabActivitySchema) (domain.ActivityEntry, error) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return domain.ActivityEntry{}, fmt.Errorf("parse tab id %q: %w", key, err)
	}

	return domain.ActivityEntry{
		TabID:          domain.TabID(id),
		LastActiveAt:   parseTime(schema.LastActiveAt),
		PinnedByPolicy: schema.IsPinned,
	}, nil
}

func tabKey(id domain.TabID) string {
	return strconv.Itoa(int(id))
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
