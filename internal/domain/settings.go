package domain

import (
	"fmt"
	"slices"
	"strings"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type GroupAction string

const (
	GroupActionPin   GroupAction = "pin"
	GroupActionGroup GroupAction = "group"
	GroupActionBoth  GroupAction = "both"
)

const (
	DefaultInactivityThreshold = 10
	DefaultGroupName           = "Inactive Tabs"
	MinInactivityThreshold     = 1
)

type Settings struct {
	InactivityThreshold int         `json:"inactivity_threshold" yaml:"inactivity_threshold"`
	ExcludePinnedTabs   bool        `json:"exclude_pinned_tabs" yaml:"exclude_pinned_tabs"`
	ExcludedDomains     []string    `json:"excluded_domains" yaml:"excluded_domains"`
	Theme               Theme       `json:"theme" yaml:"theme"`
	AutoPinEnabled      bool        `json:"auto_pin_enabled" yaml:"auto_pin_enabled"`
	ShowStats           bool        `json:"show_stats" yaml:"show_stats"`
	ShowInactivityTime  bool        `json:"show_inactivity_time" yaml:"show_inactivity_time"`
	GroupName           string      `json:"group_name" yaml:"group_name"`
	GroupAction         GroupAction `json:"group_action" yaml:"group_action"`
}

func DefaultSettings() Settings {
	return Settings{
		InactivityThreshold: DefaultInactivityThreshold,
		ExcludePinnedTabs:   true,
		ExcludedDomains:     []string{},
		Theme:               ThemeLight,
		AutoPinEnabled:      true,
		ShowStats:           true,
		ShowInactivityTime:  true,
		GroupName:           DefaultGroupName,
		GroupAction:         GroupActionBoth,
	}
}

func ParseTheme(raw string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: unknown theme %q", ErrInvalidSettings, raw)
	}
}

func ParseGroupAction(raw string) (GroupAction, error) {
	switch GroupAction(strings.ToLower(strings.TrimSpace(raw))) {
	case GroupActionPin:
		return GroupActionPin, nil
	case GroupActionGroup:
		return GroupActionGroup, nil
	case GroupActionBoth:
		return GroupActionBoth, nil
	default:
		return "", fmt.Errorf("%w: unknown group action %q", ErrInvalidSettings, raw)
	}
}

// Normalize trims and lower-cases excluded domains, dropping blanks and duplicates.
func (s Settings) Normalize() Settings {
	domains := make([]string, 0, len(s.ExcludedDomains))
	for _, raw := range s.ExcludedDomains {
		domain := strings.ToLower(strings.TrimSpace(raw))
		if domain == "" || slices.Contains(domains, domain) {
			continue
		}
		domains = append(domains, domain)
	}
	s.ExcludedDomains = domains
	s.GroupName = strings.TrimSpace(s.GroupName)

	return s
}

func (s Settings) Validate() error {
	if s.InactivityThreshold < MinInactivityThreshold {
		return fmt.Errorf("%w: inactivity threshold must be at least %d minute, got %d", ErrInvalidSettings, MinInactivityThreshold, s.InactivityThreshold)
	}

	for i, domain := range s.ExcludedDomains {
		if strings.TrimSpace(domain) == "" {
			return fmt.Errorf("%w: excluded domain %d is empty", ErrInvalidSettings, i)
		}
	}

	if _, err := ParseTheme(string(s.Theme)); err != nil {
		return err
	}

	if _, err := ParseGroupAction(string(s.GroupAction)); err != nil {
		return err
	}

	if strings.TrimSpace(s.GroupName) == "" {
		return fmt.Errorf("%w: group name is empty", ErrInvalidSettings)
	}

	return nil
}

// IsDomainExcluded fails open: a URL without a parsable hostname is never excluded.
func (s Settings) IsDomainExcluded(rawURL string) bool {
	host, err := Hostname(rawURL)
	if err != nil {
		return false
	}

	return slices.Contains(s.ExcludedDomains, host)
}

func (s Settings) PinsTabs() bool {
	return s.GroupAction == GroupActionPin || s.GroupAction == GroupActionBoth
}

func (s Settings) GroupsTabs() bool {
	return s.GroupAction == GroupActionGroup || s.GroupAction == GroupActionBoth
}

func (s Settings) WithExcludedDomain(host string) Settings {
	s.ExcludedDomains = append(slices.Clone(s.ExcludedDomains), host)
	return s.Normalize()
}

func (s Settings) WithoutExcludedDomain(host string) Settings {
	target := strings.ToLower(strings.TrimSpace(host))
	s.ExcludedDomains = slices.DeleteFunc(slices.Clone(s.ExcludedDomains), func(d string) bool {
		return d == target
	})
	return s
}

// Sanitize coerces out-of-range or unknown fields back to their defaults.
func (s Settings) Sanitize() Settings {
	defaults := DefaultSettings()
	s = s.Normalize()

	if s.InactivityThreshold < MinInactivityThreshold {
		s.InactivityThreshold = defaults.InactivityThreshold
	}
	if theme, err := ParseTheme(string(s.Theme)); err != nil {
		s.Theme = defaults.Theme
	} else {
		s.Theme = theme
	}
	if action, err := ParseGroupAction(string(s.GroupAction)); err != nil {
		s.GroupAction = defaults.GroupAction
	} else {
		s.GroupAction = action
	}
	if s.GroupName == "" {
		s.GroupName = defaults.GroupName
	}

	return s
}

func (s Settings) Equal(other Settings) bool {
	return s.InactivityThreshold == other.InactivityThreshold &&
		s.ExcludePinnedTabs == other.ExcludePinnedTabs &&
		slices.Equal(s.ExcludedDomains, other.ExcludedDomains) &&
		s.Theme == other.Theme &&
		s.AutoPinEnabled == other.AutoPinEnabled &&
		s.ShowStats == other.ShowStats &&
		s.ShowInactivityTime == other.ShowInactivityTime &&
		s.GroupName == other.GroupName &&
		s.GroupAction == other.GroupAction
}
