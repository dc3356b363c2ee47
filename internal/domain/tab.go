package domain

import (
	"net/url"
	"strings"
)

type TabID int

type GroupID int

// NoGroup is the group id of a tab that is not part of any group.
const NoGroup GroupID = 0

type Tab struct {
	ID       TabID   `json:"id" yaml:"id"`
	WindowID int     `json:"window_id" yaml:"window_id"`
	Title    string  `json:"title" yaml:"title"`
	URL      string  `json:"url" yaml:"url"`
	Pinned   bool    `json:"pinned" yaml:"pinned"`
	Active   bool    `json:"active" yaml:"active"`
	GroupID  GroupID `json:"group_id,omitempty" yaml:"group_id,omitempty"`
}

func (t Tab) Grouped() bool {
	return t.GroupID != NoGroup
}

func (t Tab) Hostname() (string, error) {
	return Hostname(t.URL)
}

// Hostname returns the lower-cased host of rawURL without port.
func Hostname(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", ErrInvalidURL
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", ErrInvalidURL
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return "", ErrInvalidURL
	}

	return host, nil
}

type GroupColor string

const (
	GroupColorGrey   GroupColor = "grey"
	GroupColorBlue   GroupColor = "blue"
	GroupColorRed    GroupColor = "red"
	GroupColorYellow GroupColor = "yellow"
	GroupColorGreen  GroupColor = "green"
)

type TabGroup struct {
	ID       GroupID    `json:"id" yaml:"id"`
	WindowID int        `json:"window_id" yaml:"window_id"`
	Title    string     `json:"title" yaml:"title"`
	Color    GroupColor `json:"color" yaml:"color"`
}
