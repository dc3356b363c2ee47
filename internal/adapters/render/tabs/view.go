package tabs

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bnema/tabzen/internal/application"
	"github.com/bnema/tabzen/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const maxTitleWidth = 48

type RenderOptions struct {
	Theme              domain.Theme
	ShowStats          bool
	ShowInactivityTime bool
}

// OptionsFrom reads the display toggles out of the user settings.
func OptionsFrom(s domain.Settings) RenderOptions {
	return RenderOptions{
		Theme:              s.Theme,
		ShowStats:          s.ShowStats,
		ShowInactivityTime: s.ShowInactivityTime,
	}
}

func renderView(listing application.TabListing, sections []section, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("TabZen"),
		s.header.Render(fmt.Sprintf("tabs: %d", len(listing.Tabs))),
	}

	if opts.ShowStats {
		lines = append(lines, renderStats(listing.Stats, s))
	}

	if len(listing.Tabs) == 0 {
		lines = append(lines, s.empty.Render("No tabs found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, sec := range sections {
		lines = append(lines, "", s.section.Render(fmt.Sprintf("%s (%d)", sec.title, len(sec.tabs))))
		for _, a := range sec.tabs {
			lines = append(lines, renderTab(a, opts, s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStats(stats domain.Stats, s styles) string {
	pairs := []struct {
		key   string
		value int
	}{
		{"total", stats.Total},
		{"pinned", stats.Pinned},
		{"grouped", stats.Grouped},
		{"inactive", stats.Inactive},
		{"excluded", stats.Excluded},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, s.statKey.Render(p.key+":")+" "+s.statVal.Render(fmt.Sprintf("%d", p.value)))
	}

	return strings.Join(parts, "  ")
}

func renderTab(a domain.TabAssessment, opts RenderOptions, s styles) string {
	parts := []string{
		s.id.Render(fmt.Sprintf("%6d", a.Tab.ID)),
		badges(a.Tab, s),
		s.tabTitle.Render(truncate(displayTitle(a.Tab), maxTitleWidth)),
	}

	if host, err := a.Tab.Hostname(); err == nil {
		parts = append(parts, s.host.Render(host))
	}

	if opts.ShowInactivityTime {
		idle := domain.FormatInactivity(a.InactivityMinutes())
		if a.PinEligible {
			parts = append(parts, s.inactive.Render(idle))
		} else {
			parts = append(parts, s.idle.Render(idle))
		}
	}

	line := strings.Join(parts, " ")
	if a.Excluded {
		return s.excluded.Render(line + " (excluded: " + excludedLabel(a.Reason) + ")")
	}

	return line
}

func badges(tab domain.Tab, s styles) string {
	pin := " "
	if tab.Pinned {
		pin = s.pinned.Render("P")
	}
	group := " "
	if tab.Grouped() {
		group = s.grouped.Render("G")
	}

	return "[" + pin + group + "]"
}

func excludedLabel(reason domain.ExclusionReason) string {
	switch reason {
	case domain.ExclusionPinned:
		return "pinned"
	case domain.ExclusionDomain:
		return "domain"
	default:
		return "unknown"
	}
}

func displayTitle(tab domain.Tab) string {
	title := strings.TrimSpace(tab.Title)
	if title == "" {
		return "(untitled)"
	}

	return title
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}

	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}
