package popup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.styles.title.Render("TabZen"))
	b.WriteString("\n")
	if m.showStats {
		b.WriteString(m.renderStats())
		b.WriteString("\n")
	}
	b.WriteString(m.search.View())
	b.WriteString("\n")

	switch {
	case !m.loaded:
		b.WriteString(m.styles.muted.Render("Loading tabs..."))
	case len(m.list.Items()) == 0:
		b.WriteString(m.styles.muted.Render("No tabs match."))
	default:
		b.WriteString(m.list.View())
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.err.Render("Error: " + m.err.Error()))
	case m.listErr != nil:
		b.WriteString(m.styles.err.Render("Error: " + m.listErr.Error()))
	case m.status != "":
		b.WriteString(m.styles.status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderStats() string {
	parts := []string{
		m.stat("total", m.stats.Total),
		m.stat("pinned", m.stats.Pinned),
		m.stat("grouped", m.stats.Grouped),
		m.stat("inactive", m.stats.Inactive),
		m.stat("excluded", m.stats.Excluded),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}

func (m Model) stat(name string, value int) string {
	return m.styles.stats.Render(name+" ") + m.styles.statVal.Render(fmt.Sprintf("%d", value))
}

func (m Model) renderHelp() string {
	bindings := m.keys.help()
	help := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		help = append(help, h.Key+":"+h.Desc)
	}

	return m.styles.help.Render(strings.Join(help, " | "))
}
