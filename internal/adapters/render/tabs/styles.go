package tabs

import (
	"github.com/bnema/tabzen/internal/adapters/render/theme"
	"github.com/bnema/tabzen/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	section  lipgloss.Style
	statKey  lipgloss.Style
	statVal  lipgloss.Style
	id       lipgloss.Style
	tabTitle lipgloss.Style
	host     lipgloss.Style
	idle     lipgloss.Style
	inactive lipgloss.Style
	pinned   lipgloss.Style
	grouped  lipgloss.Style
	excluded lipgloss.Style
	empty    lipgloss.Style
}

func newStyles(t domain.Theme) styles {
	p := theme.For(t)

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		header:   lipgloss.NewStyle().Foreground(p.Muted),
		section:  lipgloss.NewStyle().Bold(true).Foreground(p.Subtle),
		statKey:  lipgloss.NewStyle().Foreground(p.Subtle),
		statVal:  lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		id:       lipgloss.NewStyle().Foreground(p.Muted),
		tabTitle: lipgloss.NewStyle().Foreground(p.Text),
		host:     lipgloss.NewStyle().Foreground(p.Subtle),
		idle:     lipgloss.NewStyle().Foreground(p.Subtle),
		inactive: lipgloss.NewStyle().Bold(true).Foreground(p.Warning),
		pinned:   lipgloss.NewStyle().Foreground(p.Pinned),
		grouped:  lipgloss.NewStyle().Foreground(p.Grouped),
		excluded: lipgloss.NewStyle().Faint(true),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
