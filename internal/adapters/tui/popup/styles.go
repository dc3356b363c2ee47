package popup

import (
	"github.com/bnema/tabzen/internal/adapters/render/theme"
	"github.com/bnema/tabzen/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	stats    lipgloss.Style
	statVal  lipgloss.Style
	selected lipgloss.Style
	normal   lipgloss.Style
	muted    lipgloss.Style
	inactive lipgloss.Style
	pinned   lipgloss.Style
	grouped  lipgloss.Style
	status   lipgloss.Style
	err      lipgloss.Style
	help     lipgloss.Style
}

func newStyles(t domain.Theme) styles {
	p := theme.For(t)

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		stats:    lipgloss.NewStyle().Foreground(p.Subtle),
		statVal:  lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.Text).Background(p.Surface),
		normal:   lipgloss.NewStyle().Foreground(p.Text),
		muted:    lipgloss.NewStyle().Foreground(p.Muted),
		inactive: lipgloss.NewStyle().Foreground(p.Warning),
		pinned:   lipgloss.NewStyle().Foreground(p.Pinned),
		grouped:  lipgloss.NewStyle().Foreground(p.Grouped),
		status:   lipgloss.NewStyle().Foreground(p.Success),
		err:      lipgloss.NewStyle().Bold(true).Foreground(p.Danger),
		help:     lipgloss.NewStyle().Foreground(p.Muted),
	}
}
