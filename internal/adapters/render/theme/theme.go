package theme

import (
	"github.com/bnema/tabzen/internal/domain"
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colors every tabzen view draws with.
type Palette struct {
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Subtle  lipgloss.Color
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Pinned  lipgloss.Color
	Grouped lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Success lipgloss.Color
}

// For maps the light theme to catppuccin Latte and the dark theme to Mocha.
func For(t domain.Theme) Palette {
	if t == domain.ThemeDark {
		return fromFlavor(catppuccin.Mocha)
	}

	return fromFlavor(catppuccin.Latte)
}

func fromFlavor(f catppuccin.Flavor) Palette {
	return Palette{
		Accent:  lipgloss.Color(f.Mauve().Hex),
		Text:    lipgloss.Color(f.Text().Hex),
		Subtle:  lipgloss.Color(f.Subtext0().Hex),
		Muted:   lipgloss.Color(f.Overlay1().Hex),
		Surface: lipgloss.Color(f.Surface0().Hex),
		Pinned:  lipgloss.Color(f.Blue().Hex),
		Grouped: lipgloss.Color(f.Teal().Hex),
		Warning: lipgloss.Color(f.Peach().Hex),
		Danger:  lipgloss.Color(f.Red().Hex),
		Success: lipgloss.Color(f.Green().Hex),
	}
}
