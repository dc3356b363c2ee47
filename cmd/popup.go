package cmd

import (
	"fmt"

	"github.com/bnema/tabzen/internal/adapters/tui/popup"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPopupCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "popup",
		Short: "Browse tabs interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.settings.Load(cmd.Context()); err != nil {
				return err
			}

			p := tea.NewProgram(
				popup.New(popup.Options{
					Context:  cmd.Context(),
					Tabs:     app.tabs,
					Policy:   app.engine,
					Settings: app.settings,
				}),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run popup: %w", err)
			}

			return nil
		},
	}
}
