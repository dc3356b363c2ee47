package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bnema/tabzen/internal/adapters/tui/settingsform"
	"github.com/bnema/tabzen/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change TabZen settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		&cobra.Command{
			Use:   "reset",
			Short: "Restore default settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := app.settings.Reset(cmd.Context()); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "settings reset to defaults")
				return err
			},
		},
		newSettingsEditCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			settings, err := app.settings.Load(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), output, settings, func(w io.Writer) error {
				return writeSettingsText(w, settings, app.settingsPath)
			})
		},
	}
	addOutputFlag(cmd, &output)

	return cmd
}

func writeSettingsText(w io.Writer, s domain.Settings, path string) error {
	domains := "(none)"
	if len(s.ExcludedDomains) > 0 {
		domains = strings.Join(s.ExcludedDomains, ", ")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"inactivity threshold", fmt.Sprintf("%d min", s.InactivityThreshold)},
		{"exclude pinned tabs", fmt.Sprintf("%t", s.ExcludePinnedTabs)},
		{"excluded domains", domains},
		{"theme", string(s.Theme)},
		{"auto-pin enabled", fmt.Sprintf("%t", s.AutoPinEnabled)},
		{"show stats", fmt.Sprintf("%t", s.ShowStats)},
		{"show inactivity time", fmt.Sprintf("%t", s.ShowInactivityTime)},
		{"group name", s.GroupName},
		{"group action", string(s.GroupAction)},
		{"file", path},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func newSettingsSetCmd(app *app) *cobra.Command {
	var (
		threshold     int
		excludePinned bool
		domains       []string
		theme         string
		autoPin       bool
		showStats     bool
		showIdle      bool
		groupName     string
		groupAction   string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if !anyChanged(cmd, settingsFlagNames...) {
				return errors.New("settings set requires at least one setting flag")
			}

			var parsedTheme domain.Theme
			if flags.Changed("theme") {
				t, err := domain.ParseTheme(theme)
				if err != nil {
					return err
				}
				parsedTheme = t
			}
			var parsedAction domain.GroupAction
			if flags.Changed("group-action") {
				a, err := domain.ParseGroupAction(groupAction)
				if err != nil {
					return err
				}
				parsedAction = a
			}

			settings, err := app.settings.Update(cmd.Context(), func(s *domain.Settings) {
				if flags.Changed("threshold") {
					s.InactivityThreshold = threshold
				}
				if flags.Changed("exclude-pinned") {
					s.ExcludePinnedTabs = excludePinned
				}
				if flags.Changed("domains") {
					s.ExcludedDomains = domains
				}
				if flags.Changed("theme") {
					s.Theme = parsedTheme
				}
				if flags.Changed("auto-pin") {
					s.AutoPinEnabled = autoPin
				}
				if flags.Changed("show-stats") {
					s.ShowStats = showStats
				}
				if flags.Changed("show-inactivity") {
					s.ShowInactivityTime = showIdle
				}
				if flags.Changed("group-name") {
					s.GroupName = groupName
				}
				if flags.Changed("group-action") {
					s.GroupAction = parsedAction
				}
			})
			if err != nil {
				return err
			}

			return writeSettingsText(cmd.OutOrStdout(), settings, app.settingsPath)
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", domain.DefaultInactivityThreshold, "Minutes without activity before a tab is inactive")
	cmd.Flags().BoolVar(&excludePinned, "exclude-pinned", true, "Never touch tabs that are already pinned")
	cmd.Flags().StringSliceVar(&domains, "domains", nil, "Replace the excluded domain list")
	cmd.Flags().StringVar(&theme, "theme", string(domain.ThemeLight), "Theme: light or dark")
	cmd.Flags().BoolVar(&autoPin, "auto-pin", true, "Run the periodic policy pass")
	cmd.Flags().BoolVar(&showStats, "show-stats", true, "Show tab stats in listings")
	cmd.Flags().BoolVar(&showIdle, "show-inactivity", true, "Show inactivity time in listings")
	cmd.Flags().StringVar(&groupName, "group-name", domain.DefaultGroupName, "Title of the inactive tab group")
	cmd.Flags().StringVar(&groupAction, "group-action", string(domain.GroupActionBoth), "What to do with inactive tabs: pin, group or both")

	return cmd
}

var settingsFlagNames = []string{
	"threshold", "exclude-pinned", "domains", "theme", "auto-pin",
	"show-stats", "show-inactivity", "group-name", "group-action",
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func newSettingsEditCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := app.settings.Load(cmd.Context())
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				settingsform.New(cmd.Context(), app.settings, current),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			finalModel, err := p.Run()
			if err != nil {
				return fmt.Errorf("run settings form: %w", err)
			}

			form, ok := finalModel.(settingsform.Model)
			if !ok {
				return fmt.Errorf("unexpected final settings form model type %T", finalModel)
			}

			saved, err := form.Result()
			if errors.Is(err, settingsform.ErrCancelled) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "settings unchanged")
				return err
			}
			if err != nil {
				return err
			}

			return writeSettingsText(cmd.OutOrStdout(), saved, app.settingsPath)
		},
	}
}
