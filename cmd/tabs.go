package cmd

import (
	"fmt"
	"io"
	"strconv"

	tabsrender "github.com/bnema/tabzen/internal/adapters/render/tabs"
	"github.com/bnema/tabzen/internal/application"
	"github.com/bnema/tabzen/internal/domain"
	"github.com/spf13/cobra"
)

func newTabsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "List tabs and act on a single tab",
	}

	cmd.AddCommand(
		newTabsListCmd(app),
		newTabActionCmd("pin <tab-id>", "Pin a tab", "pinned", func(cmd *cobra.Command, id domain.TabID) error {
			return app.tabs.SetPinned(cmd.Context(), id, true)
		}),
		newTabActionCmd("unpin <tab-id>", "Unpin a tab", "unpinned", func(cmd *cobra.Command, id domain.TabID) error {
			return app.tabs.SetPinned(cmd.Context(), id, false)
		}),
		newTabActionCmd("close <tab-id>", "Close a tab", "closed", func(cmd *cobra.Command, id domain.TabID) error {
			return app.tabs.Close(cmd.Context(), id)
		}),
		newTabActionCmd("open <tab-id>", "Focus a tab and mark it active", "opened", func(cmd *cobra.Command, id domain.TabID) error {
			return app.tabs.Open(cmd.Context(), id)
		}),
	)

	return cmd
}

type tabView struct {
	ID              domain.TabID           `json:"id" yaml:"id"`
	WindowID        int                    `json:"window_id" yaml:"window_id"`
	Title           string                 `json:"title" yaml:"title"`
	URL             string                 `json:"url" yaml:"url"`
	Pinned          bool                   `json:"pinned" yaml:"pinned"`
	GroupID         domain.GroupID         `json:"group_id,omitempty" yaml:"group_id,omitempty"`
	InactiveMinutes float64                `json:"inactive_minutes" yaml:"inactive_minutes"`
	Inactivity      string                 `json:"inactivity" yaml:"inactivity"`
	Inactive        bool                   `json:"inactive" yaml:"inactive"`
	Excluded        bool                   `json:"excluded" yaml:"excluded"`
	Reason          domain.ExclusionReason `json:"excluded_reason,omitempty" yaml:"excluded_reason,omitempty"`
}

type tabsListView struct {
	Tabs  []tabView    `json:"tabs" yaml:"tabs"`
	Stats domain.Stats `json:"stats" yaml:"stats"`
}

func newTabsListView(listing application.TabListing) tabsListView {
	view := tabsListView{Tabs: make([]tabView, 0, len(listing.Tabs)), Stats: listing.Stats}
	for _, a := range listing.Tabs {
		view.Tabs = append(view.Tabs, tabView{
			ID:              a.Tab.ID,
			WindowID:        a.Tab.WindowID,
			Title:           a.Tab.Title,
			URL:             a.Tab.URL,
			Pinned:          a.Tab.Pinned,
			GroupID:         a.Tab.GroupID,
			InactiveMinutes: a.InactivityMinutes(),
			Inactivity:      domain.FormatInactivity(a.InactivityMinutes()),
			Inactive:        a.PinEligible,
			Excluded:        a.Excluded,
			Reason:          a.Reason,
		})
	}
	return view
}

func newTabsListCmd(app *app) *cobra.Command {
	var search string
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List open tabs with their inactivity",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			settings, err := app.settings.Load(cmd.Context())
			if err != nil {
				return err
			}

			listing, err := app.tabs.ListTabs(cmd.Context(), settings, search)
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), output, newTabsListView(listing), func(w io.Writer) error {
				rendered, err := app.tabsRenderer(listing, tabsrender.OptionsFrom(settings))
				if err != nil {
					return fmt.Errorf("render tabs: %w", err)
				}
				_, err = fmt.Fprintln(w, rendered)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only list tabs whose title contains this text")
	addOutputFlag(cmd, &output)

	return cmd
}

func newTabActionCmd(use, short, verb string, action func(*cobra.Command, domain.TabID) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTabID(args[0])
			if err != nil {
				return err
			}

			if err := action(cmd, id); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s tab %d\n", verb, id)
			return err
		},
	}
}

func parseTabID(raw string) (domain.TabID, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid tab id %q: must be a positive integer", raw)
	}
	return domain.TabID(id), nil
}
