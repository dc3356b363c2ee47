package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newExcludeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exclude",
		Short: "Manage domains the policy never touches",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <url-or-host>",
			Short: "Exclude a domain, given a full URL or a hostname",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				host, err := app.settings.ExcludeDomain(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "excluded %s\n", host)
				return err
			},
		},
		&cobra.Command{
			Use:     "remove <host>",
			Aliases: []string{"rm"},
			Short:   "Stop excluding a domain",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.settings.IncludeDomain(cmd.Context(), args[0]); err != nil {
					return err
				}

				_, err := fmt.Fprintf(cmd.OutOrStdout(), "included %s\n", args[0])
				return err
			},
		},
		newExcludeListCmd(app),
	)

	return cmd
}

func newExcludeListCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List excluded domains",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			settings, err := app.settings.Load(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), output, settings.ExcludedDomains, func(w io.Writer) error {
				if len(settings.ExcludedDomains) == 0 {
					_, err := fmt.Fprintln(w, "No excluded domains.")
					return err
				}
				for _, host := range settings.ExcludedDomains {
					if _, err := fmt.Fprintln(w, host); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	addOutputFlag(cmd, &output)

	return cmd
}
