package cmd

import (
	"github.com/spf13/cobra"
)

const verboseFlag = "verbose"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "tz",
		Short:         "TabZen (tz): pin, group and close inactive browser tabs",
		Long:          "tz (TabZen) watches which browser tabs you use and pins, groups or closes the ones you have not looked at for a while. It drives Chrome through a companion extension over the DevTools protocol.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts := wireOptions{hostFlag: cmd.Flags().Lookup("host")}
			if verbose, err := cmd.Flags().GetBool(verboseFlag); err == nil && verbose {
				opts.stderr = cmd.ErrOrStderr()
			}
			return app.wire(opts)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return app.close()
		},
	}
	rootCmd.PersistentFlags().String("host", hostDriverCDP, "Browser host driver (cdp or memory)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newPassCmd(app),
		newTabsCmd(app),
		newPinInactiveCmd(app),
		newUnpinAllCmd(app),
		newCloseInactiveCmd(app),
		newGroupInactiveCmd(app),
		newExcludeCmd(app),
		newSettingsCmd(app),
		newPopupCmd(app),
	)

	return rootCmd
}
