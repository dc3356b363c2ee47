package cmd

import (
	"context"

	"github.com/bnema/tabzen/internal/domain"
	"github.com/spf13/cobra"
)

type policyAction func(ctx context.Context, settings domain.Settings) (domain.Report, error)

func newPassCmd(app *app) *cobra.Command {
	return newPolicyCmd(app, "pass", "Run one policy pass now, as the daemon would", "Running policy pass...",
		func(ctx context.Context, settings domain.Settings) (domain.Report, error) {
			return app.engine.RunPass(ctx, settings)
		})
}

func newPinInactiveCmd(app *app) *cobra.Command {
	return newPolicyCmd(app, "pin-inactive", "Pin every inactive tab", "Pinning inactive tabs...",
		func(ctx context.Context, settings domain.Settings) (domain.Report, error) {
			return app.engine.PinInactive(ctx, settings)
		})
}

func newGroupInactiveCmd(app *app) *cobra.Command {
	return newPolicyCmd(app, "group-inactive", "Move every inactive tab into the inactive group", "Grouping inactive tabs...",
		func(ctx context.Context, settings domain.Settings) (domain.Report, error) {
			return app.engine.GroupInactive(ctx, settings)
		})
}

func newCloseInactiveCmd(app *app) *cobra.Command {
	return newPolicyCmd(app, "close-inactive", "Close every inactive unpinned tab", "Closing inactive tabs...",
		func(ctx context.Context, settings domain.Settings) (domain.Report, error) {
			return app.engine.CloseInactive(ctx, settings)
		})
}

func newUnpinAllCmd(app *app) *cobra.Command {
	return newPolicyCmd(app, "unpin-all", "Unpin every pinned tab", "Unpinning tabs...",
		func(ctx context.Context, _ domain.Settings) (domain.Report, error) {
			return app.engine.UnpinAll(ctx)
		})
}

func newPolicyCmd(app *app, use, short, label string, action policyAction) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			settings, err := app.settings.Load(cmd.Context())
			if err != nil {
				return err
			}

			run := func(ctx context.Context) (domain.Report, error) {
				return action(ctx, settings)
			}

			var report domain.Report
			if output == outputText {
				report, err = runPassSpinner(cmd.Context(), cmd.ErrOrStderr(), label, settings.Theme, run)
			} else {
				report, err = run(cmd.Context())
			}
			if err != nil {
				return err
			}

			return writeReport(cmd, output, report)
		},
	}
	addOutputFlag(cmd, &output)

	return cmd
}
