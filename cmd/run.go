package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/tabzen/internal/application"
	"github.com/bnema/tabzen/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Track tab activity and run the policy pass periodically",
		Long:  "run stays in the foreground, recording tab activity from browser events and applying the inactive tab policy on every interval until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			runner := application.NewRunner(application.RunnerConfig{
				Events:   app.host,
				Tracker:  app.tracker,
				Engine:   app.engine,
				Settings: app.settings,
				Interval: app.interval,
				Logger:   app.logger,
				OnReport: func(report domain.Report, err error) {
					if err != nil || report.Skipped || len(report.Outcomes) == 0 {
						return
					}
					_, _ = fmt.Fprintf(out, "%s %s\n", report.FinishedAt.Format("15:04:05"), summarizeReport(report))
				},
			})

			_, _ = fmt.Fprintf(out, "tabzen running, policy pass every %s\n", app.interval)
			return runner.Run(ctx)
		},
	}
	cmd.Flags().Bool(verboseFlag, false, "Also write logs to stderr")

	return cmd
}
