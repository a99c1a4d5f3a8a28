package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch, aggregate, and publish the timeline once",
	Long: `run executes one complete fetch-normalize-aggregate-render-publish
cycle and exits. Scheduling is the caller's concern: point a cron job or CI
workflow at this command. The run either publishes all artifacts or fails
outright with a non-zero exit code.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, logger, p, err := setup()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := p.Run(ctx); err != nil {
			logger.Error("run failed", "error", err)
			return err
		}
		return nil
	},
}
