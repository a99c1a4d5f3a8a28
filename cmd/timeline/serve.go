package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "github.com/heliodyne/sdo-timeline/internal/adapter/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the job once, then serve the published site and metrics",
	Long: `serve executes one run and keeps the process alive serving the
published site at /, health at /healthz, readiness at /readyz, and Prometheus
metrics at /metrics, until interrupted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, p, err := setup()
		if err != nil {
			return err
		}

		srv := httpadapter.NewServer(cfg.HTTPAddr, cfg.OutputDir, p, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()

		go func() {
			if err := p.Run(ctx); err != nil {
				logger.Error("run failed", "error", err)
			}
		}()

		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}

		logger.Info("shutdown complete")
		return nil
	},
}
