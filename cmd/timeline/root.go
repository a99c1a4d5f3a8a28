package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heliodyne/sdo-timeline/internal/adapter/fetch"
	"github.com/heliodyne/sdo-timeline/internal/config"
	"github.com/heliodyne/sdo-timeline/internal/observability"
	"github.com/heliodyne/sdo-timeline/internal/pipeline"
	"github.com/heliodyne/sdo-timeline/internal/publish"
	"github.com/heliodyne/sdo-timeline/internal/source"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Aggregates SDO non-nominal periods into a published timeline",
	Long: `timeline scrapes the public LMSAL/JSOC operational pages for periods
during which SDO or its AIA/HMI instruments were not in their nominal
observing mode, merges them into one table ordered by start time, and
publishes it as CSV, TSV, and a browsable HTML page.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional; TIMELINE_* env vars override)")
	rootCmd.AddCommand(runCmd, serveCmd, validateCmd)
}

// setup wires the full job from config: fetch client, source catalog,
// publisher, pipeline.
func setup() (*config.Config, *slog.Logger, *pipeline.Pipeline, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := fetch.New(cfg.FetchTimeout, cfg.FetchRetryMax, logger)
	sources := source.NewCatalog(cfg, client)
	publisher := publish.New(cfg.OutputDir, logger)
	p := pipeline.New(sources, publisher, cfg.SiteTitle, cfg.FetchConcurrency, logger, metrics)

	return cfg, logger, p, nil
}
