package main

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"bennu-impact-sim/internal/admin"
	"bennu-impact-sim/internal/logging"
	"bennu-impact-sim/internal/metrics"
	"bennu-impact-sim/internal/sim"
)

var (
	serveAddr    string
	serveLogFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over HTTP",
	Long:  "serve starts the HTTP API, HTML form and Prometheus metrics endpoint until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logging.FromContext(ctx)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		calc, err := cfg.NewCalculator()
		if err != nil {
			return err
		}
		collector, err := metrics.NewCollector(nil)
		if err != nil {
			return err
		}

		var writer sim.ResultWriter
		if serveLogFile != "" {
			fw, err := sim.NewFileWriter(serveLogFile)
			if err != nil {
				return err
			}
			defer fw.Close()
			writer = fw
		}

		srv := admin.NewServer(sim.NewSimulator(calc, writer, collector), catalog, cfg, collector.Gatherer())
		log.Info("admin server listening", "addr", cfg.Server.Addr)
		if err := srv.Start(ctx, cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		log.Info("admin server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config and IMPACT_SIM_ADDR)")
	serveCmd.Flags().StringVar(&serveLogFile, "log-file", "", "Append every served result to this JSONL file")
}
